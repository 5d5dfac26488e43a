package taxamatch

import (
	"strings"

	"github.com/antzucaro/matchr"
)

// fakeOracle is a minimal in-memory Oracle used only by this package's own
// tests. It is deliberately simple (linear scans, no indexing) since the
// fixtures here are a handful of names; see package memoracle for the
// reusable reference implementation.
type fakeOracle struct {
	names []string
}

func newFakeOracle(names ...string) *fakeOracle {
	return &fakeOracle{names: names}
}

func (o *fakeOracle) LookupExact(s string) (bool, error) {
	for _, n := range o.names {
		if n == s {
			return true, nil
		}
	}
	return false, nil
}

func (o *fakeOracle) LookupSet(candidates []string) ([]string, error) {
	var out []string
	for _, c := range candidates {
		for _, n := range o.names {
			if n == c {
				out = append(out, n)
				break
			}
		}
	}
	return dedupPreserveOrder(out), nil
}

func (o *fakeOracle) LookupPatterns(patterns []string) ([]string, error) {
	var out []string
	for _, p := range patterns {
		pr := []rune(p)
		for _, n := range o.names {
			if patternMatches(pr, []rune(n)) {
				out = append(out, n)
			}
		}
	}
	return dedupPreserveOrder(out), nil
}

func patternMatches(pattern, candidate []rune) bool {
	if len(pattern) != len(candidate) {
		return false
	}
	for i, pr := range pattern {
		if pr == WildcardToken {
			continue
		}
		if pr != candidate[i] {
			return false
		}
	}
	return true
}

func (o *fakeOracle) LookupTrigram(s string, cutoff float64) ([]TrigramResult, error) {
	var out []TrigramResult
	for _, n := range o.names {
		score := trigramSimilarity(s, n)
		if score >= cutoff {
			out = append(out, TrigramResult{Name: n, Score: score})
		}
	}
	return out, nil
}

func (o *fakeOracle) LookupPhonetic(s string, codec PhoneticCodec) ([]string, error) {
	var target string
	switch codec {
	case Soundex:
		target = matchr.Soundex(s)
	case DMetaphonePrimary:
		target, _ = matchr.DoubleMetaphone(s)
	case DMetaphoneAlternate:
		_, target = matchr.DoubleMetaphone(s)
	}
	if target == "" {
		return nil, nil
	}

	var out []string
	for _, n := range o.names {
		var code string
		switch codec {
		case Soundex:
			code = matchr.Soundex(n)
		case DMetaphonePrimary:
			code, _ = matchr.DoubleMetaphone(n)
		case DMetaphoneAlternate:
			_, code = matchr.DoubleMetaphone(n)
		}
		if code != "" && code == target {
			out = append(out, n)
		}
	}
	return out, nil
}

func trigrams(s string) []string {
	padded := "  " + strings.ToLower(s) + "  "
	runes := []rune(padded)
	if len(runes) < 3 {
		return []string{string(runes)}
	}
	grams := make([]string, 0, len(runes)-2)
	for i := 0; i+3 <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+3]))
	}
	return grams
}

func trigramSimilarity(a, b string) float64 {
	ga, gb := trigrams(a), trigrams(b)
	union := make(map[string]struct{}, len(ga)+len(gb))
	counts := make(map[string]int, len(ga))
	for _, g := range ga {
		counts[g]++
		union[g] = struct{}{}
	}
	shared := 0
	for _, g := range gb {
		union[g] = struct{}{}
		if counts[g] > 0 {
			counts[g]--
			shared++
		}
	}
	if len(union) == 0 {
		return 0
	}
	return float64(shared) / float64(len(union))
}

type erroringOracle struct {
	err error
}

func (o erroringOracle) LookupExact(string) (bool, error)           { return false, o.err }
func (o erroringOracle) LookupSet([]string) ([]string, error)       { return nil, o.err }
func (o erroringOracle) LookupPatterns([]string) ([]string, error)  { return nil, o.err }
func (o erroringOracle) LookupTrigram(string, float64) ([]TrigramResult, error) {
	return nil, o.err
}
func (o erroringOracle) LookupPhonetic(string, PhoneticCodec) ([]string, error) {
	return nil, o.err
}
