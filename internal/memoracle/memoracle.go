// Package memoracle is a reference taxamatch.Oracle implementation over an
// in-process slice of names. It exists for tests, the CLI's demo mode, and
// any lexicon small enough to fit comfortably in memory; it trades index
// sophistication for having no external dependencies beyond the phonetic
// codec library.
//
// Trigram similarity is computed client-side with a Jaccard coefficient
// over padded 3-grams, the same scoring approximation used elsewhere in
// the example pack's string-matching code. Phonetic codes are computed
// with github.com/antzucaro/matchr so the same algorithm encodes both the
// stored lexicon and an incoming query, satisfying the codec-identity
// contract taxamatch.Oracle documents.
package memoracle

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/taxamatch/taxamatch"
)

// Oracle is an in-memory taxamatch.Oracle over a fixed set of names.
type Oracle struct {
	names     []string
	exact     map[string]struct{}
	trigramIx map[string][]string
	soundexIx map[string][]string
	dmPrimary map[string][]string
	dmAlt     map[string][]string
}

// New builds an Oracle over names, precomputing the trigram and phonetic
// indexes used by LookupTrigram and LookupPhonetic.
func New(names []string) *Oracle {
	o := &Oracle{
		names:     append([]string{}, names...),
		exact:     make(map[string]struct{}, len(names)),
		trigramIx: make(map[string][]string),
		soundexIx: make(map[string][]string),
		dmPrimary: make(map[string][]string),
		dmAlt:     make(map[string][]string),
	}
	for _, n := range names {
		o.exact[n] = struct{}{}
		for _, g := range trigrams(n) {
			o.trigramIx[g] = append(o.trigramIx[g], n)
		}
		if code := matchr.Soundex(n); code != "" {
			o.soundexIx[code] = append(o.soundexIx[code], n)
		}
		primary, alternate := matchr.DoubleMetaphone(n)
		if primary != "" {
			o.dmPrimary[primary] = append(o.dmPrimary[primary], n)
		}
		if alternate != "" {
			o.dmAlt[alternate] = append(o.dmAlt[alternate], n)
		}
	}
	return o
}

func (o *Oracle) LookupExact(s string) (bool, error) {
	_, ok := o.exact[s]
	return ok, nil
}

func (o *Oracle) LookupSet(candidates []string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		if _, ok := o.exact[c]; ok {
			out = append(out, c)
			seen[c] = struct{}{}
		}
	}
	return out, nil
}

// LookupPatterns scans the lexicon for members matching any of the given
// single-wildcard patterns. This is a linear scan per call; memoracle
// targets small lexicons where that is not a concern.
func (o *Oracle) LookupPatterns(patterns []string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	for _, p := range patterns {
		pr := []rune(p)
		for _, n := range o.names {
			if _, ok := seen[n]; ok {
				continue
			}
			if matchesPattern(pr, []rune(n)) {
				out = append(out, n)
				seen[n] = struct{}{}
			}
		}
	}
	return out, nil
}

func matchesPattern(pattern, candidate []rune) bool {
	if len(pattern) != len(candidate) {
		return false
	}
	for i, pr := range pattern {
		if pr == taxamatch.WildcardToken {
			continue
		}
		if pr != candidate[i] {
			return false
		}
	}
	return true
}

// LookupTrigram ranks the candidates whose precomputed trigram sets
// overlap s's, by Jaccard similarity, and filters to those >= cutoff.
// Results are ordered by descending score, ties broken by name.
func (o *Oracle) LookupTrigram(s string, cutoff float64) ([]taxamatch.TrigramResult, error) {
	candidateSet := make(map[string]struct{})
	for _, g := range trigrams(s) {
		for _, n := range o.trigramIx[g] {
			candidateSet[n] = struct{}{}
		}
	}

	var out []taxamatch.TrigramResult
	for n := range candidateSet {
		score := trigramSimilarity(s, n)
		if score >= cutoff {
			out = append(out, taxamatch.TrigramResult{Name: n, Score: score})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (o *Oracle) LookupPhonetic(s string, codec taxamatch.PhoneticCodec) ([]string, error) {
	switch codec {
	case taxamatch.Soundex:
		return o.soundexIx[matchr.Soundex(s)], nil
	case taxamatch.DMetaphonePrimary:
		primary, _ := matchr.DoubleMetaphone(s)
		return o.dmPrimary[primary], nil
	case taxamatch.DMetaphoneAlternate:
		_, alternate := matchr.DoubleMetaphone(s)
		return o.dmAlt[alternate], nil
	default:
		return nil, nil
	}
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
	counts := make(map[string]int, len(ga))
	union := make(map[string]struct{}, len(ga)+len(gb))
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
