package taxamatch

import (
	"strings"
	"unicode"
)

// capitalizeFirst uppercases the first rune of s and leaves the rest
// untouched, per the lexicon's leading-uppercase (proper noun) convention.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func capitalizeAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = capitalizeFirst(s)
	}
	return out
}

// generateK1 enumerates the raw (lowercase, uncapitalized) Damerau-
// Levenshtein k=1 neighborhood of q: deletions, then insertions, then
// substitutions, then transpositions, in that order. Duplicates are not
// removed; callers that need a set dedupe downstream.
func generateK1(q string, alphabet []rune) []string {
	runes := []rune(q)
	n := len(runes)
	nhood := make([]string, 0, 53*n+26)

	// Deletions.
	if n > 1 {
		for pos := 0; pos < n; pos++ {
			nhood = append(nhood, string(runes[:pos])+string(runes[pos+1:]))
		}
	}

	// Insertions: head, then each internal position, then tail.
	for _, c := range alphabet {
		nhood = append(nhood, string(c)+q)
		for pos := 1; pos < n; pos++ {
			nhood = append(nhood, string(runes[:pos])+string(c)+string(runes[pos:]))
		}
		nhood = append(nhood, q+string(c))
	}

	// Substitutions, skipping the no-op where c equals the existing rune.
	for _, c := range alphabet {
		for pos := 0; pos < n; pos++ {
			if c == runes[pos] {
				continue
			}
			nhood = append(nhood, string(runes[:pos])+string(c)+string(runes[pos+1:]))
		}
	}

	// Transpositions.
	for pos := 0; pos < n-1; pos++ {
		nhood = append(nhood, string(runes[:pos])+string(runes[pos+1])+string(runes[pos])+string(runes[pos+2:]))
	}

	return nhood
}

// generateFullRec implements the recursive part of N_full: the k=1
// neighborhood of q, plus (for k>1) the k-1 neighborhood of every k=1
// neighbor. It operates entirely in lowercase; capitalization is applied
// once, by the caller, over the flattened result.
func generateFullRec(q string, k int, alphabet []rune) []string {
	var nhood []string
	if k < 2 {
		nhood = append(nhood, q)
	}

	k1 := generateK1(q, alphabet)
	nhood = append(nhood, k1...)

	if k > 1 {
		for _, neighbor := range k1 {
			nhood = append(nhood, generateFullRec(neighbor, k-1, alphabet)...)
		}
	}

	return nhood
}

// GenerateFull produces every string within Damerau-Levenshtein distance
// <= k of q. Requesting k beyond cap (or DefaultKCap when cap is 0) fails
// with ResourceExhausted; requesting an empty query fails with EmptyQuery.
func GenerateFull(q string, k int, alphabet []rune, cap int) ([]string, error) {
	if q == "" {
		return nil, newError(EmptyQuery, "GenerateFull", nil)
	}
	if cap <= 0 {
		cap = DefaultKCap
	}
	if k > cap {
		return nil, newError(ResourceExhausted, "GenerateFull", nil)
	}
	if len(alphabet) == 0 {
		return nil, newError(InvalidConfig, "GenerateFull", nil)
	}

	lower := strings.ToLower(q)
	nhood := generateFullRec(lower, k, alphabet)
	return capitalizeAll(nhood), nil
}

// GenerateK1Full is the k=1 special case of GenerateFull, exposed directly
// because k=1 is the DL matcher's default and the only k the hybrid
// matcher's inner DL matcher uses.
func GenerateK1Full(q string, alphabet []rune) ([]string, error) {
	return GenerateFull(q, 1, alphabet, DefaultKCap)
}

// GenerateK1Wildcard produces the k=1 wildcard-compressed neighborhood of
// q, split into a set to be matched exactly and a set of single-wildcard
// patterns. Deletions and transpositions are exact; insertions and
// substitutions are wildcarded.
func GenerateK1Wildcard(q string, alphabet []rune) (exact []string, wildcard []string, err error) {
	if q == "" {
		return nil, nil, newError(EmptyQuery, "GenerateK1Wildcard", nil)
	}

	lower := strings.ToLower(q)
	runes := []rune(lower)
	n := len(runes)

	exact = make([]string, 0, 2*n)
	wildcard = make([]string, 0, 2*n+2)

	// Deletions -> exact.
	if n > 1 {
		for pos := 0; pos < n; pos++ {
			exact = append(exact, string(runes[:pos])+string(runes[pos+1:]))
		}
	}

	// Insertions -> wildcard.
	wildcard = append(wildcard, string(WildcardToken)+lower)
	for pos := 1; pos < n; pos++ {
		wildcard = append(wildcard, string(runes[:pos])+string(WildcardToken)+string(runes[pos:]))
	}
	wildcard = append(wildcard, lower+string(WildcardToken))

	// Substitutions -> wildcard.
	for pos := 0; pos < n; pos++ {
		wildcard = append(wildcard, string(runes[:pos])+string(WildcardToken)+string(runes[pos+1:]))
	}

	// Transpositions -> exact.
	for pos := 0; pos < n-1; pos++ {
		exact = append(exact, string(runes[:pos])+string(runes[pos+1])+string(runes[pos])+string(runes[pos+2:]))
	}

	return capitalizeAll(exact), capitalizeAll(wildcard), nil
}

// GenerateK1PartialWildcard is like GenerateK1Wildcard, but the leading
// character is always enumerated over the full alphabet rather than
// wildcarded, so an ordered (B-tree style) index on the lexicon column
// remains usable.
func GenerateK1PartialWildcard(q string, alphabet []rune) (exact []string, wildcard []string, err error) {
	if q == "" {
		return nil, nil, newError(EmptyQuery, "GenerateK1PartialWildcard", nil)
	}
	if len(alphabet) == 0 {
		return nil, nil, newError(InvalidConfig, "GenerateK1PartialWildcard", nil)
	}

	lower := strings.ToLower(q)
	runes := []rune(lower)
	n := len(runes)

	exact = make([]string, 0, 2*n+2*len(alphabet))
	wildcard = make([]string, 0, 2*n)

	// Deletions -> exact.
	if n > 1 {
		for pos := 0; pos < n; pos++ {
			exact = append(exact, string(runes[:pos])+string(runes[pos+1:]))
		}
	}

	// Insertions: leading position enumerated fully; the rest wildcarded.
	for _, c := range alphabet {
		exact = append(exact, string(c)+lower)
	}
	for pos := 1; pos < n; pos++ {
		wildcard = append(wildcard, string(runes[:pos])+string(WildcardToken)+string(runes[pos:]))
	}
	wildcard = append(wildcard, lower+string(WildcardToken))

	// Substitutions: leading position enumerated fully; the rest wildcarded.
	for _, c := range alphabet {
		if n > 0 && c == runes[0] {
			continue
		}
		exact = append(exact, string(c)+string(runes[1:]))
	}
	for pos := 1; pos < n; pos++ {
		wildcard = append(wildcard, string(runes[:pos])+string(WildcardToken)+string(runes[pos+1:]))
	}

	// Transpositions -> exact.
	for pos := 0; pos < n-1; pos++ {
		exact = append(exact, string(runes[:pos])+string(runes[pos+1])+string(runes[pos])+string(runes[pos+2:]))
	}

	return capitalizeAll(exact), capitalizeAll(wildcard), nil
}
