package taxamatch

// DefaultAlphabet is the 26 lowercase ASCII letters, in order. All
// neighborhood-size formulas are stated relative to |alphabet|.
var DefaultAlphabet = []rune("abcdefghijklmnopqrstuvwxyz")

// DefaultQCutoff is the default trigram similarity cutoff for the q-gram
// matcher, tuned against a genus-name dataset.
const DefaultQCutoff = 0.4

// DefaultLowerLen and DefaultUpperLen are the hybrid matcher's default
// query-length gates.
const (
	DefaultLowerLen = 4
	DefaultUpperLen = 9
)

// DefaultK is the default Damerau-Levenshtein distance for DL matchers.
const DefaultK = 1

// DefaultKCap bounds how large a k a caller may request before the
// neighborhood generator refuses with ResourceExhausted.
const DefaultKCap = 2

// WCMode selects the candidate-generation strategy for the DL matcher.
type WCMode int

const (
	// FullMode enumerates the complete k-neighborhood and matches it with
	// Oracle.LookupSet.
	FullMode WCMode = iota
	// WildcardMode compresses insertions/substitutions into wildcard
	// patterns and matches with LookupSet + LookupPatterns. Only k=1 is
	// supported in this mode.
	WildcardMode
)

// Config carries every parameter the matcher factory accepts. Oracle,
// Table, and Column are required for every tag; the remaining
// fields are only consulted by the tags that use them and otherwise take
// their documented defaults.
type Config struct {
	Oracle Oracle
	Table  string
	Column string

	// qgram
	QCutoff float64

	// neighbor / wcneighbor
	K        int
	Alphabet []rune

	// wcneighbor
	Partial bool

	// hybrid
	LowerLen int
	UpperLen int

	// Trace turns on debug.Output/debug.Span tracing inside Match calls.
	Trace bool

	// KCap bounds full-neighborhood k; 0 means DefaultKCap.
	KCap int
}

// withDefaults returns a copy of cfg with zero-valued optional fields
// replaced by their documented defaults. It does not validate cfg; that is
// the factory's job.
func (cfg Config) withDefaults() Config {
	out := cfg
	if out.Alphabet == nil {
		out.Alphabet = DefaultAlphabet
	}
	if out.QCutoff == 0 {
		out.QCutoff = DefaultQCutoff
	}
	if out.K == 0 {
		out.K = DefaultK
	}
	if out.LowerLen == 0 {
		out.LowerLen = DefaultLowerLen
	}
	if out.UpperLen == 0 {
		out.UpperLen = DefaultUpperLen
	}
	if out.KCap == 0 {
		out.KCap = DefaultKCap
	}
	return out
}
