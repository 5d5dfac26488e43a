package taxamatch

import "github.com/taxamatch/taxamatch/internal/debug"

// DLMatcher materializes the Damerau-Levenshtein k-neighborhood of a query
// (via the neighborhood generator) and matches it against the lexicon
// through the Oracle, in either FULL or WILDCARD mode. Switching mode is
// an O(1) reconfiguration; the chosen mode is stable across subsequent
// Match calls until changed.
type DLMatcher struct {
	oracle   Oracle
	k        int
	mode     WCMode
	partial  bool
	alphabet []rune
	kCap     int
	trace    bool
}

// NewDLMatcher constructs a DLMatcher. WILDCARD mode only supports k=1;
// requesting k>1 with WildcardMode fails with InvalidConfig.
func NewDLMatcher(cfg Config, mode WCMode) (*DLMatcher, error) {
	cfg = cfg.withDefaults()
	if cfg.Oracle == nil {
		return nil, newError(InvalidConfig, "NewDLMatcher", nil)
	}
	if mode == WildcardMode && cfg.K != 1 {
		return nil, newError(InvalidConfig, "NewDLMatcher", nil)
	}
	if len(cfg.Alphabet) == 0 {
		return nil, newError(InvalidConfig, "NewDLMatcher", nil)
	}
	return &DLMatcher{
		oracle:   cfg.Oracle,
		k:        cfg.K,
		mode:     mode,
		partial:  cfg.Partial,
		alphabet: cfg.Alphabet,
		kCap:     cfg.KCap,
		trace:    cfg.Trace,
	}, nil
}

// SetMode reconfigures which search algorithm Match uses. Switching to
// WildcardMode while k != 1 fails with InvalidConfig and leaves the
// matcher in its previous mode.
func (m *DLMatcher) SetMode(mode WCMode) error {
	if mode == WildcardMode && m.k != 1 {
		return newError(InvalidConfig, "DLMatcher.SetMode", nil)
	}
	m.mode = mode
	return nil
}

func (m *DLMatcher) Match(query string) ([]string, error) {
	if query == "" {
		return nil, newError(EmptyQuery, "DLMatcher.Match", nil)
	}
	defer debug.Span(m.trace, "DLMatcher.Match")()

	switch m.mode {
	case WildcardMode:
		return m.matchWildcard(query)
	default:
		return m.matchFull(query)
	}
}

func (m *DLMatcher) matchFull(query string) ([]string, error) {
	neighborhood, err := GenerateFull(query, m.k, m.alphabet, m.kCap)
	if err != nil {
		return nil, err
	}

	results, err := m.oracle.LookupSet(neighborhood)
	if err != nil {
		return nil, newError(OracleError, "DLMatcher.Match", err)
	}
	debug.Output(m.trace, "DL full match for %q (k=%d): %d candidate(s), %d result(s)",
		query, m.k, len(neighborhood), len(results))
	return results, nil
}

func (m *DLMatcher) matchWildcard(query string) ([]string, error) {
	var exact, wildcard []string
	var err error
	if m.partial {
		exact, wildcard, err = GenerateK1PartialWildcard(query, m.alphabet)
	} else {
		exact, wildcard, err = GenerateK1Wildcard(query, m.alphabet)
	}
	if err != nil {
		return nil, err
	}

	exactResults, err := m.oracle.LookupSet(exact)
	if err != nil {
		return nil, newError(OracleError, "DLMatcher.Match", err)
	}
	patternResults, err := m.oracle.LookupPatterns(wildcard)
	if err != nil {
		return nil, newError(OracleError, "DLMatcher.Match", err)
	}

	results := dedupPreserveOrder(append(append([]string{}, exactResults...), patternResults...))
	debug.Output(m.trace, "DL wildcard match for %q (partial=%v): %d result(s)", query, m.partial, len(results))
	return results, nil
}
