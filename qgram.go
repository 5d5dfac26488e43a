package taxamatch

import "github.com/taxamatch/taxamatch/internal/debug"

// QgramMatcher runs trigram similarity search through the Oracle, with a
// configurable similarity cutoff (default 0.4).
type QgramMatcher struct {
	oracle Oracle
	cutoff float64
	trace  bool
}

// NewQgramMatcher constructs a QgramMatcher. cfg.QCutoff defaults to
// DefaultQCutoff and must lie in [0,1].
func NewQgramMatcher(cfg Config) (*QgramMatcher, error) {
	cfg = cfg.withDefaults()
	if cfg.Oracle == nil {
		return nil, newError(InvalidConfig, "NewQgramMatcher", nil)
	}
	if cfg.QCutoff < 0 || cfg.QCutoff > 1 {
		return nil, newError(InvalidConfig, "NewQgramMatcher", nil)
	}
	return &QgramMatcher{oracle: cfg.Oracle, cutoff: cfg.QCutoff, trace: cfg.Trace}, nil
}

// SetSimilarityCutoff changes the cutoff used by subsequent Match calls.
// Re-application against the Oracle is idempotent and scoped to the next
// LookupTrigram call.
func (m *QgramMatcher) SetSimilarityCutoff(cutoff float64) error {
	if cutoff < 0 || cutoff > 1 {
		return newError(InvalidConfig, "QgramMatcher.SetSimilarityCutoff", nil)
	}
	m.cutoff = cutoff
	return nil
}

func (m *QgramMatcher) Match(query string) ([]string, error) {
	if query == "" {
		return nil, newError(EmptyQuery, "QgramMatcher.Match", nil)
	}
	defer debug.Span(m.trace, "QgramMatcher.Match")()

	results, err := m.oracle.LookupTrigram(query, m.cutoff)
	if err != nil {
		return nil, newError(OracleError, "QgramMatcher.Match", err)
	}

	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Name
	}
	debug.Output(m.trace, "qgram match for %q at cutoff %.2f: %d result(s)", query, m.cutoff, len(names))
	return names, nil
}

// MatchScored returns trigram scores alongside each matched name. Plain
// Match remains projection-equivalent (Match(q) == names of MatchScored(q)).
func (m *QgramMatcher) MatchScored(query string) ([]TrigramResult, error) {
	if query == "" {
		return nil, newError(EmptyQuery, "QgramMatcher.MatchScored", nil)
	}
	results, err := m.oracle.LookupTrigram(query, m.cutoff)
	if err != nil {
		return nil, newError(OracleError, "QgramMatcher.MatchScored", err)
	}
	return results, nil
}
