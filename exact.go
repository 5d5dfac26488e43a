package taxamatch

import "github.com/taxamatch/taxamatch/internal/debug"

// ExactMatcher is a single equality lookup delegated to the Oracle:
// match(Q) = { s in L : s = Q }.
type ExactMatcher struct {
	oracle Oracle
	trace  bool
}

// NewExactMatcher constructs an ExactMatcher bound to cfg.Oracle.
func NewExactMatcher(cfg Config) (*ExactMatcher, error) {
	if cfg.Oracle == nil {
		return nil, newError(InvalidConfig, "NewExactMatcher", nil)
	}
	return &ExactMatcher{oracle: cfg.Oracle, trace: cfg.Trace}, nil
}

func (m *ExactMatcher) Match(query string) ([]string, error) {
	if query == "" {
		return nil, newError(EmptyQuery, "ExactMatcher.Match", nil)
	}
	defer debug.Span(m.trace, "ExactMatcher.Match")()

	results, err := m.oracle.LookupSet([]string{query})
	if err != nil {
		return nil, newError(OracleError, "ExactMatcher.Match", err)
	}
	debug.Output(m.trace, "exact match for %q: %d result(s)", query, len(results))
	return results, nil
}
