package taxamatch

import "github.com/taxamatch/taxamatch/internal/debug"

// HybridMatcher blends the q-gram and DL matchers by query length.
//
//	|Q| <= lowerlen          -> DL only
//	lowerlen < |Q| < upperlen -> qgram results ++ DL-only-new results
//	|Q| >= upperlen          -> qgram only
//
// The hybrid owns its inner q-gram and DL matchers. Both are constructed
// once, from the same Config, at NewHybridMatcher time, so they share one
// Oracle handle; the hybrid has no method to rebind the oracle or the
// table afterwards.
type HybridMatcher struct {
	qgram    *QgramMatcher
	dl       *DLMatcher
	lowerLen int
	upperLen int
	trace    bool
}

// NewHybridMatcher constructs a HybridMatcher. Its inner DL matcher always
// runs in FULL mode at k=1.
func NewHybridMatcher(cfg Config) (*HybridMatcher, error) {
	cfg = cfg.withDefaults()
	if cfg.Oracle == nil {
		return nil, newError(InvalidConfig, "NewHybridMatcher", nil)
	}
	if cfg.LowerLen < 0 || cfg.UpperLen < cfg.LowerLen {
		return nil, newError(InvalidConfig, "NewHybridMatcher", nil)
	}

	qgramCfg := cfg
	qgram, err := NewQgramMatcher(qgramCfg)
	if err != nil {
		return nil, err
	}

	dlCfg := cfg
	dlCfg.K = 1
	dl, err := NewDLMatcher(dlCfg, FullMode)
	if err != nil {
		return nil, err
	}

	return &HybridMatcher{
		qgram:    qgram,
		dl:       dl,
		lowerLen: cfg.LowerLen,
		upperLen: cfg.UpperLen,
		trace:    cfg.Trace,
	}, nil
}

func (m *HybridMatcher) Match(query string) ([]string, error) {
	if query == "" {
		return nil, newError(EmptyQuery, "HybridMatcher.Match", nil)
	}
	defer debug.Span(m.trace, "HybridMatcher.Match")()

	length := len([]rune(query))

	switch {
	case length <= m.lowerLen:
		debug.Output(m.trace, "hybrid: %q (len=%d) routed to DL-only", query, length)
		return m.dl.Match(query)

	case length >= m.upperLen:
		debug.Output(m.trace, "hybrid: %q (len=%d) routed to qgram-only", query, length)
		return m.qgram.Match(query)

	default:
		debug.Output(m.trace, "hybrid: %q (len=%d) routed to qgram+DL", query, length)
		qgramResults, err := m.qgram.Match(query)
		if err != nil {
			return nil, err
		}
		dlResults, err := m.dl.Match(query)
		if err != nil {
			return nil, err
		}
		// q-gram results keep their order first; DL-new entries are
		// appended in DL order, duplicates dropped.
		return dedupPreserveOrder(append(append([]string{}, qgramResults...), dlResults...)), nil
	}
}
