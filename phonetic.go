package taxamatch

import "github.com/taxamatch/taxamatch/internal/debug"

// SoundexMatcher matches on the classical Soundex codec:
// match(Q) = lookup_phonetic(Q, Soundex). Codec identity between the
// stored lexicon and the query is the Oracle's responsibility; this
// matcher carries no phonetic-coding logic of its own.
type SoundexMatcher struct {
	oracle Oracle
	trace  bool
}

// NewSoundexMatcher constructs a SoundexMatcher bound to cfg.Oracle.
func NewSoundexMatcher(cfg Config) (*SoundexMatcher, error) {
	if cfg.Oracle == nil {
		return nil, newError(InvalidConfig, "NewSoundexMatcher", nil)
	}
	return &SoundexMatcher{oracle: cfg.Oracle, trace: cfg.Trace}, nil
}

func (m *SoundexMatcher) Match(query string) ([]string, error) {
	if query == "" {
		return nil, newError(EmptyQuery, "SoundexMatcher.Match", nil)
	}
	defer debug.Span(m.trace, "SoundexMatcher.Match")()

	results, err := m.oracle.LookupPhonetic(query, Soundex)
	if err != nil {
		return nil, newError(OracleError, "SoundexMatcher.Match", err)
	}
	debug.Output(m.trace, "soundex match for %q: %d result(s)", query, len(results))
	return results, nil
}

// DoubleMetaphoneMatcher matches on the Double Metaphone codec: both the
// primary and (if distinct) alternate codes are queried and their results
// unioned and deduplicated.
type DoubleMetaphoneMatcher struct {
	oracle Oracle
	trace  bool
}

// NewDoubleMetaphoneMatcher constructs a DoubleMetaphoneMatcher bound to
// cfg.Oracle.
func NewDoubleMetaphoneMatcher(cfg Config) (*DoubleMetaphoneMatcher, error) {
	if cfg.Oracle == nil {
		return nil, newError(InvalidConfig, "NewDoubleMetaphoneMatcher", nil)
	}
	return &DoubleMetaphoneMatcher{oracle: cfg.Oracle, trace: cfg.Trace}, nil
}

func (m *DoubleMetaphoneMatcher) Match(query string) ([]string, error) {
	if query == "" {
		return nil, newError(EmptyQuery, "DoubleMetaphoneMatcher.Match", nil)
	}
	defer debug.Span(m.trace, "DoubleMetaphoneMatcher.Match")()

	primary, err := m.oracle.LookupPhonetic(query, DMetaphonePrimary)
	if err != nil {
		return nil, newError(OracleError, "DoubleMetaphoneMatcher.Match", err)
	}
	alternate, err := m.oracle.LookupPhonetic(query, DMetaphoneAlternate)
	if err != nil {
		return nil, newError(OracleError, "DoubleMetaphoneMatcher.Match", err)
	}

	results := dedupPreserveOrder(append(append([]string{}, primary...), alternate...))
	debug.Output(m.trace, "double metaphone match for %q: %d result(s)", query, len(results))
	return results, nil
}
