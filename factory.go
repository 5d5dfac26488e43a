package taxamatch

// Tag names one of the matcher variants the factory can construct.
type Tag string

const (
	TagExact      Tag = "exact"
	TagQgram      Tag = "qgram"
	TagNeighbor   Tag = "neighbor"
	TagWCNeighbor Tag = "wcneighbor"
	TagSoundex    Tag = "soundex"
	TagDMetaphone Tag = "dmetaphone"
	TagHybrid     Tag = "hybrid"
)

// New constructs any matcher variant by its tag, wiring Config's shared
// Oracle handle and per-tag parameters. Unknown tags fail with
// InvalidConfig.
func New(tag Tag, cfg Config) (Matcher, error) {
	if cfg.Oracle == nil || cfg.Table == "" || cfg.Column == "" {
		return nil, newError(InvalidConfig, "New", nil)
	}

	switch tag {
	case TagExact:
		return NewExactMatcher(cfg)
	case TagQgram:
		return NewQgramMatcher(cfg)
	case TagNeighbor:
		return NewDLMatcher(cfg, FullMode)
	case TagWCNeighbor:
		return NewDLMatcher(cfg, WildcardMode)
	case TagSoundex:
		return NewSoundexMatcher(cfg)
	case TagDMetaphone:
		return NewDoubleMetaphoneMatcher(cfg)
	case TagHybrid:
		return NewHybridMatcher(cfg)
	default:
		return nil, newError(InvalidConfig, "New", nil)
	}
}
