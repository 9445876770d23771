package doccover

import "context"

// Strategy identifies the matching rule that produced a positive match.
type Strategy string

// Matching strategies.
const (
	StrategyNone    Strategy = ""
	StrategyExact   Strategy = "exact"
	StrategyPrefix  Strategy = "prefix"
	StrategyClause  Strategy = "clause"
	StrategyKeyword Strategy = "keyword"
)

// Policy selects which matching pipeline is applied to an item.
type Policy string

// Matching policies.
const (
	// PolicyAuto uses containment for annotated items and keywords for
	// numbered items.
	PolicyAuto Policy = "auto"

	// PolicyContainment applies the exact, prefix and clause strategies.
	PolicyContainment Policy = "containment"

	// PolicyKeyword applies the keyword strategy.
	PolicyKeyword Policy = "keyword"
)

// MatchResult is the coverage decision for one item.
type MatchResult struct {
	Item     *Item    `json:"item"`
	Covered  bool     `json:"covered"`
	Evidence []string `json:"evidence,omitempty"`
	Strategy Strategy `json:"strategy,omitempty"`
	Needle   string   `json:"needle,omitempty"`
}

// KeywordDeriver produces candidate match keywords for an item title.
type KeywordDeriver interface {
	// Derive returns an ordered, non-empty keyword list for a non-empty title.
	Derive(title string) []string
}

// Matcher decides whether a single item is covered by the corpus.
type Matcher interface {
	Match(ctx context.Context, item *Item, keywords []string) (MatchResult, error)
}

// KeywordRule maps title trigger substrings to a fixed keyword set.
type KeywordRule struct {
	Triggers []string `json:"triggers" yaml:"triggers"`
	Keywords []string `json:"keywords" yaml:"keywords"`

	// All requires every trigger to be present instead of any.
	All bool `json:"all,omitempty" yaml:"all,omitempty"`
}

// RemediationArea names a group of topics used to bucket uncovered items.
type RemediationArea struct {
	Name     string   `json:"name" yaml:"name"`
	Triggers []string `json:"triggers" yaml:"triggers"`
}
