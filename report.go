package doccover

import "fmt"

// Tier is a discrete coverage-quality label derived from a coverage rate.
// Tiers are ordered: a greater Tier is a better one.
type Tier int

// Coverage tiers, worst first.
const (
	TierEmpty Tier = iota
	TierPoor
	TierFair
	TierGood
	TierExcellent
	TierComplete
)

var tierNames = map[Tier]string{
	TierEmpty:     "empty",
	TierPoor:      "poor",
	TierFair:      "fair",
	TierGood:      "good",
	TierExcellent: "excellent",
	TierComplete:  "complete",
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tier(%d)", int(t))
}

// MarshalText encodes the tier by name.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tier name.
func (t *Tier) UnmarshalText(b []byte) error {
	for tier, name := range tierNames {
		if name == string(b) {
			*t = tier
			return nil
		}
	}
	return Errorf(EINVALID, "unknown tier %q", string(b))
}

// tierThresholds is evaluated top to bottom; the first inclusive lower
// bound not above the rate wins.
var tierThresholds = []struct {
	min  float64
	tier Tier
}{
	{100, TierComplete},
	{80, TierExcellent},
	{60, TierGood},
	{40, TierFair},
	{0, TierPoor},
}

// ClassifyTier maps a coverage rate in percent to its tier.
func ClassifyTier(rate float64) Tier {
	for _, th := range tierThresholds {
		if rate >= th.min {
			return th.tier
		}
	}
	return TierPoor
}

// CategoryStats holds coverage counts for one category or for the whole checklist.
type CategoryStats struct {
	Category string  `json:"category"`
	Total    int     `json:"total"`
	Covered  int     `json:"covered"`
	Rate     float64 `json:"rate"`
	Tier     Tier    `json:"tier"`
}

// NewCategoryStats computes the rate and tier for the given counts.
// A category without items has rate 0 and TierEmpty.
func NewCategoryStats(category string, total, covered int) CategoryStats {
	s := CategoryStats{Category: category, Total: total, Covered: covered}
	if total == 0 {
		s.Tier = TierEmpty
		return s
	}
	s.Rate = float64(covered) / float64(total) * 100
	s.Tier = ClassifyTier(s.Rate)
	return s
}

// Uncovered returns the number of items not covered.
func (s CategoryStats) Uncovered() int {
	return s.Total - s.Covered
}

// CategoryReport pairs a category's statistics with its uncovered items.
type CategoryReport struct {
	Stats     CategoryStats `json:"stats"`
	Uncovered []*Item       `json:"uncovered,omitempty"`
}

// RemediationGroup lists uncovered items that share a remediation area.
type RemediationGroup struct {
	Area  string  `json:"area"`
	Items []*Item `json:"items"`
}

// Report is the outcome of a coverage analysis run.
type Report struct {
	Categories  []CategoryReport   `json:"categories"`
	Total       CategoryStats      `json:"total"`
	Results     []MatchResult      `json:"results"`
	Remediation []RemediationGroup `json:"remediation,omitempty"`
	Documents   int                `json:"documents"`
	CorpusHash  string             `json:"corpusHash"`
}

// Uncovered returns all uncovered items in checklist order.
func (r *Report) Uncovered() []*Item {
	var items []*Item
	for _, c := range r.Categories {
		items = append(items, c.Uncovered...)
	}
	return items
}
