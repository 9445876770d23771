package coverage

import (
	"context"

	"github.com/fwojciec/doccover"
)

// Analyzer runs a Matcher over every checklist item and aggregates the
// results into a doccover.Report.
type Analyzer struct {
	Corpus  doccover.Corpus
	Matcher doccover.Matcher
	Deriver doccover.KeywordDeriver

	// Remediation defaults to DefaultRemediation.
	Remediation []doccover.RemediationArea
}

// NewAnalyzer returns an Analyzer with the default remediation areas.
func NewAnalyzer(corpus doccover.Corpus, matcher doccover.Matcher, deriver doccover.KeywordDeriver) *Analyzer {
	return &Analyzer{
		Corpus:      corpus,
		Matcher:     matcher,
		Deriver:     deriver,
		Remediation: DefaultRemediation,
	}
}

// Analyze matches every item of c in order. Returns EINVALID if c has no
// items. Categories without items are reported with zero counts.
func (a *Analyzer) Analyze(ctx context.Context, c *doccover.Checklist) (*doccover.Report, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	areas := a.Remediation
	if len(areas) == 0 {
		areas = DefaultRemediation
	}

	report := &doccover.Report{
		Categories: make([]doccover.CategoryReport, 0, len(c.Categories)),
		Results:    make([]doccover.MatchResult, 0, c.Len()),
		Documents:  len(a.Corpus.Names()),
	}

	var total, covered int
	for _, cat := range c.Categories {
		cr := doccover.CategoryReport{}
		n := 0
		for _, item := range cat.Items {
			keywords := a.Deriver.Derive(item.Title)
			if len(keywords) == 0 {
				keywords = []string{item.Title}
			}
			result, err := a.Matcher.Match(ctx, item, keywords)
			if err != nil {
				return nil, err
			}
			report.Results = append(report.Results, result)
			if result.Covered {
				n++
			} else {
				cr.Uncovered = append(cr.Uncovered, item)
			}
		}
		cr.Stats = doccover.NewCategoryStats(cat.Name, len(cat.Items), n)
		report.Categories = append(report.Categories, cr)
		total += len(cat.Items)
		covered += n
	}

	report.Total = doccover.NewCategoryStats("", total, covered)
	report.Remediation = Remediation(areas, report.Uncovered())
	return report, nil
}
