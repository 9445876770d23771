// Package coverage decides which checklist items a corpus covers and
// aggregates the decisions into a report.
package coverage

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/doccover"
)

const (
	// PrefixThreshold is the rune length a normalized title must exceed
	// before prefix matching is attempted.
	PrefixThreshold = 15

	// ClauseMinLength is the rune length a leading clause must exceed to be
	// used as a needle.
	ClauseMinLength = 5
)

// prefixLengths are tried in order, longest first.
var prefixLengths = []int{20, 15}

var (
	parentheticalRe = regexp.MustCompile(`[（(].*?[)）]`)
	clauseSplitRe   = regexp.MustCompile(`[，,、]`)
)

// StripQuestionMarks removes ASCII and full-width question marks.
func StripQuestionMarks(s string) string {
	return strings.NewReplacer("?", "", "？", "").Replace(s)
}

// Normalize strips question marks and parenthetical annotations from title.
func Normalize(title string) string {
	s := StripQuestionMarks(strings.TrimSpace(title))
	return strings.TrimSpace(parentheticalRe.ReplaceAllString(s, ""))
}

// Ensure Matcher implements interface.
var _ doccover.Matcher = (*Matcher)(nil)

// Matcher implements doccover.Matcher over a doccover.Corpus.
type Matcher struct {
	Corpus doccover.Corpus

	// Policy selects the pipeline per item. Defaults to PolicyAuto.
	Policy doccover.Policy
}

// NewMatcher returns a Matcher consulting corpus with the given policy.
func NewMatcher(corpus doccover.Corpus, policy doccover.Policy) *Matcher {
	return &Matcher{Corpus: corpus, Policy: policy}
}

// PolicyFor returns the pipeline applied to item. Under PolicyAuto,
// annotated items use containment and every other item uses keywords.
func PolicyFor(policy doccover.Policy, item *doccover.Item) doccover.Policy {
	switch policy {
	case doccover.PolicyContainment, doccover.PolicyKeyword:
		return policy
	}
	if item.Form == doccover.FormAnnotated {
		return doccover.PolicyContainment
	}
	return doccover.PolicyKeyword
}

// Match decides whether item is covered. keywords are only consulted by the
// keyword pipeline.
func (m *Matcher) Match(ctx context.Context, item *doccover.Item, keywords []string) (doccover.MatchResult, error) {
	result := doccover.MatchResult{Item: item}

	var err error
	switch PolicyFor(m.Policy, item) {
	case doccover.PolicyContainment:
		err = m.matchContainment(ctx, item.Title, &result)
	default:
		err = m.matchKeywords(ctx, keywords, &result)
	}
	if err != nil {
		return doccover.MatchResult{}, fmt.Errorf("match item %d: %w", item.ID, err)
	}
	return result, nil
}

// step is one stage of the containment pipeline.
type step struct {
	strategy doccover.Strategy
	needles  func(title, normalized string) []string
}

var containmentSteps = []step{
	{strategy: doccover.StrategyExact, needles: exactNeedles},
	{strategy: doccover.StrategyPrefix, needles: prefixNeedles},
	{strategy: doccover.StrategyClause, needles: clauseNeedles},
}

func exactNeedles(title, normalized string) []string {
	title = strings.TrimSpace(title)
	return []string{title, StripQuestionMarks(title), normalized}
}

func prefixNeedles(_, normalized string) []string {
	runes := []rune(normalized)
	if len(runes) <= PrefixThreshold {
		return nil
	}
	var needles []string
	for _, n := range prefixLengths {
		if n > len(runes) {
			n = len(runes)
		}
		needles = append(needles, string(runes[:n]))
	}
	return needles
}

func clauseNeedles(_, normalized string) []string {
	clause := strings.TrimSpace(clauseSplitRe.Split(normalized, 2)[0])
	if len([]rune(clause)) <= ClauseMinLength {
		return nil
	}
	return []string{clause}
}

// matchContainment runs exact, prefix and clause matching in order. The
// evidence is the first document, in corpus order, containing the first
// needle that hits.
func (m *Matcher) matchContainment(ctx context.Context, title string, result *doccover.MatchResult) error {
	normalized := Normalize(title)
	tried := make(map[string]bool)
	for _, s := range containmentSteps {
		for _, needle := range s.needles(title, normalized) {
			if needle == "" || tried[needle] {
				continue
			}
			tried[needle] = true

			names, err := m.Corpus.DocumentsContaining(ctx, needle)
			if err != nil {
				return err
			}
			if len(names) > 0 {
				result.Covered = true
				result.Evidence = []string{names[0]}
				result.Strategy = s.strategy
				result.Needle = needle
				return nil
			}
		}
	}
	return nil
}

// matchKeywords records every document containing any keyword. Needle is
// the first keyword that hit.
func (m *Matcher) matchKeywords(ctx context.Context, keywords []string, result *doccover.MatchResult) error {
	hits := make(map[string]bool)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		names, err := m.Corpus.DocumentsContaining(ctx, kw)
		if err != nil {
			return err
		}
		if len(names) > 0 && result.Needle == "" {
			result.Needle = kw
		}
		for _, name := range names {
			hits[name] = true
		}
	}
	if len(hits) == 0 {
		return nil
	}

	// Order evidence by corpus order.
	for _, name := range m.Corpus.Names() {
		if hits[name] {
			result.Evidence = append(result.Evidence, name)
		}
	}
	result.Covered = true
	result.Strategy = doccover.StrategyKeyword
	return nil
}
