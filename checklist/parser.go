package checklist

import (
	"strings"

	"github.com/fwojciec/doccover"
)

// Parser turns checklist text into a doccover.Checklist.
type Parser struct {
	rules []Rule
}

// NewParser returns a Parser using the rule table built from cfg.
func NewParser(cfg Config) *Parser {
	return &Parser{rules: Rules(cfg)}
}

// Parse classifies every line of text and folds the result into a checklist.
// Parse never fails: lines that cannot be used are recorded in Skipped.
func (p *Parser) Parse(text string) *doccover.Checklist {
	acc := newAccumulator()
	p.each(text, func(l Line, kind doccover.LineKind, rule string) {
		acc = acc.step(l, kind, rule)
	})
	return acc.checklist
}

// Trace returns the classification of every non-empty line without building
// a checklist.
func (p *Parser) Trace(text string) []doccover.LineTrace {
	var traces []doccover.LineTrace
	p.each(text, func(l Line, kind doccover.LineKind, rule string) {
		traces = append(traces, doccover.LineTrace{
			Line:    l.No,
			Form:    l.Form,
			Content: l.Content,
			Kind:    kind,
			Rule:    rule,
		})
	})
	return traces
}

func (p *Parser) each(text string, fn func(Line, doccover.LineKind, string)) {
	text = strings.TrimPrefix(text, "\ufeff")
	for i, raw := range strings.Split(text, "\n") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		l := ParseLine(i+1, raw)
		kind, rule := Classify(p.rules, l)
		fn(l, kind, rule)
	}
}

// accumulator carries the parse state from one line to the next.
type accumulator struct {
	checklist *doccover.Checklist
	current   *doccover.Category
	ids       map[int]bool
}

func newAccumulator() accumulator {
	return accumulator{
		checklist: &doccover.Checklist{},
		ids:       make(map[int]bool),
	}
}

func (a accumulator) step(l Line, kind doccover.LineKind, rule string) accumulator {
	switch kind {
	case doccover.KindHeader:
		a.current = a.open(CategoryName(l.Content))
	case doccover.KindItem:
		if a.ids[l.Number] {
			return a.skip(l, "duplicate id")
		}
		if a.current == nil {
			a.current = a.open(doccover.UnassignedCategory)
		}
		a.ids[l.Number] = true
		a.current.Items = append(a.current.Items, &doccover.Item{
			ID:       l.Number,
			Title:    l.Content,
			Category: a.current.Name,
			Form:     l.Form,
			Line:     l.No,
		})
	default:
		return a.skip(l, rule)
	}
	return a
}

// open appends a new category. Every header opens one, so a repeated name
// yields a separate entry and categories stay in source order.
func (a accumulator) open(name string) *doccover.Category {
	c := &doccover.Category{Name: name}
	a.checklist.Categories = append(a.checklist.Categories, c)
	return c
}

func (a accumulator) skip(l Line, reason string) accumulator {
	a.checklist.Skipped = append(a.checklist.Skipped, doccover.SkippedLine{
		Line:   l.No,
		Text:   l.Content,
		Reason: reason,
	})
	return a
}
