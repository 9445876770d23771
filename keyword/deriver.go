// Package keyword derives match keywords from checklist item titles.
//
// A Deriver consults an ordered topic table first. When no rule is
// triggered it falls back to the word tokens of the title.
package keyword

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/doccover"
)

// MinTokenLength is the rune length a fallback token must exceed.
const MinTokenLength = 2

// Ensure Deriver implements interface.
var _ doccover.KeywordDeriver = (*Deriver)(nil)

// Deriver implements doccover.KeywordDeriver with an ordered rule table.
type Deriver struct {
	rules []doccover.KeywordRule
}

// NewDeriver returns a Deriver evaluating rules in order. A nil or empty
// table uses DefaultRules.
func NewDeriver(rules []doccover.KeywordRule) *Deriver {
	if len(rules) == 0 {
		rules = DefaultRules
	}
	return &Deriver{rules: rules}
}

// Derive returns the keywords for title. The result is non-empty for any
// title that is not blank.
func (d *Deriver) Derive(title string) []string {
	keywords, _ := d.Explain(title)
	return keywords
}

// Explain returns the keywords for title together with the rule that
// produced them. A nil rule means the fallback tokenizer was used.
func (d *Deriver) Explain(title string) ([]string, *doccover.KeywordRule) {
	lower := strings.ToLower(title)
	for i := range d.rules {
		if triggered(d.rules[i], lower) {
			return dedupe(d.rules[i].Keywords), &d.rules[i]
		}
	}
	return Tokens(title), nil
}

func triggered(rule doccover.KeywordRule, lower string) bool {
	for _, t := range rule.Triggers {
		hit := strings.Contains(lower, strings.ToLower(t))
		if rule.All && !hit {
			return false
		}
		if !rule.All && hit {
			return true
		}
	}
	return rule.All && len(rule.Triggers) > 0
}

// Tokens splits title into word tokens longer than MinTokenLength runes.
// When no token qualifies the whole trimmed title is returned, so the
// result is empty only for a blank title.
func Tokens(title string) []string {
	fields := strings.FieldsFunc(title, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	var tokens []string
	for _, f := range fields {
		if utf8.RuneCountInString(f) > MinTokenLength {
			tokens = append(tokens, f)
		}
	}
	tokens = dedupe(tokens)
	if len(tokens) == 0 {
		if t := strings.TrimSpace(title); t != "" {
			return []string{t}
		}
	}
	return tokens
}

func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}
