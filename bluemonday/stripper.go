// Package bluemonday strips inline HTML from markdown corpus documents.
package bluemonday

import (
	"html"
	"regexp"
	"strings"

	"github.com/fwojciec/doccover"
	"github.com/microcosm-cc/bluemonday"
)

// codeRe matches fenced code blocks and inline code spans, which are kept
// verbatim so generics and JSX in examples survive.
var codeRe = regexp.MustCompile("(?s)```.*?```|`[^`\n]+`")

// Ensure Stripper implements doccover.Normalizer at compile time.
var _ doccover.Normalizer = (*Stripper)(nil)

// Stripper removes HTML tags from markdown prose while keeping their text,
// so "<b>闭包</b>的定义" matches "闭包的定义".
type Stripper struct {
	policy *bluemonday.Policy
}

// NewStripper returns a Stripper using the strict policy, which allows no
// elements at all.
func NewStripper() *Stripper {
	return &Stripper{policy: bluemonday.StrictPolicy()}
}

// Normalize strips tags outside code and unescapes the entities the policy
// introduces.
func (s *Stripper) Normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, loc := range codeRe.FindAllStringIndex(content, -1) {
		b.WriteString(s.strip(content[last:loc[0]]))
		b.WriteString(content[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(s.strip(content[last:]))
	return b.String()
}

func (s *Stripper) strip(text string) string {
	if !strings.Contains(text, "<") {
		return text
	}
	return html.UnescapeString(s.policy.Sanitize(text))
}
