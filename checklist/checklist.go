// Package checklist parses checklist text into categorized items.
//
// Every line is decoded into a Line and then classified by an ordered rule
// table. The first matching rule decides whether the line opens a category,
// adds an item to the current category, or is skipped.
package checklist

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/doccover"
)

// DefaultHeaderMaxLength is the rune length below which a question-free line
// is read as a category header.
const DefaultHeaderMaxLength = 30

// DefaultVocabulary lists the category labels of the interview question bank
// the checker was first written for.
var DefaultVocabulary = []string{
	"数据结构和算法",
	"开发语言",
	"前端框架",
	"性能优化",
	"debug能力",
	"前端监控",
	"跨端经验",
	"工程化/架构设计",
	"网络协议",
	"web安全",
}

var (
	numberedRe  = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)
	annotatedRe = regexp.MustCompile(`^(\d+)→(.+)$`)
	headingRe   = regexp.MustCompile(`^#{1,6}\s+(.+)$`)
)

// Line is a decoded, non-empty checklist line.
type Line struct {
	No      int
	Form    doccover.LineForm
	Number  int
	Content string
}

// ParseLine decodes a trimmed, non-empty line.
func ParseLine(no int, text string) Line {
	if m := numberedRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return Line{No: no, Form: doccover.FormNumbered, Number: n, Content: strings.TrimSpace(m[2])}
		}
	}
	if m := annotatedRe.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return Line{No: no, Form: doccover.FormAnnotated, Number: n, Content: strings.TrimSpace(m[2])}
		}
	}
	if m := headingRe.FindStringSubmatch(text); m != nil {
		return Line{No: no, Form: doccover.FormHeading, Content: strings.TrimSpace(m[1])}
	}
	return Line{No: no, Form: doccover.FormPlain, Content: text}
}

// HasQuestionMark reports whether s contains an ASCII or full-width question mark.
func HasQuestionMark(s string) bool {
	return strings.ContainsAny(s, "?？")
}

// HasParenthetical reports whether s contains an ASCII or full-width opening parenthesis.
func HasParenthetical(s string) bool {
	return strings.ContainsAny(s, "(（")
}

// CategoryName derives a category name from header content by cutting any
// parenthetical description. Content that starts with a parenthesis is kept whole.
func CategoryName(content string) string {
	content = strings.TrimSpace(content)
	if i := strings.IndexAny(content, "(（"); i > 0 {
		if name := strings.TrimSpace(content[:i]); name != "" {
			return name
		}
	}
	return content
}

// Config customizes classification.
type Config struct {
	// Vocabulary lists labels that always mark a header. Defaults to DefaultVocabulary.
	Vocabulary []string

	// HeaderMaxLength defaults to DefaultHeaderMaxLength.
	HeaderMaxLength int
}

// Rule classifies lines that satisfy Match as Kind.
type Rule struct {
	Name  string
	Match func(Line) bool
	Kind  doccover.LineKind
}

// Rules returns the ordered classification table for cfg.
func Rules(cfg Config) []Rule {
	vocabulary := cfg.Vocabulary
	if len(vocabulary) == 0 {
		vocabulary = DefaultVocabulary
	}
	maxLen := cfg.HeaderMaxLength
	if maxLen <= 0 {
		maxLen = DefaultHeaderMaxLength
	}

	unnumbered := func(l Line) bool {
		return l.Form == doccover.FormAnnotated || l.Form == doccover.FormPlain
	}

	return []Rule{
		{
			Name: "vocabulary",
			Kind: doccover.KindHeader,
			Match: func(l Line) bool {
				for _, label := range vocabulary {
					if strings.Contains(l.Content, label) {
						return true
					}
				}
				return false
			},
		},
		{
			Name:  "heading",
			Kind:  doccover.KindHeader,
			Match: func(l Line) bool { return l.Form == doccover.FormHeading },
		},
		{
			Name:  "numbered",
			Kind:  doccover.KindItem,
			Match: func(l Line) bool { return l.Form == doccover.FormNumbered },
		},
		{
			Name: "question",
			Kind: doccover.KindItem,
			Match: func(l Line) bool {
				return l.Form == doccover.FormAnnotated && HasQuestionMark(l.Content)
			},
		},
		{
			Name: "plain-question",
			Kind: doccover.KindSkip,
			Match: func(l Line) bool {
				return l.Form == doccover.FormPlain && HasQuestionMark(l.Content)
			},
		},
		{
			Name: "short",
			Kind: doccover.KindHeader,
			Match: func(l Line) bool {
				return unnumbered(l) && utf8.RuneCountInString(l.Content) < maxLen
			},
		},
		{
			Name: "parenthetical",
			Kind: doccover.KindHeader,
			Match: func(l Line) bool {
				return unnumbered(l) && HasParenthetical(l.Content)
			},
		},
		{
			Name:  "annotated",
			Kind:  doccover.KindItem,
			Match: func(l Line) bool { return l.Form == doccover.FormAnnotated },
		},
	}
}

// Classify returns the kind and rule name of the first rule matching l.
// Lines matching no rule are skipped under the "unrecognized" rule.
func Classify(rules []Rule, l Line) (doccover.LineKind, string) {
	for _, r := range rules {
		if r.Match(l) {
			return r.Kind, r.Name
		}
	}
	return doccover.KindSkip, "unrecognized"
}
