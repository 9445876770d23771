package doccover

import (
	"regexp"
	"strings"
)

var (
	sectionHeadingRe = regexp.MustCompile(`(?m)^(#{1,6})\s+(.+)$`)
	codeFenceRe      = regexp.MustCompile("(?s)```.*?```")
)

// Section represents a heading in a markdown document.
type Section struct {
	Level int    `json:"level"`
	Title string `json:"title"`
}

// ExtractSections returns the markdown headings of a document in order.
// Headings inside fenced code blocks are ignored.
func ExtractSections(markdown string) []Section {
	if markdown == "" {
		return nil
	}

	matches := sectionHeadingRe.FindAllStringSubmatch(codeFenceRe.ReplaceAllString(markdown, ""), -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	for _, m := range matches {
		sections = append(sections, Section{
			Level: len(m[1]),
			Title: strings.TrimSpace(m[2]),
		})
	}
	return sections
}

// CountSections returns the number of headings at level in markdown.
func CountSections(markdown string, level int) int {
	n := 0
	for _, s := range ExtractSections(markdown) {
		if s.Level == level {
			n++
		}
	}
	return n
}
