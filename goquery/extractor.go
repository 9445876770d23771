// Package goquery extracts the main content of HTML corpus documents.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/doccover"
)

// boilerplate lists elements removed before content is selected.
const boilerplate = "script, style, noscript, template, nav, header, footer, aside, form, iframe"

// contentSelectors are tried in order; the first non-empty match wins.
var contentSelectors = []string{"main", "article", "[role=main]", "body"}

// Ensure Extractor implements doccover.Extractor at compile time.
var _ doccover.Extractor = (*Extractor)(nil)

// Extractor selects the main content of an HTML document with CSS selectors.
// Unlike readability heuristics it keeps short sections, which often carry
// nothing but a heading that names a checklist item.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns its title and main content.
func (e *Extractor) Extract(rawHTML string) (*doccover.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, doccover.Errorf(doccover.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, doccover.Errorf(doccover.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("head title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	doc.Find(boilerplate).Remove()

	for _, sel := range contentSelectors {
		s := doc.Find(sel).First()
		if s.Length() == 0 || strings.TrimSpace(s.Text()) == "" {
			continue
		}
		content, err := s.Html()
		if err != nil {
			return nil, err
		}
		return &doccover.ExtractResult{Title: title, ContentHTML: strings.TrimSpace(content)}, nil
	}

	return nil, doccover.Errorf(doccover.EINVALID, "no content found")
}
