// Package htmltomarkdown converts extracted HTML corpus documents to
// Markdown so they are matched the same way as native markdown files.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/doccover"
)

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Ensure Converter implements doccover.Converter at compile time.
var _ doccover.Converter = (*Converter)(nil)

// Converter turns an HTML corpus document into Markdown text ready for
// matching. It uses html-to-markdown with the commonmark and table plugins,
// then tidies the result: runs of three or more newlines become a single
// blank line and surrounding whitespace is trimmed.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Blank input returns an
// EINVALID error; a conversion failure returns EINTERNAL.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", doccover.Errorf(doccover.EINVALID, "empty HTML input")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", doccover.Errorf(doccover.EINTERNAL, "convert HTML: %v", err)
	}

	return tidy(md), nil
}

// tidy collapses blank-line runs and trims the document.
func tidy(md string) string {
	return strings.TrimSpace(blankRunRe.ReplaceAllString(md, "\n\n"))
}
