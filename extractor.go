package doccover

// ExtractResult holds the readable part of an HTML document.
type ExtractResult struct {
	// Title is taken from the document head or its first heading.
	Title string

	// ContentHTML is the main content with scripts, styles and page chrome
	// removed.
	ContentHTML string
}

// Extractor selects the main content of an HTML document.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
