package doccover

// Converter converts HTML corpus documents to Markdown.
type Converter interface {
	// Convert transforms clean HTML, usually produced by an Extractor, into
	// Markdown. Blank input returns EINVALID.
	Convert(html string) (string, error)
}
