package doccover

import (
	"context"
	"strings"
)

// Document formats understood by loaders.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatText     = "text"
)

// Document represents one named text document of the corpus.
type Document struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Format      string `json:"format"`
	Content     string `json:"content"`
	ContentHash string `json:"contentHash"`
	Size        int    `json:"size"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	return nil
}

// LineCount returns the number of newline characters in the content.
func (d *Document) LineCount() int {
	return strings.Count(d.Content, "\n")
}

// SkippedDocument records a document that could not be loaded.
type SkippedDocument struct {
	Name string
	Err  error
}

// LoadResult holds the documents produced by a DocumentLoader.
type LoadResult struct {
	Documents []*Document
	Skipped   []SkippedDocument
}

// DocumentLoader loads the corpus documents for a run.
type DocumentLoader interface {
	// LoadDocuments returns all readable documents ordered by name.
	// Unreadable documents are reported in LoadResult.Skipped and do not fail
	// the load. A missing corpus location returns ENOTFOUND.
	LoadDocuments(ctx context.Context) (*LoadResult, error)
}

// Corpus provides read-only substring lookups over loaded documents.
type Corpus interface {
	// Names returns the document names in corpus order.
	Names() []string

	// Contains reports whether the named document contains keyword.
	// Returns ENOTFOUND if no document has that name.
	Contains(ctx context.Context, keyword, name string) (bool, error)

	// DocumentsContaining returns the names of all documents containing
	// keyword, in corpus order.
	DocumentsContaining(ctx context.Context, keyword string) ([]string, error)
}

// Normalizer rewrites document content before it is indexed.
type Normalizer interface {
	Normalize(content string) string
}
