package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/doccover"
)

// DefaultSuffixes selects markdown documents.
var DefaultSuffixes = []string{".md"}

// DefaultExclude lists report and meta files that live next to the corpus
// but are not part of it.
var DefaultExclude = []string{"README.md", "图片问题完整清单.md", "质量检查报告.md"}

// Ensure Loader implements doccover.DocumentLoader at compile time.
var _ doccover.DocumentLoader = (*Loader)(nil)

// Loader reads corpus documents from a directory.
type Loader struct {
	Dir string

	// Suffixes selects files by extension, case-insensitively.
	Suffixes []string

	// Exclude lists document names to omit. A name matches either the path
	// relative to Dir or the base name.
	Exclude []string

	// Recursive descends into subdirectories. Hidden directories are always
	// skipped.
	Recursive bool

	// Extractor and Converter turn HTML documents into markdown. HTML files
	// are skipped when either is nil.
	Extractor doccover.Extractor
	Converter doccover.Converter

	// Normalizer, when set, rewrites markdown content.
	Normalizer doccover.Normalizer
}

// NewLoader returns a Loader for dir with the default suffixes and exclusions.
func NewLoader(dir string) *Loader {
	return &Loader{
		Dir:      dir,
		Suffixes: DefaultSuffixes,
		Exclude:  DefaultExclude,
	}
}

// LoadDocuments reads every matching file under Dir, ordered by name.
func (l *Loader) LoadDocuments(ctx context.Context) (*doccover.LoadResult, error) {
	root := filepath.Clean(l.Dir)
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil, doccover.Errorf(doccover.ENOTFOUND, "corpus directory not found: %s", l.Dir)
	} else if err != nil {
		return nil, err
	} else if !info.IsDir() {
		return nil, doccover.Errorf(doccover.EINVALID, "corpus path is not a directory: %s", l.Dir)
	}

	excluded := make(map[string]bool, len(l.Exclude))
	for _, x := range l.Exclude {
		excluded[filepath.ToSlash(strings.TrimSpace(x))] = true
	}

	result := &doccover.LoadResult{}
	err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			result.Skipped = append(result.Skipped, doccover.SkippedDocument{Name: relName(root, path), Err: walkErr})
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != root && (!l.Recursive || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		name := relName(root, path)
		if excluded[name] || excluded[d.Name()] || !l.selected(d.Name()) {
			return nil
		}

		doc, err := l.load(path, name)
		if err != nil {
			result.Skipped = append(result.Skipped, doccover.SkippedDocument{Name: name, Err: err})
			return nil
		}
		result.Documents = append(result.Documents, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(result.Documents, func(a, b *doccover.Document) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result, nil
}

func relName(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func (l *Loader) selected(base string) bool {
	lower := strings.ToLower(base)
	for _, s := range l.Suffixes {
		if strings.HasSuffix(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// FormatOf returns the document format implied by a file name.
func FormatOf(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return doccover.FormatHTML
	case ".md", ".markdown":
		return doccover.FormatMarkdown
	default:
		return doccover.FormatText
	}
}

func (l *Loader) load(path, name string) (*doccover.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(b) {
		return nil, doccover.Errorf(doccover.EINVALID, "not valid UTF-8")
	}

	doc := &doccover.Document{
		Name:    name,
		Path:    path,
		Format:  FormatOf(name),
		Content: strings.TrimPrefix(string(b), "\ufeff"),
		Size:    len(b),
	}

	switch doc.Format {
	case doccover.FormatHTML:
		content, err := l.convertHTML(doc.Content)
		if err != nil {
			return nil, err
		}
		doc.Content = content
	case doccover.FormatMarkdown:
		if l.Normalizer != nil {
			doc.Content = l.Normalizer.Normalize(doc.Content)
		}
	}

	doc.ContentHash = ContentHash(doc.Content)
	return doc, nil
}

var errNoHTMLSupport = errors.New("no HTML extractor configured")

func (l *Loader) convertHTML(html string) (string, error) {
	if l.Extractor == nil || l.Converter == nil {
		return "", errNoHTMLSupport
	}
	extracted, err := l.Extractor.Extract(html)
	if err != nil {
		return "", err
	}
	md, err := l.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return "", err
	}
	if extracted.Title != "" && !strings.Contains(md, extracted.Title) {
		md = "# " + extracted.Title + "\n\n" + md
	}
	return md, nil
}
