package bloom

import (
	"context"
	"slices"
	"strings"

	"github.com/fwojciec/doccover"
)

// DefaultFalsePositiveRate is used when NewIndex is given a non-positive rate.
const DefaultFalsePositiveRate = 0.01

// Ensure Index implements interface.
var _ doccover.Corpus = (*Index)(nil)

// Index implements doccover.Corpus over documents held in memory.
type Index struct {
	names   []string
	entries map[string]*entry
}

type entry struct {
	content string
	filter  *Filter
}

// NewIndex indexes docs. Documents are ordered by name. Returns EINVALID if a
// document is invalid or two documents share a name.
func NewIndex(docs []*doccover.Document, fpRate float64) (*Index, error) {
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = DefaultFalsePositiveRate
	}

	idx := &Index{entries: make(map[string]*entry, len(docs))}
	for _, d := range docs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, ok := idx.entries[d.Name]; ok {
			return nil, doccover.Errorf(doccover.EINVALID, "duplicate document name %q", d.Name)
		}
		idx.entries[d.Name] = newEntry(d.Content, fpRate)
		idx.names = append(idx.names, d.Name)
	}
	slices.Sort(idx.names)
	return idx, nil
}

func newEntry(content string, fpRate float64) *entry {
	runes := []rune(content)
	f := NewFilter(uint(2*len(runes)+1), fpRate)
	for i, r := range runes {
		f.Add(string(r))
		if i+1 < len(runes) {
			f.Add(string(runes[i : i+2]))
		}
	}
	return &entry{content: content, filter: f}
}

// Names returns document names in lexical order.
func (i *Index) Names() []string {
	return slices.Clone(i.names)
}

// Contains reports whether the named document contains keyword.
func (i *Index) Contains(_ context.Context, keyword, name string) (bool, error) {
	e, ok := i.entries[name]
	if !ok {
		return false, doccover.Errorf(doccover.ENOTFOUND, "document %q not found", name)
	}
	return e.contains(keyword, Grams(keyword)), nil
}

// DocumentsContaining returns the names of documents containing keyword.
func (i *Index) DocumentsContaining(_ context.Context, keyword string) ([]string, error) {
	grams := Grams(keyword)
	var names []string
	for _, name := range i.names {
		if i.entries[name].contains(keyword, grams) {
			names = append(names, name)
		}
	}
	return names, nil
}

func (e *entry) contains(keyword string, grams []string) bool {
	if !e.filter.TestAll(grams) {
		return false
	}
	return strings.Contains(e.content, keyword)
}
