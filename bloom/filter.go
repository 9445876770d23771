// Package bloom provides an in-memory corpus index that uses Bloom filters
// of rune bigrams to rule out documents before scanning them.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter over the n-grams of one document.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected grams
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a gram to the filter.
func (f *Filter) Add(gram string) {
	f.f.AddString(gram)
}

// Test returns true if the gram might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(gram string) bool {
	return f.f.TestString(gram)
}

// TestAll returns false if any gram is definitely absent.
func (f *Filter) TestAll(grams []string) bool {
	for _, g := range grams {
		if !f.f.TestString(g) {
			return false
		}
	}
	return true
}

// EstimatedCount returns the approximate number of grams in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}

// Grams returns the rune bigrams of s, or s itself when it is a single rune.
// Every substring of a document has all of its grams in the document's gram
// set.
func Grams(s string) []string {
	runes := []rune(s)
	if len(runes) < 2 {
		if len(runes) == 0 {
			return nil
		}
		return []string{s}
	}
	grams := make([]string, 0, len(runes)-1)
	for i := 0; i+1 < len(runes); i++ {
		grams = append(grams, string(runes[i:i+2]))
	}
	return grams
}
