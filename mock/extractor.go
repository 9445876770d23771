package mock

import "github.com/fwojciec/doccover"

var _ doccover.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of doccover.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*doccover.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*doccover.ExtractResult, error) {
	return e.ExtractFn(html)
}
