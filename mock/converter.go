package mock

import "github.com/fwojciec/doccover"

var _ doccover.Converter = (*Converter)(nil)

// Converter is a mock implementation of doccover.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
