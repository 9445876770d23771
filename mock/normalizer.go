package mock

import "github.com/fwojciec/doccover"

var _ doccover.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of doccover.Normalizer.
type Normalizer struct {
	NormalizeFn func(content string) string
}

func (n *Normalizer) Normalize(content string) string {
	return n.NormalizeFn(content)
}
