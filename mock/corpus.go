package mock

import (
	"context"

	"github.com/fwojciec/doccover"
)

var _ doccover.Corpus = (*Corpus)(nil)

// Corpus is a mock implementation of doccover.Corpus.
type Corpus struct {
	NamesFn               func() []string
	ContainsFn            func(ctx context.Context, keyword, name string) (bool, error)
	DocumentsContainingFn func(ctx context.Context, keyword string) ([]string, error)
}

func (c *Corpus) Names() []string {
	return c.NamesFn()
}

func (c *Corpus) Contains(ctx context.Context, keyword, name string) (bool, error) {
	return c.ContainsFn(ctx, keyword, name)
}

func (c *Corpus) DocumentsContaining(ctx context.Context, keyword string) ([]string, error) {
	return c.DocumentsContainingFn(ctx, keyword)
}
