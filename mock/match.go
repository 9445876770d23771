package mock

import (
	"context"

	"github.com/fwojciec/doccover"
)

var _ doccover.KeywordDeriver = (*KeywordDeriver)(nil)

// KeywordDeriver is a mock implementation of doccover.KeywordDeriver.
type KeywordDeriver struct {
	DeriveFn func(title string) []string
}

func (d *KeywordDeriver) Derive(title string) []string {
	return d.DeriveFn(title)
}

var _ doccover.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of doccover.Matcher.
type Matcher struct {
	MatchFn func(ctx context.Context, item *doccover.Item, keywords []string) (doccover.MatchResult, error)
}

func (m *Matcher) Match(ctx context.Context, item *doccover.Item, keywords []string) (doccover.MatchResult, error) {
	return m.MatchFn(ctx, item, keywords)
}
