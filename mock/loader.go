package mock

import (
	"context"

	"github.com/fwojciec/doccover"
)

var _ doccover.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of doccover.DocumentLoader.
type DocumentLoader struct {
	LoadDocumentsFn func(ctx context.Context) (*doccover.LoadResult, error)
}

func (l *DocumentLoader) LoadDocuments(ctx context.Context) (*doccover.LoadResult, error) {
	return l.LoadDocumentsFn(ctx)
}
