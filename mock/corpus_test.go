package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/doccover"
	"github.com/fwojciec/doccover/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpus_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ doccover.Corpus = &mock.Corpus{}
}

func TestCorpus_DocumentsContaining(t *testing.T) {
	t.Parallel()

	t.Run("delegates to DocumentsContainingFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		c := &mock.Corpus{
			DocumentsContainingFn: func(_ context.Context, keyword string) ([]string, error) {
				calledWith = keyword
				return []string{"a.md"}, nil
			},
		}

		names, err := c.DocumentsContaining(context.Background(), "closure")

		require.NoError(t, err)
		assert.Equal(t, "closure", calledWith)
		assert.Equal(t, []string{"a.md"}, names)
	})

	t.Run("returns error from DocumentsContainingFn", func(t *testing.T) {
		t.Parallel()

		c := &mock.Corpus{
			DocumentsContainingFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, doccover.Errorf(doccover.EINTERNAL, "boom")
			},
		}

		_, err := c.DocumentsContaining(context.Background(), "closure")

		assert.Equal(t, doccover.EINTERNAL, doccover.ErrorCode(err))
	})
}
