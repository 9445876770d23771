package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/doccover"
	"github.com/fwojciec/doccover/mock"
	dcslog "github.com/fwojciec/doccover/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingCorpus_DocumentsContaining(t *testing.T) {
	t.Parallel()

	t.Run("logs keyword and count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Corpus{
			DocumentsContainingFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{"a.md", "b.md"}, nil
			},
		}

		names, err := dcslog.NewLoggingCorpus(inner, debugLogger(&buf)).DocumentsContaining(context.Background(), "closure")

		require.NoError(t, err)
		assert.Len(t, names, 2)
		output := buf.String()
		assert.Contains(t, output, "corpus lookup")
		assert.Contains(t, output, "keyword=closure")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("silent above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Corpus{
			DocumentsContainingFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, nil
			},
		}

		_, err := dcslog.NewLoggingCorpus(inner, slog.New(slog.NewTextHandler(&buf, nil))).DocumentsContaining(context.Background(), "x")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Corpus{
			DocumentsContainingFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, errors.New("query failed")
			},
		}

		_, err := dcslog.NewLoggingCorpus(inner, debugLogger(&buf)).DocumentsContaining(context.Background(), "x")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"query failed\"")
	})
}

func TestLoggingCorpus_Contains(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Corpus{
		NamesFn: func() []string { return []string{"a.md"} },
		ContainsFn: func(_ context.Context, _, _ string) (bool, error) {
			return true, nil
		},
	}
	c := dcslog.NewLoggingCorpus(inner, debugLogger(&buf))

	ok, err := c.Contains(context.Background(), "closure", "a.md")

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a.md"}, c.Names())
	output := buf.String()
	assert.Contains(t, output, "corpus contains")
	assert.Contains(t, output, "name=a.md")
	assert.Contains(t, output, "found=true")
}

func TestLoggingMatcher_Match(t *testing.T) {
	t.Parallel()

	t.Run("logs decision", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Matcher{
			MatchFn: func(_ context.Context, item *doccover.Item, _ []string) (doccover.MatchResult, error) {
				return doccover.MatchResult{
					Item:     item,
					Covered:  true,
					Evidence: []string{"a.md"},
					Strategy: doccover.StrategyKeyword,
					Needle:   "closure",
				}, nil
			},
		}

		result, err := dcslog.NewLoggingMatcher(inner, debugLogger(&buf)).Match(context.Background(), &doccover.Item{ID: 4}, []string{"closure"})

		require.NoError(t, err)
		assert.True(t, result.Covered)
		output := buf.String()
		assert.Contains(t, output, "match item")
		assert.Contains(t, output, "id=4")
		assert.Contains(t, output, "covered=true")
		assert.Contains(t, output, "strategy=keyword")
		assert.Contains(t, output, "needle=closure")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Matcher{
			MatchFn: func(_ context.Context, _ *doccover.Item, _ []string) (doccover.MatchResult, error) {
				return doccover.MatchResult{}, errors.New("boom")
			},
		}

		_, err := dcslog.NewLoggingMatcher(inner, debugLogger(&buf)).Match(context.Background(), &doccover.Item{ID: 9}, nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "id=9")
		assert.Contains(t, buf.String(), "duration=")
		assert.Contains(t, buf.String(), "err=boom")
	})
}
