package main_test

import (
	"context"
	"testing"

	"github.com/fwojciec/doccover"
	main "github.com/fwojciec/doccover/cmd/doccover"
	"github.com/fwojciec/doccover/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsCmd_Run(t *testing.T) {
	t.Parallel()

	guide := &doccover.Document{Name: "guide.md", Content: "# Guide\n## 防抖\n## 节流\n", Size: 30}
	other := &doccover.Document{Name: "other.md", Content: "plain text", Size: 10}

	t.Run("lists document statistics", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(staticLoader(guide, other))

		cmd := &main.DocsCmd{CorpusFlags: main.CorpusFlags{Corpus: "docs"}}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "Documents in docs (2 total)")
		assert.Contains(t, out, "guide.md")
		assert.Contains(t, out, "30 B")
		assert.Contains(t, out, "other.md")
		assert.NotContains(t, out, "documents contain")
	})

	t.Run("marks documents containing keyword", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(staticLoader(guide, other))

		cmd := &main.DocsCmd{CorpusFlags: main.CorpusFlags{Corpus: "docs"}, Contains: "防抖"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "1 of 2 documents contain \"防抖\"")
	})

	t.Run("uses injected index", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(staticLoader(guide))
		deps.Index = func(_ context.Context, _ []*doccover.Document) (doccover.Corpus, error) {
			return &mock.Corpus{
				NamesFn: func() []string { return []string{"guide.md"} },
				ContainsFn: func(_ context.Context, _, _ string) (bool, error) {
					return true, nil
				},
			}, nil
		}

		cmd := &main.DocsCmd{CorpusFlags: main.CorpusFlags{Corpus: "docs"}, Contains: "anything"}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "1 of 1 documents contain")
	})

	t.Run("prints indexed content with --full", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(staticLoader(guide))

		cmd := &main.DocsCmd{CorpusFlags: main.CorpusFlags{Corpus: "docs"}, Full: true}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "## Document: guide.md\n# Guide")
	})

	t.Run("reports empty corpus", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(staticLoader())

		cmd := &main.DocsCmd{CorpusFlags: main.CorpusFlags{Corpus: "docs"}}
		err := cmd.Run(deps)

		assert.Equal(t, doccover.ENOTFOUND, doccover.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no documents found")
	})
}
