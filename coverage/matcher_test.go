package coverage_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/doccover"
	"github.com/fwojciec/doccover/coverage"
	"github.com/fwojciec/doccover/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	name    string
	content string
}

// newCorpus returns an in-memory corpus over docs, in the given order.
func newCorpus(docs ...doc) *mock.Corpus {
	names := make([]string, len(docs))
	for i, d := range docs {
		names[i] = d.name
	}
	return &mock.Corpus{
		NamesFn: func() []string { return names },
		ContainsFn: func(_ context.Context, keyword, name string) (bool, error) {
			for _, d := range docs {
				if d.name == name {
					return strings.Contains(d.content, keyword), nil
				}
			}
			return false, doccover.Errorf(doccover.ENOTFOUND, "document not found")
		},
		DocumentsContainingFn: func(_ context.Context, keyword string) ([]string, error) {
			var out []string
			for _, d := range docs {
				if strings.Contains(d.content, keyword) {
					out = append(out, d.name)
				}
			}
			return out, nil
		},
	}
}

func annotated(id int, title string) *doccover.Item {
	return &doccover.Item{ID: id, Title: title, Form: doccover.FormAnnotated}
}

func numbered(id int, title string) *doccover.Item {
	return &doccover.Item{ID: id, Title: title, Form: doccover.FormNumbered}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"什么是闭包？", "什么是闭包"},
		{"What is a closure?", "What is a closure"},
		{"如何实现防抖（debounce）？", "如何实现防抖"},
		{"useEffect (hooks) vs useLayoutEffect (hooks)?", "useEffect  vs useLayoutEffect"},
		{"  plain  ", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, coverage.Normalize(tt.title), tt.title)
	}
}

func TestPolicyFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, doccover.PolicyContainment, coverage.PolicyFor(doccover.PolicyAuto, annotated(1, "x")))
	assert.Equal(t, doccover.PolicyKeyword, coverage.PolicyFor(doccover.PolicyAuto, numbered(1, "x")))
	assert.Equal(t, doccover.PolicyKeyword, coverage.PolicyFor("", numbered(1, "x")))
	assert.Equal(t, doccover.PolicyKeyword, coverage.PolicyFor(doccover.PolicyKeyword, annotated(1, "x")))
	assert.Equal(t, doccover.PolicyContainment, coverage.PolicyFor(doccover.PolicyContainment, numbered(1, "x")))
}

func TestMatcher_Containment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		title        string
		content      string
		wantCovered  bool
		wantStrategy doccover.Strategy
		wantNeedle   string
	}{
		{
			name:         "raw title",
			title:        "什么是闭包？",
			content:      "## 什么是闭包？\n闭包是函数和其词法环境的组合。",
			wantCovered:  true,
			wantStrategy: doccover.StrategyExact,
			wantNeedle:   "什么是闭包？",
		},
		{
			name:         "normalized title",
			title:        "什么是闭包（closure）？",
			content:      "## 什么是闭包\n闭包是函数和其词法环境的组合。",
			wantCovered:  true,
			wantStrategy: doccover.StrategyExact,
			wantNeedle:   "什么是闭包",
		},
		{
			name:         "twenty rune prefix",
			title:        "解释事件循环机制以及宏任务与微任务之间的执行顺序和差异",
			content:      "解释事件循环机制以及宏任务与微任务之间的关系",
			wantCovered:  true,
			wantStrategy: doccover.StrategyPrefix,
			wantNeedle:   "解释事件循环机制以及宏任务与微任务之间的",
		},
		{
			name:         "fifteen rune prefix",
			title:        "解释事件循环机制以及宏任务与微任务之间的执行顺序和差异",
			content:      "解释事件循环机制以及宏任务与微，详见下文",
			wantCovered:  true,
			wantStrategy: doccover.StrategyPrefix,
			wantNeedle:   "解释事件循环机制以及宏任务与微",
		},
		{
			name:         "leading clause",
			title:        "闭包的基本概念，以及在实际项目中的应用场景？",
			content:      "闭包的基本概念：函数与词法环境",
			wantCovered:  true,
			wantStrategy: doccover.StrategyClause,
			wantNeedle:   "闭包的基本概念",
		},
		{
			name:    "short leading clause is ignored",
			title:   "闭包概念，应用场景？",
			content: "闭包概念",
		},
		{
			name:    "no match",
			title:   "什么是原型链？",
			content: "闭包是函数和其词法环境的组合。",
		},
		{
			name:    "title reduced to nothing",
			title:   "（待补充）？",
			content: "anything",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := coverage.NewMatcher(newCorpus(doc{"a.md", tt.content}), doccover.PolicyAuto)
			item := annotated(1, tt.title)

			got, err := m.Match(context.Background(), item, nil)

			require.NoError(t, err)
			assert.Same(t, item, got.Item)
			assert.Equal(t, tt.wantCovered, got.Covered)
			assert.Equal(t, tt.wantStrategy, got.Strategy)
			assert.Equal(t, tt.wantNeedle, got.Needle)
			if tt.wantCovered {
				assert.Equal(t, []string{"a.md"}, got.Evidence)
			} else {
				assert.Empty(t, got.Evidence)
			}
		})
	}
}

func TestMatcher_Keyword(t *testing.T) {
	t.Parallel()

	t.Run("first hitting keyword becomes the needle", func(t *testing.T) {
		t.Parallel()

		m := coverage.NewMatcher(newCorpus(
			doc{"a.md", "A closure is a function bundled with its lexical scope."},
		), doccover.PolicyAuto)

		got, err := m.Match(context.Background(), numbered(1, "What is a closure?"), []string{"What", "closure"})

		require.NoError(t, err)
		assert.True(t, got.Covered)
		assert.Equal(t, doccover.StrategyKeyword, got.Strategy)
		assert.Equal(t, "closure", got.Needle)
		assert.Equal(t, []string{"a.md"}, got.Evidence)
	})

	t.Run("evidence is the union in corpus order", func(t *testing.T) {
		t.Parallel()

		m := coverage.NewMatcher(newCorpus(
			doc{"a.md", "uses throttle"},
			doc{"b.md", "nothing"},
			doc{"c.md", "防抖 and throttle"},
		), doccover.PolicyAuto)

		got, err := m.Match(context.Background(), numbered(1, "防抖"), []string{"防抖", "throttle"})

		require.NoError(t, err)
		assert.Equal(t, "防抖", got.Needle)
		assert.Equal(t, []string{"a.md", "c.md"}, got.Evidence)
	})

	t.Run("no keyword hits", func(t *testing.T) {
		t.Parallel()

		m := coverage.NewMatcher(newCorpus(doc{"a.md", "closures"}), doccover.PolicyAuto)

		got, err := m.Match(context.Background(), numbered(2, "Explain the event loop"), []string{"Explain", "the", "event", "loop"})

		require.NoError(t, err)
		assert.False(t, got.Covered)
		assert.Equal(t, doccover.StrategyNone, got.Strategy)
		assert.Nil(t, got.Evidence)
	})
}

func TestMatcher_CorpusError(t *testing.T) {
	t.Parallel()

	corpus := &mock.Corpus{
		NamesFn: func() []string { return nil },
		DocumentsContainingFn: func(_ context.Context, _ string) ([]string, error) {
			return nil, errors.New("disk on fire")
		},
	}

	for _, policy := range []doccover.Policy{doccover.PolicyContainment, doccover.PolicyKeyword} {
		m := coverage.NewMatcher(corpus, policy)
		_, err := m.Match(context.Background(), numbered(7, "x"), []string{"x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "match item 7")
	}
}

// Two documents contain the same keyword: keyword matching reports both,
// containment matching reports the first in corpus order.
func TestMatcher_EvidenceConventions(t *testing.T) {
	t.Parallel()

	corpus := newCorpus(
		doc{"a.md", "原型链的查找过程"},
		doc{"b.md", "原型链的查找过程与继承"},
	)
	ctx := context.Background()

	keyword, err := coverage.NewMatcher(corpus, doccover.PolicyKeyword).Match(ctx, numbered(3, "原型链的查找过程"), []string{"原型链"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.md"}, keyword.Evidence)

	containment, err := coverage.NewMatcher(corpus, doccover.PolicyContainment).Match(ctx, numbered(3, "原型链的查找过程"), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md"}, containment.Evidence)
	assert.Equal(t, doccover.StrategyExact, containment.Strategy)
}
