package main_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/doccover"
	main "github.com/fwojciec/doccover/cmd/doccover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemsChecklist = "## Basics\n1. What is a closure?\nIs this a question?\n2. Explain the event loop\n"

func TestItemsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists categories and items", func(t *testing.T) {
		t.Parallel()

		checklist := writeFile(t, t.TempDir(), "list.md", itemsChecklist)
		deps, stdout, _ := newDeps(nil)

		cmd := &main.ItemsCmd{ChecklistFlags: main.ChecklistFlags{Checklist: checklist}}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "2 items in 1 categories")
		assert.Contains(t, out, "Basics (2)")
		assert.Contains(t, out, "1. What is a closure?")
		assert.Contains(t, out, "Skipped 1 lines")
		assert.Contains(t, out, "line 3: Is this a question? (plain-question)")
	})

	t.Run("traces line classification", func(t *testing.T) {
		t.Parallel()

		checklist := writeFile(t, t.TempDir(), "list.md", itemsChecklist)
		deps, stdout, _ := newDeps(nil)

		cmd := &main.ItemsCmd{ChecklistFlags: main.ChecklistFlags{Checklist: checklist}, Trace: true}
		require.NoError(t, cmd.Run(deps))

		out := stdout.String()
		assert.Contains(t, out, "heading")
		assert.Contains(t, out, "plain-question")
		assert.Contains(t, out, "numbered")
		assert.Contains(t, out, "Explain the event loop")
	})

	t.Run("uses vocabulary from rules", func(t *testing.T) {
		t.Parallel()

		checklist := writeFile(t, t.TempDir(), "list.md", "3. 运行时专题\n1. What is a closure?")
		deps, stdout, _ := newDeps(nil)
		deps.Rules = &doccover.RuleSet{Vocabulary: []string{"运行时"}}

		cmd := &main.ItemsCmd{ChecklistFlags: main.ChecklistFlags{Checklist: checklist}}
		require.NoError(t, cmd.Run(deps))

		assert.Contains(t, stdout.String(), "1 items in 1 categories")
		assert.Contains(t, stdout.String(), "运行时专题 (1)")
	})

	t.Run("reports missing checklist", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps(nil)

		cmd := &main.ItemsCmd{ChecklistFlags: main.ChecklistFlags{Checklist: "/nonexistent/list.md"}}
		err := cmd.Run(deps)

		assert.Equal(t, doccover.ENOTFOUND, doccover.ErrorCode(err))
		assert.Contains(t, stderr.String(), "checklist not found")
	})
}

func TestKeywordsCmd_Run(t *testing.T) {
	t.Parallel()

	checklist := writeFile(t, t.TempDir(), "list.md", "1. 如何实现防抖（debounce）？\n2. Explain the event loop\n12→什么是闭包？")
	deps, stdout, _ := newDeps(nil)

	cmd := &main.KeywordsCmd{ChecklistFlags: main.ChecklistFlags{Checklist: checklist}, Policy: "auto"}
	require.NoError(t, cmd.Run(deps))

	out := stdout.String()
	assert.Contains(t, out, "keywords: 防抖, 节流, debounce, throttle (rule 防抖|节流)")
	assert.Contains(t, out, "keywords: Explain, the, event, loop (title tokens)")
	assert.Contains(t, out, "containment: 什么是闭包")
}

func TestKeywordsCmd_Run_Policy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		policy          string
		wantContainment int
		wantKeywords    int
	}{
		{policy: "auto", wantContainment: 1, wantKeywords: 2},
		{policy: "keyword", wantContainment: 0, wantKeywords: 3},
		{policy: "containment", wantContainment: 3, wantKeywords: 0},
	}
	for _, tt := range tests {
		t.Run(tt.policy, func(t *testing.T) {
			t.Parallel()

			checklist := writeFile(t, t.TempDir(), "list.md", "1. 如何实现防抖（debounce）？\n2. Explain the event loop\n12→什么是闭包？")
			deps, stdout, _ := newDeps(nil)

			cmd := &main.KeywordsCmd{ChecklistFlags: main.ChecklistFlags{Checklist: checklist}, Policy: tt.policy}
			require.NoError(t, cmd.Run(deps))

			out := stdout.String()
			assert.Equal(t, tt.wantContainment, strings.Count(out, "containment: "))
			assert.Equal(t, tt.wantKeywords, strings.Count(out, "keywords: "))
		})
	}
}
