package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/doccover"
	"github.com/fwojciec/doccover/fs"
)

// Run executes the items command.
func (c *ItemsCmd) Run(deps *Dependencies) error {
	if c.Trace {
		return c.trace(deps)
	}

	list, err := deps.readChecklist(c.Checklist)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccover.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d items in %d categories:\n", list.Len(), len(list.Categories))
	for _, cat := range list.Categories {
		fmt.Fprintf(deps.Stdout, "\n%s (%d)\n", cat.DisplayName(), len(cat.Items))
		for _, item := range cat.Items {
			fmt.Fprintf(deps.Stdout, "  %4d. %s\n", item.ID, truncate(item.Title, maxTitleWidth))
		}
	}

	if len(list.Skipped) > 0 {
		fmt.Fprintf(deps.Stdout, "\nSkipped %d lines:\n", len(list.Skipped))
		for _, s := range list.Skipped {
			fmt.Fprintf(deps.Stdout, "  line %d: %s (%s)\n", s.Line, truncate(s.Text, 60), s.Reason)
		}
	}
	return nil
}

// trace prints the classification of every non-empty checklist line.
func (c *ItemsCmd) trace(deps *Dependencies) error {
	text, err := fs.ReadChecklist(c.Checklist)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccover.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s %s %s %s %s\n",
		rcell("Line", 6), cell("Form", 10), cell("Kind", 7), cell("Rule", 20), "Content")
	for _, t := range deps.parser().Trace(text) {
		fmt.Fprintf(deps.Stdout, "%s %s %s %s %s\n",
			rcell(strconv.Itoa(t.Line), 6),
			cell(string(t.Form), 10),
			cell(string(t.Kind), 7),
			cell(t.Rule, 20),
			truncate(t.Content, 60),
		)
	}
	return nil
}
