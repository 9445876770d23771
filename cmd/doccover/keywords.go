package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/doccover"
	"github.com/fwojciec/doccover/coverage"
	"github.com/fwojciec/doccover/keyword"
)

// Run executes the keywords command.
func (c *KeywordsCmd) Run(deps *Dependencies) error {
	list, err := deps.readChecklist(c.Checklist)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccover.ErrorMessage(err))
		return err
	}

	policy := doccover.Policy(c.Policy)
	deriver := keyword.NewDeriver(deps.rules().Keywords)
	for _, cat := range list.Categories {
		if len(cat.Items) == 0 {
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s\n", cat.DisplayName())
		for _, item := range cat.Items {
			fmt.Fprintf(deps.Stdout, "  %4d. %s\n", item.ID, truncate(item.Title, maxTitleWidth))
			if coverage.PolicyFor(policy, item) == doccover.PolicyContainment {
				fmt.Fprintf(deps.Stdout, "        containment: %s\n", coverage.Normalize(item.Title))
				continue
			}
			keywords, rule := deriver.Explain(item.Title)
			source := "title tokens"
			if rule != nil {
				source = "rule " + strings.Join(rule.Triggers, "|")
			}
			fmt.Fprintf(deps.Stdout, "        keywords: %s (%s)\n", strings.Join(keywords, ", "), source)
		}
	}
	return nil
}
