package main

import (
	"github.com/fwojciec/doccover"
	"github.com/fwojciec/doccover/checklist"
	"github.com/fwojciec/doccover/coverage"
	"github.com/fwojciec/doccover/fs"
	"github.com/fwojciec/doccover/keyword"
	"github.com/fwojciec/doccover/yaml"
)

// DefaultRuleSet returns the built-in rule tables.
func DefaultRuleSet() *doccover.RuleSet {
	return &doccover.RuleSet{
		Vocabulary:      checklist.DefaultVocabulary,
		HeaderMaxLength: checklist.DefaultHeaderMaxLength,
		Keywords:        keyword.DefaultRules,
		Remediation:     coverage.DefaultRemediation,
		Exclude:         fs.DefaultExclude,
	}
}

// Run executes the rules command.
func (c *RulesCmd) Run(deps *Dependencies) error {
	return yaml.EncodeRuleSet(deps.Stdout, DefaultRuleSet())
}
