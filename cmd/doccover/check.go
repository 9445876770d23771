package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/doccover"
	"github.com/fwojciec/doccover/coverage"
	"github.com/fwojciec/doccover/fs"
	"github.com/fwojciec/doccover/keyword"
	dcslog "github.com/fwojciec/doccover/slog"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	list, err := deps.readChecklist(c.Checklist)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccover.ErrorMessage(err))
		return err
	}

	loaded, err := deps.loadCorpus()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccover.ErrorMessage(err))
		return err
	}

	rules := deps.rules()
	matcher := coverage.NewMatcher(loaded.corpus, doccover.Policy(c.Policy))
	analyzer := coverage.NewAnalyzer(loaded.corpus, dcslog.NewLoggingMatcher(matcher, deps.logger()), keyword.NewDeriver(rules.Keywords))
	if len(rules.Remediation) > 0 {
		analyzer.Remediation = rules.Remediation
	}

	report, err := analyzer.Analyze(deps.Ctx, list)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccover.ErrorMessage(err))
		return err
	}
	report.CorpusHash = fs.Fingerprint(loaded.docs)
	loaded.logStats(deps.logger())

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	} else {
		writeTable(deps.Stdout, report)
	}

	if c.Markdown == "" {
		return nil
	}
	f, err := os.Create(c.Markdown)
	if err != nil {
		return fmt.Errorf("failed to create markdown report: %w", err)
	}
	defer f.Close()
	if err := writeMarkdown(f, report, deps.now()); err != nil {
		return fmt.Errorf("failed to write markdown report: %w", err)
	}
	if !c.JSON {
		fmt.Fprintf(deps.Stdout, "\nMarkdown report written to %s\n", c.Markdown)
	}
	return f.Close()
}
