package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/doccover"
)

// writeMarkdown renders r as a markdown coverage report generated at now.
func writeMarkdown(w io.Writer, r *doccover.Report, now time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# Coverage Report\n\n")
	fmt.Fprintf(bw, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(bw, "## Overview\n\n")
	fmt.Fprintf(bw, "- Items: %d\n", r.Total.Total)
	fmt.Fprintf(bw, "- Covered: %d (%s)\n", r.Total.Covered, formatRate(r.Total.Rate))
	fmt.Fprintf(bw, "- Uncovered: %d\n", r.Total.Uncovered())
	fmt.Fprintf(bw, "- Documents: %d\n", r.Documents)
	if r.CorpusHash != "" {
		fmt.Fprintf(bw, "- Corpus fingerprint: `%s`\n", r.CorpusHash)
	}
	fmt.Fprintf(bw, "\n%s\n\n", verdict(r.Total.Rate))

	fmt.Fprintf(bw, "## Categories\n\n")
	fmt.Fprintf(bw, "| Category | Items | Covered | Missing | Rate | Tier |\n")
	fmt.Fprintf(bw, "|---|---:|---:|---:|---:|---|\n")
	for _, c := range r.Categories {
		s := c.Stats
		fmt.Fprintf(bw, "| %s | %d | %d | %d | %s | %s |\n",
			escapeCell(doccover.CategoryDisplayName(s.Category)), s.Total, s.Covered, s.Uncovered(), formatRate(s.Rate), s.Tier)
	}
	fmt.Fprintf(bw, "| **Total** | %d | %d | %d | %s | %s |\n\n",
		r.Total.Total, r.Total.Covered, r.Total.Uncovered(), formatRate(r.Total.Rate), r.Total.Tier)

	if r.Total.Uncovered() > 0 {
		fmt.Fprintf(bw, "## Uncovered Items\n\n")
		for _, c := range r.Categories {
			if len(c.Uncovered) == 0 {
				continue
			}
			fmt.Fprintf(bw, "### %s (%d)\n\n", doccover.CategoryDisplayName(c.Stats.Category), len(c.Uncovered))
			for _, item := range c.Uncovered {
				fmt.Fprintf(bw, "- %d. %s\n", item.ID, item.Title)
			}
			fmt.Fprintln(bw)
		}
	}

	if len(r.Remediation) > 0 {
		fmt.Fprintf(bw, "## Suggested Follow-up\n\n")
		for _, g := range r.Remediation {
			fmt.Fprintf(bw, "### %s (%d)\n\n", g.Area, len(g.Items))
			for _, item := range g.Items {
				fmt.Fprintf(bw, "- %d. %s\n", item.ID, item.Title)
			}
			fmt.Fprintln(bw)
		}
	}

	return bw.Flush()
}

// escapeCell keeps pipes inside a markdown table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
