package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fwojciec/doccover"
)

const (
	categoryWidth = 28
	countWidth    = 8
	rateWidth     = 9
	tableWidth    = categoryWidth + 3*countWidth + rateWidth + 12
)

// writeTable prints the per-category coverage table followed by the
// uncovered item listing and a summary.
func writeTable(w io.Writer, r *doccover.Report) {
	fmt.Fprintln(w, rule(tableWidth))
	fmt.Fprintf(w, "%s %s %s %s %s  %s\n",
		cell("Category", categoryWidth),
		rcell("Items", countWidth),
		rcell("Covered", countWidth),
		rcell("Missing", countWidth),
		rcell("Rate", rateWidth),
		"Tier",
	)
	fmt.Fprintln(w, rule(tableWidth))
	for _, c := range r.Categories {
		writeRow(w, doccover.CategoryDisplayName(c.Stats.Category), c.Stats)
	}
	fmt.Fprintln(w, rule(tableWidth))
	writeRow(w, "Total", r.Total)

	if missing := r.Total.Uncovered(); missing > 0 {
		fmt.Fprintf(w, "\nUncovered items (%d):\n", missing)
		for _, c := range r.Categories {
			if len(c.Uncovered) == 0 {
				continue
			}
			fmt.Fprintf(w, "\n[%s] %d uncovered\n", doccover.CategoryDisplayName(c.Stats.Category), len(c.Uncovered))
			for _, item := range c.Uncovered {
				fmt.Fprintf(w, "  %4d. %s\n", item.ID, truncate(item.Title, maxTitleWidth))
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Categories: %d\n", len(r.Categories))
	fmt.Fprintf(w, "Items:      %d\n", r.Total.Total)
	fmt.Fprintf(w, "Covered:    %d (%s)\n", r.Total.Covered, formatRate(r.Total.Rate))
	fmt.Fprintf(w, "Documents:  %d\n", r.Documents)
	if r.CorpusHash != "" {
		fmt.Fprintf(w, "Corpus:     %s\n", r.CorpusHash)
	}
	fmt.Fprintf(w, "\n%s\n", verdict(r.Total.Rate))
}

func writeRow(w io.Writer, name string, s doccover.CategoryStats) {
	fmt.Fprintf(w, "%s %s %s %s %s  %s\n",
		cell(name, categoryWidth),
		rcell(strconv.Itoa(s.Total), countWidth),
		rcell(strconv.Itoa(s.Covered), countWidth),
		rcell(strconv.Itoa(s.Uncovered()), countWidth),
		rcell(formatRate(s.Rate), rateWidth),
		s.Tier,
	)
}
