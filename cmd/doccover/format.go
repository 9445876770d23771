package main

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// maxTitleWidth bounds item titles in console listings.
const maxTitleWidth = 85

// cell pads or truncates s to exactly width terminal columns.
func cell(s string, width int) string {
	return runewidth.FillRight(truncate(s, width), width)
}

// rcell right-aligns s in width terminal columns.
func rcell(s string, width int) string {
	return runewidth.FillLeft(truncate(s, width), width)
}

// truncate shortens s to at most width terminal columns, marking the cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width < 4 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}

// rule returns a horizontal line width columns wide.
func rule(width int) string {
	return strings.Repeat("-", width)
}

// formatRate formats a percentage with one decimal.
func formatRate(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// formatBytes formats bytes in human-readable form.
func formatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// verdicts is evaluated top to bottom; the first inclusive lower bound not
// above the overall rate wins.
var verdicts = []struct {
	min  float64
	text string
}{
	{95, "Nearly every item is covered."},
	{80, "Most items are covered."},
	{60, "Good coverage; a few items still need answers."},
	{40, "Fair coverage; keep adding answers."},
	{0, "Low coverage; many items still need answers."},
}

// verdict summarizes an overall coverage rate in one sentence.
func verdict(rate float64) string {
	for _, v := range verdicts {
		if rate >= v.min {
			return v.text
		}
	}
	return verdicts[len(verdicts)-1].text
}
