package main

import (
	"fmt"
	"strconv"

	"github.com/fwojciec/doccover"
)

const nameWidth = 40

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	loaded, err := deps.loadCorpus()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", doccover.ErrorMessage(err))
		return err
	}
	docs := loaded.docs

	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no documents found in %q. Check --suffix and --exclude.\n", c.Corpus)
		return doccover.Errorf(doccover.ENOTFOUND, "no documents found in %q", c.Corpus)
	}

	if c.Full {
		fmt.Fprintln(deps.Stdout, doccover.FormatDocuments(docs))
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Documents in %s (%d total):\n\n", c.Corpus, len(docs))
	header := fmt.Sprintf("%s %s %s %s %s",
		cell("Name", nameWidth), rcell("Chars", 8), rcell("Size", 10), rcell("Lines", 7), rcell("Sections", 9))
	if c.Contains != "" {
		header += "  " + c.Contains
	}
	fmt.Fprintln(deps.Stdout, header)

	var hits int
	for _, d := range docs {
		line := fmt.Sprintf("%s %s %s %s %s",
			cell(d.Name, nameWidth),
			rcell(strconv.Itoa(len([]rune(d.Content))), 8),
			rcell(formatBytes(d.Size), 10),
			rcell(strconv.Itoa(d.LineCount()), 7),
			rcell(strconv.Itoa(doccover.CountSections(d.Content, 2)), 9),
		)
		if c.Contains != "" {
			ok, err := loaded.corpus.Contains(deps.Ctx, c.Contains, d.Name)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", doccover.ErrorMessage(err))
				return err
			}
			mark := "-"
			if ok {
				mark = "yes"
				hits++
			}
			line += "  " + mark
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	if c.Contains != "" {
		fmt.Fprintf(deps.Stdout, "\n%d of %d documents contain %q\n", hits, len(docs), c.Contains)
	}
	return nil
}
