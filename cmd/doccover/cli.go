package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/doccover"
	"github.com/fwojciec/doccover/bloom"
	"github.com/fwojciec/doccover/cache"
	"github.com/fwojciec/doccover/checklist"
	"github.com/fwojciec/doccover/fs"
	dcslog "github.com/fwojciec/doccover/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Now    func() time.Time

	// Rules overrides the built-in rule tables. Nil keeps every default.
	Rules *doccover.RuleSet

	Loader doccover.DocumentLoader

	// Index builds the corpus over the loaded documents. Defaults to an
	// in-memory bloom index.
	Index func(ctx context.Context, docs []*doccover.Document) (doccover.Corpus, error)
}

func (d *Dependencies) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d.Logger
}

func (d *Dependencies) rules() *doccover.RuleSet {
	if d.Rules == nil {
		return &doccover.RuleSet{}
	}
	return d.Rules
}

func (d *Dependencies) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// parser returns a checklist parser configured from the rule set.
func (d *Dependencies) parser() *checklist.Parser {
	rules := d.rules()
	return checklist.NewParser(checklist.Config{
		Vocabulary:      rules.Vocabulary,
		HeaderMaxLength: rules.HeaderMaxLength,
	})
}

// readChecklist reads and parses the checklist at path.
func (d *Dependencies) readChecklist(path string) (*doccover.Checklist, error) {
	text, err := fs.ReadChecklist(path)
	if err != nil {
		return nil, err
	}
	return d.parser().Parse(text), nil
}

// loadedCorpus is the indexed corpus of one run.
type loadedCorpus struct {
	docs   []*doccover.Document
	corpus doccover.Corpus
	cache  *cache.Corpus
}

// loadCorpus loads every document and wraps the index in the lookup cache
// and debug logging.
func (d *Dependencies) loadCorpus() (*loadedCorpus, error) {
	result, err := d.Loader.LoadDocuments(d.Ctx)
	if err != nil {
		return nil, err
	}

	index := d.Index
	if index == nil {
		index = func(_ context.Context, docs []*doccover.Document) (doccover.Corpus, error) {
			idx, err := bloom.NewIndex(docs, bloom.DefaultFalsePositiveRate)
			if err != nil {
				return nil, err
			}
			return idx, nil
		}
	}
	idx, err := index(d.Ctx, result.Documents)
	if err != nil {
		return nil, err
	}

	c := cache.NewCorpus(idx)
	return &loadedCorpus{
		docs:   result.Documents,
		corpus: dcslog.NewLoggingCorpus(c, d.logger()),
		cache:  c,
	}, nil
}

// logStats reports how well the lookup cache served the run.
func (l *loadedCorpus) logStats(logger *slog.Logger) {
	hits, misses := l.cache.Stats()
	logger.Debug("corpus cache", "hits", hits, "misses", misses)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool   `short:"v" env:"DOCCOVER_VERBOSE" help:"Log debug details to stderr"`
	RulesFile string `name:"rules" env:"DOCCOVER_RULES" help:"YAML file overriding the built-in rule tables"`

	Check    CheckCmd    `cmd:"" help:"Check how much of a checklist the corpus covers"`
	Items    ItemsCmd    `cmd:"" help:"List parsed checklist categories and items"`
	Keywords KeywordsCmd `cmd:"" help:"Show the match keywords derived for each item"`
	Docs     DocsCmd     `cmd:"" help:"List corpus documents"`
	Rules    RulesCmd    `cmd:"" help:"Print the built-in rule tables as a rules file"`
}

// ChecklistFlags locate the checklist file.
type ChecklistFlags struct {
	Checklist string `short:"c" required:"" env:"DOCCOVER_CHECKLIST" help:"Checklist file"`
}

// CorpusFlags select the corpus documents.
type CorpusFlags struct {
	Corpus    string   `short:"d" default:"." env:"DOCCOVER_CORPUS" help:"Corpus directory"`
	Suffix    []string `default:".md" help:"Document file suffix (repeatable); add .html to read HTML pages"`
	Exclude   []string `short:"x" help:"Document name to exclude (repeatable)"`
	Recursive bool     `short:"r" help:"Descend into subdirectories"`
	Index     string   `enum:"memory,sqlite" default:"memory" env:"DOCCOVER_INDEX" help:"Corpus index backend (memory, sqlite)"`
	StripHTML bool     `name:"strip-html" help:"Strip inline HTML tags from markdown documents"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	ChecklistFlags `embed:""`
	CorpusFlags    `embed:""`

	Policy   string `enum:"auto,containment,keyword" default:"auto" env:"DOCCOVER_POLICY" help:"Matching policy (auto, containment, keyword)"`
	Markdown string `name:"md" help:"Write a markdown report to this file"`
	JSON     bool   `name:"json" help:"Print the report as JSON instead of a table"`
}

// ItemsCmd is the "items" subcommand.
type ItemsCmd struct {
	ChecklistFlags `embed:""`

	Trace bool `help:"Show how every checklist line was classified"`
}

// KeywordsCmd is the "keywords" subcommand.
type KeywordsCmd struct {
	ChecklistFlags `embed:""`

	Policy string `enum:"auto,containment,keyword" default:"auto" env:"DOCCOVER_POLICY" help:"Matching policy (auto, containment, keyword)"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	CorpusFlags `embed:""`

	Contains string `help:"Mark the documents containing this keyword"`
	Full     bool   `help:"Print every document as it is indexed"`
}

// RulesCmd is the "rules" subcommand.
type RulesCmd struct{}
