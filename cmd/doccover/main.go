package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/doccover"
	"github.com/fwojciec/doccover/bluemonday"
	"github.com/fwojciec/doccover/fs"
	"github.com/fwojciec/doccover/goquery"
	"github.com/fwojciec/doccover/htmltomarkdown"
	dcslog "github.com/fwojciec/doccover/slog"
	"github.com/fwojciec/doccover/sqlite"
	"github.com/fwojciec/doccover/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Now stamps generated reports. Defaults to time.Now.
	Now func() time.Time

	// SQLite database backing the sqlite index, when selected.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Now: time.Now}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("doccover"),
		kong.Description("Check how much of a question checklist a document corpus covers"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'doccover --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Rules = &doccover.RuleSet{}
	if cli.RulesFile != "" {
		rules, err := yaml.LoadRuleSet(cli.RulesFile)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", doccover.ErrorMessage(err))
			return fmt.Errorf("failed to load rules from %q: %w", cli.RulesFile, err)
		}
		deps.Rules = rules
	}

	// Wire the corpus for commands that read one.
	var flags *CorpusFlags
	var exclude []string
	switch selected(kongCtx) {
	case "check":
		flags = &cli.Check.CorpusFlags
		exclude = withinCorpus(flags.Corpus, cli.Check.Checklist, cli.Check.Markdown)
	case "docs":
		flags = &cli.Docs.CorpusFlags
	}
	if flags != nil {
		deps.Loader = dcslog.NewLoggingLoader(m.newLoader(*flags, deps.Rules, exclude), deps.Logger)
		if flags.Index == "sqlite" {
			m.DB = sqlite.NewDB(":memory:")
			if err := m.DB.Open(); err != nil {
				return fmt.Errorf("failed to open index database: %w", err)
			}
			defer m.Close()
			deps.Index = func(ctx context.Context, docs []*doccover.Document) (doccover.Corpus, error) {
				idx := sqlite.NewIndex(m.DB)
				if err := idx.Load(ctx, docs); err != nil {
					return nil, err
				}
				return idx, nil
			}
		}
	}

	return kongCtx.Run(deps)
}

// newLoader builds the filesystem loader described by flags. Built-in
// exclusions, rule file exclusions and extra are all applied.
func (m *Main) newLoader(flags CorpusFlags, rules *doccover.RuleSet, extra []string) *fs.Loader {
	loader := fs.NewLoader(flags.Corpus)
	if len(flags.Suffix) > 0 {
		loader.Suffixes = flags.Suffix
	}
	loader.Exclude = slices.Concat(fs.DefaultExclude, rules.Exclude, flags.Exclude, extra)
	loader.Recursive = flags.Recursive
	loader.Extractor = goquery.NewExtractor()
	loader.Converter = htmltomarkdown.NewConverter()
	if flags.StripHTML {
		loader.Normalizer = bluemonday.NewStripper()
	}
	return loader
}

// selected returns the name of the command kong selected.
func selected(ctx *kong.Context) string {
	if node := ctx.Selected(); node != nil {
		return node.Name
	}
	return ""
}

// withinCorpus returns the corpus-relative names of paths that live inside
// dir, so that checklist and report files are never scanned as evidence.
func withinCorpus(dir string, paths ...string) []string {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		names = append(names, filepath.ToSlash(rel))
	}
	return names
}
