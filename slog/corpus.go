package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doccover"
)

// Ensure LoggingCorpus implements doccover.Corpus.
var _ doccover.Corpus = (*LoggingCorpus)(nil)

// LoggingCorpus wraps a Corpus with debug logging of every lookup.
type LoggingCorpus struct {
	next   doccover.Corpus
	logger *slog.Logger
}

// NewLoggingCorpus creates a new LoggingCorpus.
func NewLoggingCorpus(next doccover.Corpus, logger *slog.Logger) *LoggingCorpus {
	return &LoggingCorpus{next: next, logger: logger}
}

// Names delegates to the wrapped corpus.
func (c *LoggingCorpus) Names() []string {
	return c.next.Names()
}

// Contains delegates to the wrapped corpus and logs the lookup.
func (c *LoggingCorpus) Contains(ctx context.Context, keyword, name string) (ok bool, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("corpus contains",
			"keyword", keyword,
			"name", name,
			"found", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Contains(ctx, keyword, name)
}

// DocumentsContaining delegates to the wrapped corpus and logs the lookup.
func (c *LoggingCorpus) DocumentsContaining(ctx context.Context, keyword string) (names []string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("corpus lookup",
			"keyword", keyword,
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.DocumentsContaining(ctx, keyword)
}
