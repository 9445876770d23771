package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doccover"
)

// Ensure LoggingLoader implements doccover.DocumentLoader.
var _ doccover.DocumentLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DocumentLoader and reports skipped documents as
// warnings.
type LoggingLoader struct {
	next   doccover.DocumentLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next doccover.DocumentLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// LoadDocuments delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) LoadDocuments(ctx context.Context) (result *doccover.LoadResult, err error) {
	defer func(begin time.Time) {
		var loaded, skipped int
		if result != nil {
			loaded, skipped = len(result.Documents), len(result.Skipped)
			for _, s := range result.Skipped {
				l.logger.Warn("skipped document", "name", s.Name, "err", s.Err)
			}
		}
		l.logger.Info("load documents",
			"count", loaded,
			"skipped", skipped,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadDocuments(ctx)
}
