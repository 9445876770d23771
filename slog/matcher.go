package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/doccover"
)

// Ensure LoggingMatcher implements doccover.Matcher.
var _ doccover.Matcher = (*LoggingMatcher)(nil)

// LoggingMatcher wraps a Matcher and logs every decision at debug level.
type LoggingMatcher struct {
	next   doccover.Matcher
	logger *slog.Logger
}

// NewLoggingMatcher creates a new LoggingMatcher.
func NewLoggingMatcher(next doccover.Matcher, logger *slog.Logger) *LoggingMatcher {
	return &LoggingMatcher{next: next, logger: logger}
}

// Match delegates to the wrapped matcher and logs the decision with its duration.
func (m *LoggingMatcher) Match(ctx context.Context, item *doccover.Item, keywords []string) (result doccover.MatchResult, err error) {
	defer func(begin time.Time) {
		if err != nil {
			m.logger.Error("match item",
				"id", item.ID,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		m.logger.Debug("match item",
			"id", item.ID,
			"covered", result.Covered,
			"strategy", string(result.Strategy),
			"needle", result.Needle,
			"evidence", len(result.Evidence),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return m.next.Match(ctx, item, keywords)
}
