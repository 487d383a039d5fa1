// Package slog provides logging decorators for lectio services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/awalczyk/lectio"
)

// Ensure LoggingFetcher implements lectio.SourceFetcher.
var _ lectio.SourceFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a SourceFetcher with logging.
type LoggingFetcher struct {
	next   lectio.SourceFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next lectio.SourceFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
