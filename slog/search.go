package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/awalczyk/lectio"
)

// Ensure LoggingSearchService implements lectio.SearchService.
var _ lectio.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with logging.
type LoggingSearchService struct {
	next   lectio.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next lectio.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// SearchVerses delegates to the wrapped service and logs the operation.
func (s *LoggingSearchService) SearchVerses(ctx context.Context, translation, query string, limit int) (hits []*lectio.Verse, err error) {
	defer func(begin time.Time) {
		s.logger.Info("verse search",
			"translation", translation,
			"query", query,
			"hits", len(hits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchVerses(ctx, translation, query, limit)
}
