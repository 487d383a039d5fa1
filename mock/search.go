package mock

import (
	"context"

	"github.com/awalczyk/lectio"
)

var _ lectio.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of lectio.SearchService.
type SearchService struct {
	SearchVersesFn func(ctx context.Context, translation, query string, limit int) ([]*lectio.Verse, error)
}

func (s *SearchService) SearchVerses(ctx context.Context, translation, query string, limit int) ([]*lectio.Verse, error) {
	return s.SearchVersesFn(ctx, translation, query, limit)
}
