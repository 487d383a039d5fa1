package mock

import (
	"context"

	"github.com/awalczyk/lectio"
)

var _ lectio.BookmarkService = (*BookmarkService)(nil)

// BookmarkService is a mock implementation of lectio.BookmarkService.
type BookmarkService struct {
	ToggleBookmarkFn func(ctx context.Context, translation, book string, chapter int) (bool, error)
	FindBookmarksFn  func(ctx context.Context, translation string) ([]*lectio.ChapterBookmark, error)
	IsBookmarkedFn   func(ctx context.Context, translation, book string, chapter int) (bool, error)
}

func (s *BookmarkService) ToggleBookmark(ctx context.Context, translation, book string, chapter int) (bool, error) {
	return s.ToggleBookmarkFn(ctx, translation, book, chapter)
}

func (s *BookmarkService) FindBookmarks(ctx context.Context, translation string) ([]*lectio.ChapterBookmark, error) {
	return s.FindBookmarksFn(ctx, translation)
}

func (s *BookmarkService) IsBookmarked(ctx context.Context, translation, book string, chapter int) (bool, error) {
	return s.IsBookmarkedFn(ctx, translation, book, chapter)
}
