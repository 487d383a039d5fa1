package mock

import (
	"context"

	"github.com/awalczyk/lectio"
)

var _ lectio.VerseService = (*VerseService)(nil)

// VerseService is a mock implementation of lectio.VerseService.
type VerseService struct {
	SaveVersesFn          func(ctx context.Context, verses []*lectio.Verse) error
	FindVersesByChapterFn func(ctx context.Context, translation, book string, chapter int) ([]*lectio.Verse, error)
	CountVersesFn         func(ctx context.Context, translation string) (int, error)
	ScanVersesFn          func(ctx context.Context, translation string, fn func(*lectio.Verse) bool) error
	TranslationsFn        func(ctx context.Context) ([]string, error)
	DeleteTranslationFn   func(ctx context.Context, translation string) error
}

func (s *VerseService) SaveVerses(ctx context.Context, verses []*lectio.Verse) error {
	return s.SaveVersesFn(ctx, verses)
}

func (s *VerseService) FindVersesByChapter(ctx context.Context, translation, book string, chapter int) ([]*lectio.Verse, error) {
	return s.FindVersesByChapterFn(ctx, translation, book, chapter)
}

func (s *VerseService) CountVerses(ctx context.Context, translation string) (int, error) {
	return s.CountVersesFn(ctx, translation)
}

func (s *VerseService) ScanVerses(ctx context.Context, translation string, fn func(*lectio.Verse) bool) error {
	return s.ScanVersesFn(ctx, translation, fn)
}

func (s *VerseService) Translations(ctx context.Context) ([]string, error) {
	return s.TranslationsFn(ctx)
}

func (s *VerseService) DeleteTranslation(ctx context.Context, translation string) error {
	return s.DeleteTranslationFn(ctx, translation)
}
