package mock

import (
	"context"

	"github.com/awalczyk/lectio"
)

var _ lectio.AnnotationService = (*AnnotationService)(nil)

// AnnotationService is a mock implementation of lectio.AnnotationService.
type AnnotationService struct {
	UpsertAnnotationFn         func(ctx context.Context, translation string, ref lectio.Ref, patch lectio.AnnotationPatch) (*lectio.Annotation, error)
	FindAnnotationByRefFn      func(ctx context.Context, translation string, ref lectio.Ref) (*lectio.Annotation, error)
	FindAnnotationsByChapterFn func(ctx context.Context, translation, book string, chapter int) (map[string]*lectio.Annotation, error)
	FindAnnotationsFn          func(ctx context.Context, filter lectio.AnnotationFilter) ([]*lectio.Annotation, error)
	AnnotatedChapterKeysFn     func(ctx context.Context) ([]string, error)
	DeleteAnnotationFn         func(ctx context.Context, translation string, ref lectio.Ref) error
}

func (s *AnnotationService) UpsertAnnotation(ctx context.Context, translation string, ref lectio.Ref, patch lectio.AnnotationPatch) (*lectio.Annotation, error) {
	return s.UpsertAnnotationFn(ctx, translation, ref, patch)
}

func (s *AnnotationService) FindAnnotationByRef(ctx context.Context, translation string, ref lectio.Ref) (*lectio.Annotation, error) {
	return s.FindAnnotationByRefFn(ctx, translation, ref)
}

func (s *AnnotationService) FindAnnotationsByChapter(ctx context.Context, translation, book string, chapter int) (map[string]*lectio.Annotation, error) {
	return s.FindAnnotationsByChapterFn(ctx, translation, book, chapter)
}

func (s *AnnotationService) FindAnnotations(ctx context.Context, filter lectio.AnnotationFilter) ([]*lectio.Annotation, error) {
	return s.FindAnnotationsFn(ctx, filter)
}

func (s *AnnotationService) AnnotatedChapterKeys(ctx context.Context) ([]string, error) {
	return s.AnnotatedChapterKeysFn(ctx)
}

func (s *AnnotationService) DeleteAnnotation(ctx context.Context, translation string, ref lectio.Ref) error {
	return s.DeleteAnnotationFn(ctx, translation, ref)
}
