package mock

import (
	"context"

	"github.com/awalczyk/lectio"
)

var _ lectio.PackLoader = (*PackLoader)(nil)

// PackLoader is a mock implementation of lectio.PackLoader.
type PackLoader struct {
	LoadTopicsFn     func(ctx context.Context) (map[string][]string, error)
	LoadCommentaryFn func(ctx context.Context) (map[string]lectio.Commentary, error)
	LoadCrossRefsFn  func(ctx context.Context) (map[string][]lectio.CrossRef, error)
}

func (l *PackLoader) LoadTopics(ctx context.Context) (map[string][]string, error) {
	return l.LoadTopicsFn(ctx)
}

func (l *PackLoader) LoadCommentary(ctx context.Context) (map[string]lectio.Commentary, error) {
	return l.LoadCommentaryFn(ctx)
}

func (l *PackLoader) LoadCrossRefs(ctx context.Context) (map[string][]lectio.CrossRef, error) {
	return l.LoadCrossRefsFn(ctx)
}
