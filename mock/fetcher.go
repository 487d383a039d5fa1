package mock

import (
	"context"

	"github.com/awalczyk/lectio"
)

var _ lectio.SourceFetcher = (*SourceFetcher)(nil)

// SourceFetcher is a mock implementation of lectio.SourceFetcher.
type SourceFetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *SourceFetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
