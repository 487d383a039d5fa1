package reader

import (
	"context"
	"strings"

	"github.com/awalczyk/lectio"
)

// defaultSearchLimit caps search results when the caller passes no limit.
const defaultSearchLimit = 120

var _ lectio.SearchService = (*Provider)(nil)

// SearchVerses scans the stored text of a translation in key order and
// returns verses containing the query, case-insensitively. There is no
// text index; the scan stops as soon as the limit is reached. A blank
// query returns an empty result without touching the store.
func (p *Provider) SearchVerses(ctx context.Context, translation, query string, limit int) ([]*lectio.Verse, error) {
	if strings.TrimSpace(query) == "" {
		return []*lectio.Verse{}, nil
	}
	if limit <= 0 {
		limit = p.searchLimit()
	}

	needle := strings.ToLower(query)
	hits := make([]*lectio.Verse, 0)
	err := p.Verses.ScanVerses(ctx, translation, func(v *lectio.Verse) bool {
		if strings.Contains(strings.ToLower(v.Text), needle) {
			hits = append(hits, v)
		}
		return len(hits) < limit
	})
	if err != nil {
		return nil, err
	}
	return hits, nil
}

func (p *Provider) searchLimit() int {
	if p.SearchLimit > 0 {
		return p.SearchLimit
	}
	return defaultSearchLimit
}
