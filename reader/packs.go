package reader

import (
	"context"

	"github.com/awalczyk/lectio"
	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

// Cache keys for the memoized reference packs.
const (
	topicsCacheKey     = "topics"
	commentaryCacheKey = "commentary"
	crossRefsCacheKey  = "crossrefs"
)

// Topics returns the topic tags of a verse. A verse with no topics returns
// an empty slice, never an error.
func (p *Provider) Topics(ctx context.Context, ref lectio.Ref) ([]string, error) {
	topics, err := p.topics(ctx)
	if err != nil {
		return nil, err
	}
	return topics[ref.Key()], nil
}

// Commentary returns the commentary of a verse, or nil when the pack has
// no entry for it.
func (p *Provider) Commentary(ctx context.Context, ref lectio.Ref) (*lectio.Commentary, error) {
	commentary, err := p.commentary(ctx)
	if err != nil {
		return nil, err
	}
	entry, ok := commentary[ref.Key()]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// CrossRefs returns the cross-references of a verse. A verse with no
// cross-references returns an empty slice, never an error.
func (p *Provider) CrossRefs(ctx context.Context, ref lectio.Ref) ([]lectio.CrossRef, error) {
	crossRefs, err := p.crossRefs(ctx)
	if err != nil {
		return nil, err
	}
	return crossRefs[ref.Key()], nil
}

// WarmPacks preloads all three reference packs so the first lookup does
// not pay the load.
func (p *Provider) WarmPacks(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := p.topics(ctx)
		return err
	})
	g.Go(func() error {
		_, err := p.commentary(ctx)
		return err
	})
	g.Go(func() error {
		_, err := p.crossRefs(ctx)
		return err
	})
	return g.Wait()
}

// ResetPacks drops the memoized reference packs. The next lookup reloads
// them from the PackLoader.
func (p *Provider) ResetPacks() {
	p.packs().Flush()
}

// topics returns the memoized topics pack, loading it on first use.
// Concurrent first calls may both load; the packs are read-only so the
// duplicate work is harmless.
func (p *Provider) topics(ctx context.Context) (map[string][]string, error) {
	c := p.packs()
	if cached, found := c.Get(topicsCacheKey); found {
		return cached.(map[string][]string), nil
	}
	topics, err := p.Packs.LoadTopics(ctx)
	if err != nil {
		return nil, err
	}
	c.Set(topicsCacheKey, topics, cache.NoExpiration)
	return topics, nil
}

// commentary returns the memoized commentary pack, loading it on first use.
func (p *Provider) commentary(ctx context.Context) (map[string]lectio.Commentary, error) {
	c := p.packs()
	if cached, found := c.Get(commentaryCacheKey); found {
		return cached.(map[string]lectio.Commentary), nil
	}
	commentary, err := p.Packs.LoadCommentary(ctx)
	if err != nil {
		return nil, err
	}
	c.Set(commentaryCacheKey, commentary, cache.NoExpiration)
	return commentary, nil
}

// crossRefs returns the memoized cross-reference pack, loading it on first
// use.
func (p *Provider) crossRefs(ctx context.Context) (map[string][]lectio.CrossRef, error) {
	c := p.packs()
	if cached, found := c.Get(crossRefsCacheKey); found {
		return cached.(map[string][]lectio.CrossRef), nil
	}
	crossRefs, err := p.Packs.LoadCrossRefs(ctx)
	if err != nil {
		return nil, err
	}
	c.Set(crossRefsCacheKey, crossRefs, cache.NoExpiration)
	return crossRefs, nil
}

// packs returns the pack cache, creating it on first use.
func (p *Provider) packs() *cache.Cache {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.packCache == nil {
		p.packCache = cache.New(cache.NoExpiration, 0)
	}
	return p.packCache
}
