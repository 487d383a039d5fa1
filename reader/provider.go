// Package reader assembles the user-facing reading surface: chapter views
// with annotations merged onto the source text, bounded listings,
// sequential-scan search, and memoized reference pack lookups.
package reader

import (
	"context"
	"sync"

	"github.com/awalczyk/lectio"
	"github.com/awalczyk/lectio/bloom"
	"github.com/patrickmn/go-cache"
)

const (
	// recentListLimit caps recency listings, fullListLimit caps exhaustive
	// ones. Listings are bounded so a long-lived store cannot grow a
	// response without bound.
	recentListLimit = 50
	fullListLimit   = 500

	// expectedAnnotatedChapters sizes the annotated-chapter filter. The
	// whole canon has 1189 chapters per translation.
	expectedAnnotatedChapters = 4096
	annotatedFalsePositives   = 0.01
)

// Provider is the reading surface consumed by the CLI. The service fields
// must be set before first use; everything else has a working zero value.
type Provider struct {
	Verses      lectio.VerseService
	Annotations lectio.AnnotationService
	Bookmarks   lectio.BookmarkService
	Settings    lectio.SettingService
	Packs       lectio.PackLoader

	// SearchLimit overrides the default search result cap when positive.
	SearchLimit int

	mu        sync.Mutex
	annotated *bloom.Filter
	packCache *cache.Cache
}

// Chapter returns the chapter view: verses in verse order, each paired
// with its stored annotation. A chapter with no verses is a valid, empty
// view, not an error.
func (p *Provider) Chapter(ctx context.Context, translation, book string, chapter int) (*lectio.Chapter, error) {
	verses, err := p.Verses.FindVersesByChapter(ctx, translation, book, chapter)
	if err != nil {
		return nil, err
	}
	annotations, err := p.ChapterAnnotations(ctx, translation, book, chapter)
	if err != nil {
		return nil, err
	}

	ch := &lectio.Chapter{
		Translation: translation,
		Book:        book,
		Chapter:     chapter,
		Verses:      make([]lectio.AnnotatedVerse, 0, len(verses)),
	}
	for _, v := range verses {
		ch.Verses = append(ch.Verses, lectio.AnnotatedVerse{
			Verse:      v,
			Annotation: annotations[v.Key()],
		})
	}
	return ch, nil
}

// ChapterAnnotations returns the annotations of a chapter keyed by
// Ref.Key(). A chapter the presence filter has never seen annotated skips
// the store entirely; a false positive just costs one real query.
func (p *Provider) ChapterAnnotations(ctx context.Context, translation, book string, chapter int) (map[string]*lectio.Annotation, error) {
	maybe, err := p.chapterMaybeAnnotated(ctx, chapterFilterKey(translation, book, chapter))
	if err != nil {
		return nil, err
	}
	if !maybe {
		return map[string]*lectio.Annotation{}, nil
	}
	return p.Annotations.FindAnnotationsByChapter(ctx, translation, book, chapter)
}

// Annotate applies a patch to the annotation of a verse and records the
// chapter in the presence filter.
func (p *Provider) Annotate(ctx context.Context, translation string, ref lectio.Ref, patch lectio.AnnotationPatch) (*lectio.Annotation, error) {
	ann, err := p.Annotations.UpsertAnnotation(ctx, translation, ref, patch)
	if err != nil {
		return nil, err
	}
	p.markAnnotated(chapterFilterKey(translation, ref.Book, ref.Chapter))
	return ann, nil
}

// ClearAnnotation removes the annotation of a verse. Clearing an
// unannotated verse succeeds. The presence filter keeps the chapter key;
// the next chapter query runs against the store and finds nothing.
func (p *Provider) ClearAnnotation(ctx context.Context, translation string, ref lectio.Ref) error {
	return p.Annotations.DeleteAnnotation(ctx, translation, ref)
}

// NotesFilter narrows the Notes listing.
type NotesFilter struct {
	// Kind restricts to notes of one kind.
	Kind *lectio.NoteKind

	// FavoritesOnly restricts to notes marked favorite.
	FavoritesOnly bool

	// All lifts the recency cap to the full listing cap.
	All bool
}

// Notes returns annotations carrying a note, most recently updated first.
// The listing is capped at recentListLimit, or fullListLimit when
// filter.All is set.
func (p *Provider) Notes(ctx context.Context, translation string, filter NotesFilter) ([]*lectio.Annotation, error) {
	limit := recentListLimit
	if filter.All {
		limit = fullListLimit
	}
	return p.Annotations.FindAnnotations(ctx, lectio.AnnotationFilter{
		Translation: translation,
		HasNote:     true,
		NoteKind:    filter.Kind,
		Favorite:    filter.FavoritesOnly,
		Limit:       limit,
	})
}

// Highlights returns annotations with a highlight color, most recently
// updated first.
func (p *Provider) Highlights(ctx context.Context, translation string) ([]*lectio.Annotation, error) {
	return p.Annotations.FindAnnotations(ctx, lectio.AnnotationFilter{
		Translation: translation,
		Colored:     true,
		Limit:       fullListLimit,
	})
}

// VerseBookmarks returns annotations with the verse-level bookmark flag,
// most recently updated first.
func (p *Provider) VerseBookmarks(ctx context.Context, translation string) ([]*lectio.Annotation, error) {
	return p.Annotations.FindAnnotations(ctx, lectio.AnnotationFilter{
		Translation: translation,
		Bookmarked:  true,
		Limit:       fullListLimit,
	})
}

// ToggleChapterBookmark flips the bookmark state of a chapter. Returns
// true when the call added the bookmark.
func (p *Provider) ToggleChapterBookmark(ctx context.Context, translation, book string, chapter int) (bool, error) {
	return p.Bookmarks.ToggleBookmark(ctx, translation, book, chapter)
}

// ChapterBookmarks returns the chapter bookmarks of a translation, most
// recently saved first.
func (p *Provider) ChapterBookmarks(ctx context.Context, translation string) ([]*lectio.ChapterBookmark, error) {
	return p.Bookmarks.FindBookmarks(ctx, translation)
}

// Setting returns the stored value for key. Returns ENOTFOUND when the key
// has never been set.
func (p *Provider) Setting(ctx context.Context, key string) (string, error) {
	return p.Settings.Setting(ctx, key)
}

// SettingOr returns the stored value for key, or fallback when unset.
func (p *Provider) SettingOr(ctx context.Context, key, fallback string) (string, error) {
	value, err := p.Settings.Setting(ctx, key)
	if lectio.ErrorCode(err) == lectio.ENOTFOUND {
		return fallback, nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetSetting stores value under key, replacing any previous value.
func (p *Provider) SetSetting(ctx context.Context, key, value string) error {
	return p.Settings.SetSetting(ctx, key, value)
}

// chapterMaybeAnnotated reports whether the chapter key might carry
// annotations, seeding the presence filter from the store on first use.
func (p *Provider) chapterMaybeAnnotated(ctx context.Context, key string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.annotated == nil {
		keys, err := p.Annotations.AnnotatedChapterKeys(ctx)
		if err != nil {
			return false, err
		}
		f := bloom.NewFilter(expectedAnnotatedChapters, annotatedFalsePositives)
		f.AddAll(keys)
		p.annotated = f
	}
	return p.annotated.Test(key), nil
}

// markAnnotated records a chapter key in the presence filter. An unseeded
// filter is left alone; the seed query will pick the key up from the store.
func (p *Provider) markAnnotated(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.annotated != nil {
		p.annotated.Add(key)
	}
}

// chapterFilterKey is the presence filter key of a chapter. It matches the
// key shape of AnnotatedChapterKeys.
func chapterFilterKey(translation, book string, chapter int) string {
	return translation + lectio.KeySeparator + lectio.ChapterKey(book, chapter)
}
