package lectio

import (
	"context"
	"time"
)

// ChapterBookmark marks a whole chapter as saved for later. Bookmarks are
// a pure toggle keyed by (translation, book, chapter) and carry no payload
// beyond the time they were set.
type ChapterBookmark struct {
	Translation string    `json:"translation"`
	Book        string    `json:"book"`
	Chapter     int       `json:"chapter"`
	SavedAt     time.Time `json:"savedAt"`
}

// Key returns the composite record key of the bookmark, e.g. "kjv|John|3".
func (b *ChapterBookmark) Key() string {
	return b.Translation + KeySeparator + ChapterKey(b.Book, b.Chapter)
}

// Validate returns an error if the bookmark contains invalid fields.
// Validation errors return EINVALID error code.
func (b *ChapterBookmark) Validate() error {
	if b.Translation == "" {
		return Errorf(EINVALID, "Translation required.")
	}
	if b.Book == "" {
		return Errorf(EINVALID, "Book required.")
	}
	if b.Chapter < 1 {
		return Errorf(EINVALID, "Chapter must be positive.")
	}
	return nil
}

// BookmarkService represents a service for managing chapter bookmarks.
type BookmarkService interface {
	// ToggleBookmark flips the bookmark state of a chapter. Returns true
	// when the call added the bookmark and false when it removed it.
	ToggleBookmark(ctx context.Context, translation, book string, chapter int) (bool, error)

	// FindBookmarks returns all bookmarks of a translation, most recently
	// saved first.
	FindBookmarks(ctx context.Context, translation string) ([]*ChapterBookmark, error)

	// IsBookmarked reports whether a chapter is currently bookmarked.
	IsBookmarked(ctx context.Context, translation, book string, chapter int) (bool, error)
}
