package sqlite

import (
	"context"
	"time"

	"github.com/awalczyk/lectio"
)

// Compile-time interface verification.
var _ lectio.BookmarkService = (*BookmarkService)(nil)

// BookmarkService implements lectio.BookmarkService using SQLite.
type BookmarkService struct {
	db *DB
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(db *DB) *BookmarkService {
	return &BookmarkService{db: db}
}

// ToggleBookmark flips the bookmark state of a chapter inside one
// transaction. Returns true when the bookmark was added.
func (s *BookmarkService) ToggleBookmark(ctx context.Context, translation, book string, chapter int) (bool, error) {
	bookmark := &lectio.ChapterBookmark{Translation: translation, Book: book, Chapter: chapter}
	if err := bookmark.Validate(); err != nil {
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM bookmarks WHERE translation = ? AND book = ? AND chapter = ?)
	`, translation, book, chapter).Scan(&exists)
	if err != nil {
		return false, err
	}

	if exists {
		_, err = tx.ExecContext(ctx, `
			DELETE FROM bookmarks WHERE translation = ? AND book = ? AND chapter = ?
		`, translation, book, chapter)
	} else {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO bookmarks (translation, book, chapter, saved_at) VALUES (?, ?, ?, ?)
		`, translation, book, chapter, formatTime(time.Now()))
	}
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	return !exists, nil
}

// FindBookmarks retrieves the bookmarks of a translation, most recently
// saved first.
func (s *BookmarkService) FindBookmarks(ctx context.Context, translation string) ([]*lectio.ChapterBookmark, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT translation, book, chapter, saved_at
		FROM bookmarks
		WHERE translation = ?
		ORDER BY saved_at DESC
	`, translation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []*lectio.ChapterBookmark
	for rows.Next() {
		var b lectio.ChapterBookmark
		var savedAt string
		if err := rows.Scan(&b.Translation, &b.Book, &b.Chapter, &savedAt); err != nil {
			return nil, err
		}

		b.SavedAt, err = parseTime(savedAt, "saved_at")
		if err != nil {
			return nil, err
		}

		bookmarks = append(bookmarks, &b)
	}

	return bookmarks, rows.Err()
}

// IsBookmarked reports whether a chapter is currently bookmarked.
func (s *BookmarkService) IsBookmarked(ctx context.Context, translation, book string, chapter int) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM bookmarks WHERE translation = ? AND book = ? AND chapter = ?)
	`, translation, book, chapter).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
