package sqlite

import (
	"context"

	"github.com/awalczyk/lectio"
)

// Compile-time interface verification.
var _ lectio.VerseService = (*VerseService)(nil)

// VerseService implements lectio.VerseService using SQLite.
type VerseService struct {
	db *DB
}

// NewVerseService creates a new VerseService.
func NewVerseService(db *DB) *VerseService {
	return &VerseService{db: db}
}

// SaveVerses writes a batch of verses in a single transaction. Rows with
// the same (translation, ref) key are overwritten, so replaying the same
// batch leaves the table unchanged. On any failure the transaction is
// rolled back and EABORTED is returned; no partial batch becomes visible.
func (s *VerseService) SaveVerses(ctx context.Context, verses []*lectio.Verse) error {
	if len(verses) == 0 {
		return nil
	}
	for _, v := range verses {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return lectio.Errorf(lectio.EABORTED, "verse batch could not start: %v", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO verses (translation, ref, book, chapter, verse, text)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (translation, ref) DO UPDATE SET
			book = excluded.book,
			chapter = excluded.chapter,
			verse = excluded.verse,
			text = excluded.text
	`)
	if err != nil {
		return lectio.Errorf(lectio.EABORTED, "verse batch rolled back: %v", err)
	}
	defer stmt.Close()

	for _, v := range verses {
		if _, err := stmt.ExecContext(ctx, v.Translation, v.Key(), v.Book, v.Chapter, v.Verse, v.Text); err != nil {
			return lectio.Errorf(lectio.EABORTED, "verse batch rolled back at %s: %v", v.Key(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return lectio.Errorf(lectio.EABORTED, "verse batch rolled back: %v", err)
	}

	return nil
}

// FindVersesByChapter retrieves the verses of a chapter sorted by verse
// ordinal. The ORDER BY is explicit; insertion order is never trusted.
func (s *VerseService) FindVersesByChapter(ctx context.Context, translation, book string, chapter int) ([]*lectio.Verse, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT translation, book, chapter, verse, text
		FROM verses
		WHERE translation = ? AND book = ? AND chapter = ?
		ORDER BY verse ASC
	`, translation, book, chapter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var verses []*lectio.Verse
	for rows.Next() {
		var v lectio.Verse
		if err := rows.Scan(&v.Translation, &v.Book, &v.Chapter, &v.Verse, &v.Text); err != nil {
			return nil, err
		}
		verses = append(verses, &v)
	}

	return verses, rows.Err()
}

// CountVerses returns the number of stored verses for a translation.
func (s *VerseService) CountVerses(ctx context.Context, translation string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM verses WHERE translation = ?
	`, translation).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ScanVerses visits every verse of a translation in key order. The rows
// cursor is closed as soon as fn returns false, so an early stop never
// reads the rest of the table.
func (s *VerseService) ScanVerses(ctx context.Context, translation string, fn func(*lectio.Verse) bool) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT translation, book, chapter, verse, text
		FROM verses
		WHERE translation = ?
		ORDER BY ref ASC
	`, translation)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var v lectio.Verse
		if err := rows.Scan(&v.Translation, &v.Book, &v.Chapter, &v.Verse, &v.Text); err != nil {
			return err
		}
		if !fn(&v) {
			break
		}
	}

	return rows.Err()
}

// Translations returns the distinct translations with stored verses.
func (s *VerseService) Translations(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT translation FROM verses ORDER BY translation ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var translations []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		translations = append(translations, t)
	}

	return translations, rows.Err()
}

// DeleteTranslation removes all verses of a translation. Deleting a
// translation that was never imported is a no-op.
func (s *VerseService) DeleteTranslation(ctx context.Context, translation string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM verses WHERE translation = ?", translation)
	return err
}
