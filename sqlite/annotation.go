package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/awalczyk/lectio"
)

// Compile-time interface verification.
var _ lectio.AnnotationService = (*AnnotationService)(nil)

// AnnotationService implements lectio.AnnotationService using SQLite.
type AnnotationService struct {
	db *DB
}

// NewAnnotationService creates a new AnnotationService.
func NewAnnotationService(db *DB) *AnnotationService {
	return &AnnotationService{db: db}
}

// queryRower is satisfied by both *DB and *sql.Tx, so point reads can run
// inside or outside a transaction.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const annotationColumns = `translation, book, chapter, verse, color, underline, bold, bookmarked, note, note_kind, note_favorite, updated_at`

// scanAnnotation reads one annotation row.
func scanAnnotation(row rowScanner) (*lectio.Annotation, error) {
	var ann lectio.Annotation
	var kind, updatedAt string

	if err := row.Scan(&ann.Translation, &ann.Book, &ann.Chapter, &ann.Verse, &ann.Color,
		&ann.Underline, &ann.Bold, &ann.Bookmarked, &ann.Note, &kind, &ann.NoteFavorite, &updatedAt); err != nil {
		return nil, err
	}
	ann.NoteKind = lectio.NoteKind(kind)

	var err error
	ann.UpdatedAt, err = parseTime(updatedAt, "updated_at")
	if err != nil {
		return nil, err
	}

	return &ann, nil
}

// findAnnotation retrieves the annotation for a single verse key.
func findAnnotation(ctx context.Context, q queryRower, translation string, ref lectio.Ref) (*lectio.Annotation, error) {
	row := q.QueryRowContext(ctx, `
		SELECT `+annotationColumns+`
		FROM annotations
		WHERE translation = ? AND ref = ?
	`, translation, ref.Key())

	ann, err := scanAnnotation(row)
	if err == sql.ErrNoRows {
		return nil, lectio.Errorf(lectio.ENOTFOUND, "annotation not found")
	}
	if err != nil {
		return nil, err
	}

	return ann, nil
}

// UpsertAnnotation applies a patch to the annotation stored for a verse.
// The read, merge, and write all happen inside one transaction, so two
// patches can never interleave and drop each other's fields. When no
// annotation exists the patch is applied on top of the defaults from
// lectio.NewAnnotation. UpdatedAt is stamped on every save.
func (s *AnnotationService) UpsertAnnotation(ctx context.Context, translation string, ref lectio.Ref, patch lectio.AnnotationPatch) (*lectio.Annotation, error) {
	if translation == "" {
		return nil, lectio.Errorf(lectio.EINVALID, "Translation required.")
	}
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	ann, err := findAnnotation(ctx, tx, translation, ref)
	if lectio.ErrorCode(err) == lectio.ENOTFOUND {
		ann = lectio.NewAnnotation(translation, ref)
	} else if err != nil {
		return nil, err
	}

	patch.Apply(ann)
	ann.UpdatedAt = time.Now().UTC()

	if err := ann.Validate(); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO annotations (translation, ref, book, chapter, verse, color, underline, bold, bookmarked, note, note_kind, note_favorite, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (translation, ref) DO UPDATE SET
			color = excluded.color,
			underline = excluded.underline,
			bold = excluded.bold,
			bookmarked = excluded.bookmarked,
			note = excluded.note,
			note_kind = excluded.note_kind,
			note_favorite = excluded.note_favorite,
			updated_at = excluded.updated_at
	`, ann.Translation, ann.Key(), ann.Book, ann.Chapter, ann.Verse, ann.Color, ann.Underline,
		ann.Bold, ann.Bookmarked, ann.Note, string(ann.NoteKind), ann.NoteFavorite,
		formatTime(ann.UpdatedAt)); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return ann, nil
}

// FindAnnotationByRef retrieves the annotation for a verse.
func (s *AnnotationService) FindAnnotationByRef(ctx context.Context, translation string, ref lectio.Ref) (*lectio.Annotation, error) {
	return findAnnotation(ctx, s.db, translation, ref)
}

// FindAnnotationsByChapter retrieves all annotations of a chapter keyed by
// verse key. An unannotated chapter yields an empty map.
func (s *AnnotationService) FindAnnotationsByChapter(ctx context.Context, translation, book string, chapter int) (map[string]*lectio.Annotation, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+annotationColumns+`
		FROM annotations
		WHERE translation = ? AND book = ? AND chapter = ?
	`, translation, book, chapter)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	annotations := make(map[string]*lectio.Annotation)
	for rows.Next() {
		ann, err := scanAnnotation(rows)
		if err != nil {
			return nil, err
		}
		annotations[ann.Key()] = ann
	}

	return annotations, rows.Err()
}

// FindAnnotations retrieves annotations matching the filter, most recently
// updated first.
func (s *AnnotationService) FindAnnotations(ctx context.Context, filter lectio.AnnotationFilter) ([]*lectio.Annotation, error) {
	if filter.Translation == "" {
		return nil, lectio.Errorf(lectio.EINVALID, "Translation required.")
	}

	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + annotationColumns + " FROM annotations WHERE translation = ?")
	args = append(args, filter.Translation)

	if filter.HasNote {
		query.WriteString(" AND note <> ''")
	}
	if filter.NoteKind != nil {
		query.WriteString(" AND note_kind = ?")
		args = append(args, string(*filter.NoteKind))
	}
	if filter.Favorite {
		query.WriteString(" AND note_favorite = 1")
	}
	if filter.Bookmarked {
		query.WriteString(" AND bookmarked = 1")
	}
	if filter.Colored {
		query.WriteString(" AND color <> ?")
		args = append(args, lectio.ColorNone)
	}

	query.WriteString(" ORDER BY updated_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var annotations []*lectio.Annotation
	for rows.Next() {
		ann, err := scanAnnotation(rows)
		if err != nil {
			return nil, err
		}
		annotations = append(annotations, ann)
	}

	return annotations, rows.Err()
}

// AnnotatedChapterKeys returns the distinct translation-qualified chapter
// keys that carry at least one annotation.
func (s *AnnotationService) AnnotatedChapterKeys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT translation, book, chapter
		FROM annotations
		ORDER BY translation, book, chapter
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var translation, book string
		var chapter int
		if err := rows.Scan(&translation, &book, &chapter); err != nil {
			return nil, err
		}
		keys = append(keys, translation+lectio.KeySeparator+lectio.ChapterKey(book, chapter))
	}

	return keys, rows.Err()
}

// DeleteAnnotation removes the annotation for a verse. Deleting an absent
// annotation succeeds without effect.
func (s *AnnotationService) DeleteAnnotation(ctx context.Context, translation string, ref lectio.Ref) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM annotations WHERE translation = ? AND ref = ?", translation, ref.Key())
	return err
}
