package sqlite

import (
	"context"
	"strings"

	"github.com/awalczyk/lectio"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ lectio.SessionService = (*SessionService)(nil)

// SessionService implements lectio.SessionService using SQLite.
type SessionService struct {
	db *DB
}

// NewSessionService creates a new SessionService.
func NewSessionService(db *DB) *SessionService {
	return &SessionService{db: db}
}

// CreateImportSession stores a completed import session. The ID is
// assigned here.
func (s *SessionService) CreateImportSession(ctx context.Context, session *lectio.ImportSession) error {
	if err := session.Validate(); err != nil {
		return err
	}

	session.ID = uuid.New().String()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO import_sessions (id, translation, source, verse_count, book_count, source_hash, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, session.ID, session.Translation, session.Source, session.VerseCount, session.BookCount,
		session.SourceHash, formatTime(session.StartedAt), formatTime(session.FinishedAt))

	return err
}

// FindImportSessions retrieves import sessions, most recent first. An
// empty translation returns sessions for every translation.
func (s *SessionService) FindImportSessions(ctx context.Context, translation string) ([]*lectio.ImportSession, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, translation, source, verse_count, book_count, source_hash, started_at, finished_at FROM import_sessions")

	if translation != "" {
		query.WriteString(" WHERE translation = ?")
		args = append(args, translation)
	}

	query.WriteString(" ORDER BY started_at DESC")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*lectio.ImportSession
	for rows.Next() {
		var session lectio.ImportSession
		var startedAt, finishedAt string

		if err := rows.Scan(&session.ID, &session.Translation, &session.Source, &session.VerseCount,
			&session.BookCount, &session.SourceHash, &startedAt, &finishedAt); err != nil {
			return nil, err
		}

		if session.StartedAt, err = parseTime(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if session.FinishedAt, err = parseTime(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		sessions = append(sessions, &session)
	}

	return sessions, rows.Err()
}
