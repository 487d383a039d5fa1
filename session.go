package lectio

import (
	"context"
	"time"
)

// ImportSession records one completed import of a translation: where the
// source came from, what it hashed to, and how much text it produced.
// Sessions are append-only bookkeeping consumed by status reporting.
type ImportSession struct {
	ID          string    `json:"id"`
	Translation string    `json:"translation"`
	Source      string    `json:"source"`
	VerseCount  int       `json:"verseCount"`
	BookCount   int       `json:"bookCount"`
	SourceHash  string    `json:"sourceHash"`
	StartedAt   time.Time `json:"startedAt"`
	FinishedAt  time.Time `json:"finishedAt"`
}

// Validate returns an error if the session contains invalid fields.
// Validation errors return EINVALID error code. The ID is assigned by the
// store and is not validated here.
func (s *ImportSession) Validate() error {
	if s.Translation == "" {
		return Errorf(EINVALID, "Translation required.")
	}
	return nil
}

// SessionService represents a service for recording import sessions.
type SessionService interface {
	// CreateImportSession stores a completed session record.
	CreateImportSession(ctx context.Context, session *ImportSession) error

	// FindImportSessions returns sessions for a translation, most recent
	// first. An empty translation returns sessions for all translations.
	FindImportSessions(ctx context.Context, translation string) ([]*ImportSession, error)
}
