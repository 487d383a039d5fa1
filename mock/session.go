package mock

import (
	"context"

	"github.com/awalczyk/lectio"
)

var _ lectio.SessionService = (*SessionService)(nil)

// SessionService is a mock implementation of lectio.SessionService.
type SessionService struct {
	CreateImportSessionFn func(ctx context.Context, session *lectio.ImportSession) error
	FindImportSessionsFn  func(ctx context.Context, translation string) ([]*lectio.ImportSession, error)
}

func (s *SessionService) CreateImportSession(ctx context.Context, session *lectio.ImportSession) error {
	return s.CreateImportSessionFn(ctx, session)
}

func (s *SessionService) FindImportSessions(ctx context.Context, translation string) ([]*lectio.ImportSession, error) {
	return s.FindImportSessionsFn(ctx, translation)
}
