package stats

import (
	"context"

	"github.com/studyhub/studyhub/pkg/session"
)

type StubSessionSource struct {
	Sessions []session.StudySession
	Err      error
}

func (s *StubSessionSource) ListSessions(ctx context.Context) ([]session.StudySession, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Sessions, nil
}
