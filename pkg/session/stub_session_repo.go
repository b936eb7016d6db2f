package session

import (
	"context"
	"sort"
)

type StubSessionRepository struct {
	Sessions []StudySession
	nextId   int
	Err      error
}

func (s *StubSessionRepository) StoreSession(ctx context.Context, session StudySession) (StudySession, error) {
	if s.Err != nil {
		return StudySession{}, s.Err
	}
	s.nextId++
	session.Id = s.nextId
	s.Sessions = append(s.Sessions, session)
	return session, nil
}

func (s *StubSessionRepository) ListSessions(ctx context.Context) ([]StudySession, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	sessions := make([]StudySession, len(s.Sessions))
	copy(sessions, s.Sessions)
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.Before(sessions[j].StartTime)
	})
	return sessions, nil
}

func (s *StubSessionRepository) DeleteAllSessions(ctx context.Context) error {
	if s.Err != nil {
		return s.Err
	}
	s.Sessions = nil
	return nil
}
