package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/studyhub/studyhub/internal/event_bus"
	"github.com/studyhub/studyhub/internal/utils"
)

var (
	ErrNoRunningSession = errors.New("no study session is running")
	ErrInvalidInterval  = errors.New("session end must not be before its start")
)

type SessionService interface {
	StartSession(ctx context.Context) (StudySession, error)
	CurrentSession(ctx context.Context) (*StudySession, error)
	FinishCurrentSession(ctx context.Context) (StudySession, error)
	RecordSession(ctx context.Context, start time.Time, end time.Time) (StudySession, error)
	DeleteAllSessions(ctx context.Context) error
}

// SessionServiceImpl implements the study stopwatch. The running session
// lives only in memory; a row is written once, when the session finishes.
type SessionServiceImpl struct {
	repo  SessionRepository
	bus   *event_bus.EventBus
	clock utils.Clock

	mu      sync.Mutex
	started *time.Time
}

func NewSessionService(repo SessionRepository, bus *event_bus.EventBus, clock utils.Clock) *SessionServiceImpl {
	return &SessionServiceImpl{repo: repo, bus: bus, clock: clock}
}

// StartSession begins a new stopwatch session. Starting while a session is
// already running restarts the stopwatch from now.
func (s *SessionServiceImpl) StartSession(ctx context.Context) (StudySession, error) {
	now := s.clock.Now()

	s.mu.Lock()
	if s.started != nil {
		log.Infof("Study session already running since %s, restarting", s.started.Format(time.RFC3339))
	}
	s.started = &now
	s.mu.Unlock()

	return StudySession{StartTime: now}, nil
}

// CurrentSession returns the running session with its elapsed duration so
// far, or nil when no session is running.
func (s *SessionServiceImpl) CurrentSession(ctx context.Context) (*StudySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started == nil {
		return nil, nil
	}

	elapsed := int(s.clock.Now().Sub(*s.started).Seconds())
	return &StudySession{StartTime: *s.started, DurationSeconds: elapsed}, nil
}

// FinishCurrentSession stops the stopwatch and persists the session. The
// duration is the whole-second delta between start and end; a session that
// crosses midnight is attributed entirely to its start date downstream.
func (s *SessionServiceImpl) FinishCurrentSession(ctx context.Context) (StudySession, error) {
	s.mu.Lock()
	started := s.started
	s.started = nil
	s.mu.Unlock()

	if started == nil {
		return StudySession{}, ErrNoRunningSession
	}

	end := s.clock.Now()
	return s.persist(ctx, *started, end)
}

// RecordSession persists an explicitly supplied interval without touching
// the stopwatch. Overlapping sessions are accepted.
func (s *SessionServiceImpl) RecordSession(ctx context.Context, start time.Time, end time.Time) (StudySession, error) {
	return s.persist(ctx, start, end)
}

func (s *SessionServiceImpl) persist(ctx context.Context, start time.Time, end time.Time) (StudySession, error) {
	if end.Before(start) {
		return StudySession{}, ErrInvalidInterval
	}

	duration := int(end.Sub(start).Seconds())
	stored, err := s.repo.StoreSession(ctx, StudySession{
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: duration,
	})
	if err != nil {
		return StudySession{}, fmt.Errorf("failed to store study session: %w", err)
	}

	if s.bus != nil {
		err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TypeStudySessionFinished, event_bus.StudySessionFinished{
			StartTime:       start,
			EndTime:         end,
			DurationSeconds: duration,
		}))
		if err != nil {
			log.Warnf("Failed to publish session finished event: %v", err)
		}
	}

	return stored, nil
}

func (s *SessionServiceImpl) DeleteAllSessions(ctx context.Context) error {
	return s.repo.DeleteAllSessions(ctx)
}
