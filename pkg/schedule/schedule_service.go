package schedule

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/studyhub/studyhub/internal/event_bus"
)

var (
	// ErrImportInProgress is returned when an import is requested while a
	// previous one is still running.
	ErrImportInProgress = errors.New("schedule import already in progress")
	// ErrNoCourses is returned when the parser emitted an empty array.
	// A previously saved schedule is left untouched in that case.
	ErrNoCourses = errors.New("no courses found")
	// ErrNoSchedule is returned by LoadLast when nothing has been
	// imported yet.
	ErrNoSchedule = errors.New("no schedule imported yet")
)

type ImportService interface {
	// Import parses the given timetable capture, persists the raw result
	// and returns the rendered grid.
	Import(ctx context.Context, filePath string) (Grid, error)
	// LoadLast re-renders the most recently imported schedule without
	// re-invoking the parser.
	LoadLast(ctx context.Context) (Grid, error)
}

type ImportServiceImpl struct {
	source Source
	repo   ScheduleRepository
	bus    *event_bus.EventBus

	// running enforces the at-most-one-in-flight rule.
	running sync.Mutex
}

func NewImportService(source Source, repo ScheduleRepository, bus *event_bus.EventBus) *ImportServiceImpl {
	return &ImportServiceImpl{source: source, repo: repo, bus: bus}
}

func (s *ImportServiceImpl) Import(ctx context.Context, filePath string) (Grid, error) {
	if !s.running.TryLock() {
		return Grid{}, ErrImportInProgress
	}
	defer s.running.Unlock()

	runId := uuid.New().String()
	log.Infof("Importing schedule from %s (run %s)", filePath, runId)

	raw, err := s.source.Parse(ctx, filePath)
	if err != nil {
		return Grid{}, fmt.Errorf("schedule parser failed: %w", err)
	}

	entries, err := ParseEntries(raw)
	if err != nil {
		return Grid{}, err
	}
	if len(entries) == 0 {
		log.Warnf("Schedule parser returned no courses for %s", filePath)
		return Grid{}, ErrNoCourses
	}

	// The raw bytes are persisted verbatim so LoadLast re-renders exactly
	// what the parser produced.
	if err := s.repo.SaveRaw(ctx, raw); err != nil {
		return Grid{}, err
	}

	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.TypeScheduleImported, event_bus.ScheduleImported{
		RunId:   runId,
		Courses: len(entries),
	})); err != nil {
		log.Errorf("Failed to publish schedule imported event: %v", err)
	}

	return BuildGrid(entries), nil
}

func (s *ImportServiceImpl) LoadLast(ctx context.Context) (Grid, error) {
	raw, err := s.repo.LoadRaw(ctx)
	if err != nil {
		return Grid{}, err
	}
	if raw == nil {
		return Grid{}, ErrNoSchedule
	}

	entries, err := ParseEntries(raw)
	if err != nil {
		return Grid{}, err
	}
	return BuildGrid(entries), nil
}
