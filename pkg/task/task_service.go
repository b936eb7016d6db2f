package task

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/studyhub/studyhub/internal/event_bus"
	"github.com/studyhub/studyhub/internal/utils"
)

var (
	ErrEmptyTitle  = errors.New("task title must not be empty")
	ErrInvalidDate = errors.New("task date must be an ISO date (YYYY-MM-DD)")
)

const isoDate = "2006-01-02"

type TaskService interface {
	CreateTask(ctx context.Context, t Task) (Task, error)
	GetTasksForDate(ctx context.Context, date string) ([]Task, error)
	UpdateTask(ctx context.Context, id int, t Task) error
	DeleteTask(ctx context.Context, id int) error
	DatesWithTasks(ctx context.Context) ([]DateHighlight, error)
}

type TaskServiceImpl struct {
	repo  TaskRepository
	bus   *event_bus.EventBus
	clock utils.Clock

	mu              sync.Mutex
	cachedHighlight []DateHighlight
	cacheValid      bool
}

func NewTaskService(repo TaskRepository, bus *event_bus.EventBus, clock utils.Clock) *TaskServiceImpl {
	return &TaskServiceImpl{repo: repo, bus: bus, clock: clock}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, t Task) (Task, error) {
	if err := validate(t); err != nil {
		return Task{}, err
	}

	stored, err := s.repo.StoreTask(ctx, t)
	if err != nil {
		return Task{}, fmt.Errorf("failed to store task: %w", err)
	}

	s.publish(ctx, event_bus.TypeTaskCreated, stored)
	return stored, nil
}

func (s *TaskServiceImpl) GetTasksForDate(ctx context.Context, date string) ([]Task, error) {
	if _, err := time.Parse(isoDate, date); err != nil {
		return nil, ErrInvalidDate
	}
	return s.repo.GetTasksForDate(ctx, date)
}

// UpdateTask replaces the stored task's title, times, and note. The task's
// identifier and date are preserved regardless of what the caller supplies.
func (s *TaskServiceImpl) UpdateTask(ctx context.Context, id int, t Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}

	if err := s.repo.UpdateTaskById(ctx, id, t); err != nil {
		return err
	}

	t.Id = id
	s.publish(ctx, event_bus.TypeTaskUpdated, t)
	return nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, id int) error {
	if err := s.repo.DeleteTaskById(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, event_bus.TypeTaskDeleted, Task{Id: id})
	return nil
}

// DatesWithTasks returns every current-or-future date that has at least one
// task, bucketed by urgency: 15+ days out is "far", 7-14 days "near",
// anything sooner "imminent". Past dates are omitted. Results are cached
// until the next task mutation.
func (s *TaskServiceImpl) DatesWithTasks(ctx context.Context) ([]DateHighlight, error) {
	s.mu.Lock()
	if s.cacheValid {
		cached := s.cachedHighlight
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	dates, err := s.repo.GetAllDatesWithTasks(ctx)
	if err != nil {
		return nil, err
	}

	today := s.clock.Now()
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	highlights := make([]DateHighlight, 0, len(dates))
	for _, date := range dates {
		d, err := time.Parse(isoDate, date)
		if err != nil {
			log.Warnf("Skipping unparseable task date %q: %v", date, err)
			continue
		}
		daysUntil := int(d.Sub(todayStart).Hours() / 24)
		if daysUntil < 0 {
			continue
		}

		urgency := UrgencyImminent
		if daysUntil >= 15 {
			urgency = UrgencyFar
		} else if daysUntil >= 7 {
			urgency = UrgencyNear
		}
		highlights = append(highlights, DateHighlight{Date: date, DaysUntil: daysUntil, Urgency: urgency})
	}

	sort.Slice(highlights, func(i, j int) bool {
		return highlights[i].Date < highlights[j].Date
	})

	s.mu.Lock()
	s.cachedHighlight = highlights
	s.cacheValid = true
	s.mu.Unlock()

	return highlights, nil
}

// InvalidateHighlightCache drops the cached date highlights. It is wired as
// a bus subscriber for task change events.
func (s *TaskServiceImpl) InvalidateHighlightCache() {
	s.mu.Lock()
	s.cacheValid = false
	s.cachedHighlight = nil
	s.mu.Unlock()
}

func (s *TaskServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, t Task) {
	if s.bus == nil {
		return
	}
	err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, event_bus.TaskChanged{
		Id:    t.Id,
		Date:  t.Date,
		Title: t.Title,
	}))
	if err != nil {
		log.Warnf("Failed to publish %s event: %v", eventType, err)
	}
}

func validate(t Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if _, err := time.Parse(isoDate, t.Date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
