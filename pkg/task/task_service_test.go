package task

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhub/studyhub/internal/event_bus"
	"github.com/studyhub/studyhub/internal/utils"
)

func setupService(t *testing.T) (*TaskServiceImpl, *StubTaskRepository, *utils.MockClock) {
	t.Helper()
	repo := &StubTaskRepository{}
	clock := &utils.MockClock{FixedNow: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	service := NewTaskService(repo, event_bus.NewEventBus(), clock)
	return service, repo, clock
}

func TestCreateTask_EmptyTitleRejected(t *testing.T) {
	service, repo, _ := setupService(t)

	_, err := service.CreateTask(context.Background(), Task{Date: "2024-03-01", Title: "   "})

	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Empty(t, repo.Tasks, "no store call must be made for invalid input")
}

func TestCreateTask_InvalidDateRejected(t *testing.T) {
	service, repo, _ := setupService(t)

	_, err := service.CreateTask(context.Background(), Task{Date: "03/01/2024", Title: "Math"})

	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Empty(t, repo.Tasks)
}

func TestCreateTask_AssignsIdAndIsReadable(t *testing.T) {
	service, _, _ := setupService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, Task{
		Date:      "2024-03-01",
		Title:     "Math",
		StartTime: "09:00",
		EndTime:   "10:00",
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, created.Id, 1)

	tasks, err := service.GetTasksForDate(ctx, "2024-03-01")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Math", tasks[0].Title)
}

func TestUpdateTask_EmptyTitleRejected(t *testing.T) {
	service, repo, _ := setupService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, Task{Date: "2024-03-01", Title: "Math"})
	require.NoError(t, err)

	err = service.UpdateTask(ctx, created.Id, Task{Title: ""})
	assert.ErrorIs(t, err, ErrEmptyTitle)
	assert.Equal(t, "Math", repo.Tasks[0].Title)
}

func TestDeleteTask_RemovesTask(t *testing.T) {
	service, _, _ := setupService(t)
	ctx := context.Background()

	created, err := service.CreateTask(ctx, Task{Date: "2024-03-01", Title: "Math"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTask(ctx, created.Id))

	tasks, err := service.GetTasksForDate(ctx, "2024-03-01")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestDatesWithTasks_UrgencyBuckets(t *testing.T) {
	service, _, _ := setupService(t)
	ctx := context.Background()

	// Clock is fixed at 2024-03-01.
	for _, task := range []Task{
		{Date: "2024-02-20", Title: "Past"},      // excluded
		{Date: "2024-03-01", Title: "Today"},     // 0 days -> imminent
		{Date: "2024-03-05", Title: "Soon"},      // 4 days -> imminent
		{Date: "2024-03-08", Title: "Next week"}, // 7 days -> near
		{Date: "2024-03-20", Title: "Later"},     // 19 days -> far
	} {
		_, err := service.CreateTask(ctx, task)
		require.NoError(t, err)
	}

	highlights, err := service.DatesWithTasks(ctx)
	require.NoError(t, err)
	require.Len(t, highlights, 4)

	assert.Equal(t, DateHighlight{Date: "2024-03-01", DaysUntil: 0, Urgency: UrgencyImminent}, highlights[0])
	assert.Equal(t, DateHighlight{Date: "2024-03-05", DaysUntil: 4, Urgency: UrgencyImminent}, highlights[1])
	assert.Equal(t, DateHighlight{Date: "2024-03-08", DaysUntil: 7, Urgency: UrgencyNear}, highlights[2])
	assert.Equal(t, DateHighlight{Date: "2024-03-20", DaysUntil: 19, Urgency: UrgencyFar}, highlights[3])
}

func TestDatesWithTasks_CacheInvalidatedViaBus(t *testing.T) {
	repo := &StubTaskRepository{}
	bus := event_bus.NewEventBus()
	clock := &utils.MockClock{FixedNow: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	service := NewTaskService(repo, bus, clock)
	for _, eventType := range []event_bus.EventType{event_bus.TypeTaskCreated, event_bus.TypeTaskUpdated, event_bus.TypeTaskDeleted} {
		bus.Subscribe(eventType, func(e event_bus.Event) error {
			service.InvalidateHighlightCache()
			return nil
		})
	}
	ctx := context.Background()

	_, err := service.CreateTask(ctx, Task{Date: "2024-03-05", Title: "Math"})
	require.NoError(t, err)

	highlights, err := service.DatesWithTasks(ctx)
	require.NoError(t, err)
	require.Len(t, highlights, 1)

	// A new task on another date must show up after invalidation.
	_, err = service.CreateTask(ctx, Task{Date: "2024-03-09", Title: "Physics"})
	require.NoError(t, err)

	highlights, err = service.DatesWithTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, highlights, 2)
}
