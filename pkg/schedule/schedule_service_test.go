package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyhub/studyhub/internal/event_bus"
	"github.com/studyhub/studyhub/internal/script"
)

func TestImport_PersistsRawAndRendersGrid(t *testing.T) {
	raw := []byte(`[{"day":1,"start_period":1,"periods":2,"name":"CS101","classroom":"A1","teacher":"Dr.X","color":"#ffcc00"}]`)
	source := &StubSource{Output: raw}
	repo := &StubScheduleRepository{}
	bus := event_bus.NewEventBus()

	imported := 0
	event_bus.SubscribeTyped(bus, event_bus.TypeScheduleImported, func(e event_bus.EventT[event_bus.ScheduleImported]) error {
		imported = e.Data.Courses
		return nil
	})

	service := NewImportService(source, repo, bus)
	grid, err := service.Import(context.Background(), "timetable.html")
	require.NoError(t, err)

	require.Len(t, grid.Cells, 1)
	assert.Equal(t, []string{"timetable.html"}, source.Calls)
	assert.Equal(t, raw, repo.Raw)
	assert.Equal(t, 1, imported)
}

func TestImport_EmptyArrayKeepsPreviousSchedule(t *testing.T) {
	previous := []byte(`[{"day":1,"start_period":1,"periods":1,"name":"Old"}]`)
	source := &StubSource{Output: []byte(`[]`)}
	repo := &StubScheduleRepository{Raw: previous}

	service := NewImportService(source, repo, event_bus.NewEventBus())
	_, err := service.Import(context.Background(), "timetable.html")

	assert.ErrorIs(t, err, ErrNoCourses)
	assert.Equal(t, previous, repo.Raw)
}

func TestImport_MalformedOutputPersistsNothing(t *testing.T) {
	source := &StubSource{Output: []byte(`<html>oops</html>`)}
	repo := &StubScheduleRepository{}

	service := NewImportService(source, repo, event_bus.NewEventBus())
	_, err := service.Import(context.Background(), "timetable.html")

	assert.ErrorIs(t, err, ErrMalformedSchedule)
	assert.Nil(t, repo.Raw)
}

func TestImport_ScriptFailurePersistsNothing(t *testing.T) {
	source := &StubSource{Err: script.ErrScriptFailed}
	repo := &StubScheduleRepository{}

	service := NewImportService(source, repo, event_bus.NewEventBus())
	_, err := service.Import(context.Background(), "timetable.html")

	assert.ErrorIs(t, err, script.ErrScriptFailed)
	assert.Nil(t, repo.Raw)
}

func TestLoadLast_ReRendersPersistedSchedule(t *testing.T) {
	repo := &StubScheduleRepository{Raw: []byte(`[{"day":2,"start_period":3,"periods":1,"name":"Algebra"}]`)}

	service := NewImportService(&StubSource{}, repo, event_bus.NewEventBus())
	grid, err := service.LoadLast(context.Background())
	require.NoError(t, err)

	require.Len(t, grid.Cells, 1)
	assert.Equal(t, 1, grid.Cells[0].Day)
	assert.Equal(t, 2, grid.Cells[0].Period)
}

func TestLoadLast_NothingImportedYet(t *testing.T) {
	service := NewImportService(&StubSource{}, &StubScheduleRepository{}, event_bus.NewEventBus())

	_, err := service.LoadLast(context.Background())
	assert.ErrorIs(t, err, ErrNoSchedule)
}
