package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntries(t *testing.T) {
	raw := []byte(`[{"day":1,"start_period":1,"periods":2,"name":"CS101","classroom":"A1","teacher":"Dr.X","color":"#ffcc00"}]`)

	entries, err := ParseEntries(raw)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{Day: 1, StartPeriod: 1, Periods: 2, Name: "CS101", Classroom: "A1", Teacher: "Dr.X", Color: "#ffcc00"}, entries[0])
}

func TestParseEntries_NotAnArray(t *testing.T) {
	_, err := ParseEntries([]byte(`{"day":1}`))
	assert.ErrorIs(t, err, ErrMalformedSchedule)

	_, err = ParseEntries([]byte(`not json`))
	assert.ErrorIs(t, err, ErrMalformedSchedule)
}

func TestBuildGrid_PlacesSpannedCell(t *testing.T) {
	grid := BuildGrid([]Entry{
		{Day: 1, StartPeriod: 1, Periods: 2, Name: "CS101", Classroom: "A1", Teacher: "Dr.X", Color: "#ffcc00"},
	})

	assert.Equal(t, NumDays, grid.Days)
	assert.Equal(t, NumPeriods, grid.Periods)
	require.Len(t, grid.Cells, 1)
	assert.Equal(t, 0, grid.Cells[0].Day)
	assert.Equal(t, 0, grid.Cells[0].Period)
	assert.Equal(t, 2, grid.Cells[0].Span)
	assert.Equal(t, "CS101", grid.Cells[0].Name)
}

func TestBuildGrid_SkipsOutOfRangeEntries(t *testing.T) {
	grid := BuildGrid([]Entry{
		{Day: 9, StartPeriod: 1, Periods: 1, Name: "Ghost"},
		{Day: 0, StartPeriod: 1, Periods: 1, Name: "Ghost"},
		{Day: 3, StartPeriod: 13, Periods: 1, Name: "Ghost"},
	})

	assert.Empty(t, grid.Cells)
}

func TestBuildGrid_ClampsSpanToGridEdge(t *testing.T) {
	grid := BuildGrid([]Entry{
		{Day: 2, StartPeriod: 11, Periods: 5, Name: "Lab"},
	})

	require.Len(t, grid.Cells, 1)
	assert.Equal(t, 10, grid.Cells[0].Period)
	assert.Equal(t, 2, grid.Cells[0].Span)
}

func TestBuildGrid_DefaultsSpanToOne(t *testing.T) {
	grid := BuildGrid([]Entry{
		{Day: 1, StartPeriod: 1, Periods: 0, Name: "Seminar"},
	})

	require.Len(t, grid.Cells, 1)
	assert.Equal(t, 1, grid.Cells[0].Span)
}
