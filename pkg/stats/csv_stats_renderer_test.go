package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDailyStats(t *testing.T) {
	renderer := NewCsvStatsRenderer()
	series := DailySeries{
		Unit: UnitMinutes,
		Days: []DailyDuration{
			{Date: "2024-03-01", Seconds: 3600, Value: 60},
			{Date: "2024-03-02", Seconds: 1800, Value: 30},
		},
	}

	out, err := renderer.RenderDailyStats(series)
	require.NoError(t, err)

	expected := "Date,Duration (minutes)\n" +
		"2024-03-01,60.0\n" +
		"2024-03-02,30.0\n" +
		"Total,90.0\n"
	assert.Equal(t, expected, out)
}

func TestRenderDailyStats_Empty(t *testing.T) {
	renderer := NewCsvStatsRenderer()

	out, err := renderer.RenderDailyStats(DailySeries{Unit: UnitHours})
	require.NoError(t, err)

	expected := "Date,Duration (hours)\n" +
		"Total,0.0\n"
	assert.Equal(t, expected, out)
}
