package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	// NumDays is the number of weekday columns in the schedule grid.
	NumDays = 7
	// NumPeriods is the number of class periods per day.
	NumPeriods = 12
)

// ErrMalformedSchedule is returned when parser output is not a JSON array
// of course entries.
var ErrMalformedSchedule = errors.New("malformed schedule data")

// Entry is one course occurrence as emitted by the schedule parser script.
// Day and StartPeriod are 1-based; Periods is the span length in periods.
type Entry struct {
	Day         int    `json:"day"`
	StartPeriod int    `json:"start_period"`
	Periods     int    `json:"periods"`
	Name        string `json:"name"`
	Classroom   string `json:"classroom"`
	Teacher     string `json:"teacher"`
	Color       string `json:"color"`
}

// Cell is one occupied slot of the weekly grid. Period and Day are 0-based
// indices; Span is how many consecutive periods the cell covers.
type Cell struct {
	Period    int    `json:"period"`
	Day       int    `json:"day"`
	Span      int    `json:"span"`
	Name      string `json:"name"`
	Classroom string `json:"classroom"`
	Teacher   string `json:"teacher"`
	Color     string `json:"color"`
}

// Grid is the rendered weekly view of a parsed schedule.
type Grid struct {
	Days    int    `json:"days"`
	Periods int    `json:"periods"`
	Cells   []Cell `json:"cells"`
}

// ParseEntries decodes parser output. Anything other than a JSON array is
// rejected as malformed; an empty array is a valid parse.
func ParseEntries(raw []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSchedule, err)
	}
	return entries, nil
}

// BuildGrid maps entries onto the day/period grid. Entries whose day or
// starting period falls outside the grid are skipped without error. A span
// reaching past the last period is clamped to the grid edge.
func BuildGrid(entries []Entry) Grid {
	cells := make([]Cell, 0, len(entries))
	for _, e := range entries {
		day := e.Day - 1
		period := e.StartPeriod - 1
		if day < 0 || day >= NumDays || period < 0 || period >= NumPeriods {
			continue
		}
		span := e.Periods
		if span < 1 {
			span = 1
		}
		if period+span > NumPeriods {
			span = NumPeriods - period
		}
		cells = append(cells, Cell{
			Period:    period,
			Day:       day,
			Span:      span,
			Name:      e.Name,
			Classroom: e.Classroom,
			Teacher:   e.Teacher,
			Color:     e.Color,
		})
	}
	return Grid{Days: NumDays, Periods: NumPeriods, Cells: cells}
}
