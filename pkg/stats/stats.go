package stats

// Unit is the time unit used when presenting study durations.
type Unit string

const (
	UnitSeconds Unit = "seconds"
	UnitMinutes Unit = "minutes"
	UnitHours   Unit = "hours"
)

// DailyDuration is the total recorded study time for one calendar date.
// Value carries the duration converted to the requested unit.
type DailyDuration struct {
	Date    string
	Seconds int
	Value   float64
}

// DailySeries is a chronologically ordered sequence of per-day totals.
type DailySeries struct {
	Unit Unit
	Days []DailyDuration
}

func (u Unit) divisor() float64 {
	switch u {
	case UnitMinutes:
		return 60
	case UnitHours:
		return 3600
	default:
		return 1
	}
}

// ParseUnit maps a query-string value onto a Unit, defaulting to minutes,
// which is what the statistics view opens with.
func ParseUnit(s string) Unit {
	switch Unit(s) {
	case UnitSeconds, UnitMinutes, UnitHours:
		return Unit(s)
	default:
		return UnitMinutes
	}
}
