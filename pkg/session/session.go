package session

import "time"

// StudySession is one recorded start/end interval of timed study activity.
// Duration is the whole-second length of the interval, computed by the
// caller at finish time; the store never recomputes it.
type StudySession struct {
	Id              int
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int
}
