package event_bus

import "time"

const (
	TypeTaskCreated          EventType = "task.created"
	TypeTaskUpdated          EventType = "task.updated"
	TypeTaskDeleted          EventType = "task.deleted"
	TypeStudySessionFinished EventType = "study.session.finished"
	TypeScheduleImported     EventType = "schedule.imported"
)

type TaskChanged struct {
	Id    int
	Date  string
	Title string
}

type StudySessionFinished struct {
	StartTime time.Time
	EndTime   time.Time
	// DurationSeconds is the whole-second length of the session.
	DurationSeconds int
}

type ScheduleImported struct {
	RunId   string
	Courses int
}
