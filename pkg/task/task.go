package task

// Task is a titled time-blocked calendar entry for one date.
//
// Date is an ISO-8601 date string (2006-01-02); StartTime and EndTime are
// wall-clock strings in "HH:mm" form. An Id of 0 means the task has not been
// persisted yet.
type Task struct {
	Id        int
	Date      string
	Title     string
	StartTime string
	EndTime   string
	Note      string
}

// Urgency buckets dates with tasks by how soon they arrive, mirroring the
// calendar highlight thresholds.
type Urgency string

const (
	UrgencyImminent Urgency = "imminent" // fewer than 7 days away
	UrgencyNear     Urgency = "near"     // 7 to 14 days away
	UrgencyFar      Urgency = "far"      // 15 or more days away
)

// DateHighlight describes one future (or current) date that has at least one
// task, together with its urgency bucket.
type DateHighlight struct {
	Date      string
	DaysUntil int
	Urgency   Urgency
}
