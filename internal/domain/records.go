package domain

import "time"

// Block is a scheduled time interval on the user's calendar.
type Block struct {
	ID         string
	Start      time.Time
	End        time.Time
	Category   string
	Type       BlockType
	PlannedMin int
	ActualMin  *int

	Interrupted bool
	Completed   bool

	CreatedAt time.Time
}

// DurationMinutes resolves the effective duration: actual wins when present,
// else planned, else zero.
func (b Block) DurationMinutes() int {
	return IntFromPtrWithDefault(b.PlannedMin, b.ActualMin)
}

// Task is a unit of work the user intends to complete.
type Task struct {
	ID          string
	Title       string
	Category    string
	CreatedAt   time.Time
	DueDate     *time.Time
	CompletedAt *time.Time
}

// AnchorDate is the date used for trend bucketing: due date if set,
// else creation date.
func (t Task) AnchorDate() time.Time {
	if t.DueDate != nil {
		return *t.DueDate
	}
	return t.CreatedAt
}

// Done reports whether the task has been completed.
func (t Task) Done() bool {
	return t.CompletedAt != nil
}

// CheckIn is a daily self-report keyed by calendar date (YYYY-MM-DD).
type CheckIn struct {
	Date   string
	Mood   int
	Energy int
	Stress int
}

// CheckInDateLayout is the calendar-date key format for check-ins.
const CheckInDateLayout = "2006-01-02"

// Day parses the check-in's calendar date at local midnight.
func (c CheckIn) Day() (time.Time, error) {
	return time.ParseInLocation(CheckInDateLayout, c.Date, time.Local)
}

// CompletionFeedback is post-hoc feedback weakly linked to a block and/or
// task. BlockID and TaskID are non-owning references; either may be empty.
type CompletionFeedback struct {
	ID          string
	BlockID     string
	TaskID      string
	Feeling     Feeling
	Note        string
	CompletedAt time.Time
}

// Settings is the per-user configuration bag handed in by the caller.
type Settings struct {
	DailyReflectionEnabled bool
}
