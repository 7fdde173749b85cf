package task

import "time"

type Task struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Description  string
	Deadline     time.Time
	Priority     Priority
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Priority string

const (
	PriorityLow     Priority = "low"
	PriorityMedium  Priority = "medium"
	PriorityHigh    Priority = "high"
	PriorityMeeting Priority = "meeting"
)

func Priorities() []string {
	return []string{
		string(PriorityLow),
		string(PriorityMedium),
		string(PriorityHigh),
		string(PriorityMeeting),
	}
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func Statuses() []string {
	return []string{string(StatusPending), string(StatusInProgress), string(StatusCompleted)}
}
