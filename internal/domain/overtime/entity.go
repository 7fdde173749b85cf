package overtime

import "time"

type OvertimeRequest struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         time.Time
	Hours        float64
	StartTime    string
	EndTime      string
	Reason       string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func Statuses() []string {
	return []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}
}
