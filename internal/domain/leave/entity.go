package leave

import "time"

type LeaveRequest struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	LeaveType    LeaveType
	StartDate    time.Time
	EndDate      time.Time
	Duration     int
	Reason       string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type LeaveType string

const (
	LeaveTypeSick      LeaveType = "Sick Leave"
	LeaveTypePersonal  LeaveType = "Personal Leave"
	LeaveTypeVacation  LeaveType = "Vacation"
	LeaveTypeEmergency LeaveType = "Emergency Leave"
	LeaveTypeParental  LeaveType = "Maternity/Paternity Leave"
)

func LeaveTypes() []string {
	return []string{
		string(LeaveTypeSick),
		string(LeaveTypePersonal),
		string(LeaveTypeVacation),
		string(LeaveTypeEmergency),
		string(LeaveTypeParental),
	}
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
