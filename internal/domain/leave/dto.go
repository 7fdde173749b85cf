package leave

import (
	"time"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID string `json:"employeeId"`
	LeaveType  string `json:"leaveType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Duration   int    `json:"duration"`
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if !validator.IsInSlice(r.LeaveType, LeaveTypes()) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "leaveType is invalid"})
	}

	startDate, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"})
	}
	endDate, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be in YYYY-MM-DD format"})
	}
	if startOK && endOK && !endDate.After(startDate) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "End date must be after start date"})
	}

	if r.Duration < 1 {
		errs = append(errs, validator.ValidationError{Field: "duration", Message: "duration must be at least 1 day"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	} else if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must not exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateLeaveStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

type ListLeaveFilter struct {
	Status     string
	EmployeeID string
}

type LeaveRequestResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	LeaveType    string    `json:"leaveType"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	Duration     int       `json:"duration"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToResponse(lr LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           lr.ID,
		EmployeeID:   lr.EmployeeID,
		EmployeeName: lr.EmployeeName,
		LeaveType:    string(lr.LeaveType),
		StartDate:    lr.StartDate.Format("2006-01-02"),
		EndDate:      lr.EndDate.Format("2006-01-02"),
		Duration:     lr.Duration,
		Reason:       lr.Reason,
		Status:       string(lr.Status),
		CreatedAt:    lr.CreatedAt,
		UpdatedAt:    lr.UpdatedAt,
	}
}

func ToResponseList(requests []LeaveRequest) []LeaveRequestResponse {
	responses := make([]LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, ToResponse(lr))
	}
	return responses
}
