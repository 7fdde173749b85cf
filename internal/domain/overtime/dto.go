package overtime

import (
	"time"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/validator"
)

type SubmitOvertimeRequest struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	Reason     string  `json:"reason"`
}

func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if r.Hours < 0.5 || r.Hours > 12 {
		errs = append(errs, validator.ValidationError{Field: "hours", Message: "hours must be between 0.5 and 12"})
	}
	if !validator.IsValidClockTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "startTime", Message: "startTime must be in HH:MM 24-hour format"})
	}
	if !validator.IsValidClockTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "endTime", Message: "endTime must be in HH:MM 24-hour format"})
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

type UpdateOvertimeStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

type ListOvertimeFilter struct {
	Status     string
	EmployeeID string
}

type OvertimeRequestResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Date         string    `json:"date"`
	Hours        float64   `json:"hours"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToResponse(or OvertimeRequest) OvertimeRequestResponse {
	return OvertimeRequestResponse{
		ID:           or.ID,
		EmployeeID:   or.EmployeeID,
		EmployeeName: or.EmployeeName,
		Date:         or.Date.Format("2006-01-02"),
		Hours:        or.Hours,
		StartTime:    or.StartTime,
		EndTime:      or.EndTime,
		Reason:       or.Reason,
		Status:       string(or.Status),
		CreatedAt:    or.CreatedAt,
		UpdatedAt:    or.UpdatedAt,
	}
}

func ToResponseList(requests []OvertimeRequest) []OvertimeRequestResponse {
	responses := make([]OvertimeRequestResponse, 0, len(requests))
	for _, or := range requests {
		responses = append(responses, ToResponse(or))
	}
	return responses
}
