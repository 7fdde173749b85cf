package task

import (
	"time"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/validator"
)

type AssignTasksRequest struct {
	EmployeeID string      `json:"employeeId"`
	Tasks      []TaskInput `json:"tasks"`
}

type TaskInput struct {
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
}

func (r *AssignTasksRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if len(r.Tasks) == 0 {
		errs = append(errs, validator.ValidationError{Field: "tasks", Message: "at least one task is required"})
	}

	for _, t := range r.Tasks {
		if validator.IsEmpty(t.Description) {
			errs = append(errs, validator.ValidationError{Field: "description", Message: "description is required"})
		} else if len(t.Description) > 500 {
			errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not exceed 500 characters"})
		}
		if _, ok := ParseDeadline(t.Deadline); !ok {
			errs = append(errs, validator.ValidationError{Field: "deadline", Message: "deadline must be an ISO8601 timestamp or YYYY-MM-DD date"})
		}
		if t.Priority != "" && !validator.IsInSlice(t.Priority, Priorities()) {
			errs = append(errs, validator.ValidationError{Field: "priority", Message: "priority must be 'low', 'medium', 'high', or 'meeting'"})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ParseDeadline accepts either a full timestamp or a plain date.
func ParseDeadline(deadline string) (time.Time, bool) {
	if t, ok := validator.IsValidDateTime(deadline); ok {
		return t, true
	}
	return validator.IsValidDate(deadline)
}

type UpdateTaskStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

type ListTasksFilter struct {
	EmployeeID string
	Status     string
}

type TaskResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Description  string    `json:"description"`
	Deadline     time.Time `json:"deadline"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		EmployeeID:   t.EmployeeID,
		EmployeeName: t.EmployeeName,
		Description:  t.Description,
		Deadline:     t.Deadline,
		Priority:     string(t.Priority),
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func ToResponseList(tasks []Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, ToResponse(t))
	}
	return responses
}
