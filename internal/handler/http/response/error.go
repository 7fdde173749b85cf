package response

import (
	"errors"
	"net/http"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/attendance"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/auth"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/leave"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/overtime"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/task"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. fallbackMessage is used
// for errors no case recognizes.
func HandleError(w http.ResponseWriter, err error, fallbackMessage string) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		BadRequest(w, "Employee with this email already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNoCheckInRecord):
		BadRequest(w, "No check-in record found")
	case errors.Is(err, attendance.ErrCheckOutTooSoon):
		BadRequest(w, "You cannot check out within one minute of checking in.")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Status must be 'pending', 'approved', or 'rejected'")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrInvalidStatus):
		BadRequest(w, "Status must be 'pending', 'approved', or 'rejected'")

	// Task domain errors
	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")
	case errors.Is(err, task.ErrInvalidStatus):
		BadRequest(w, "Status must be 'pending', 'in-progress', or 'completed'")
	case errors.Is(err, task.ErrDeadlinePassed):
		BadRequest(w, "Deadline must be in the future")

	// Default
	default:
		InternalServerError(w, fallbackMessage, err)
	}
}
