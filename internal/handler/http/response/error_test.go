package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/attendance"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/auth"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/leave"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/overtime"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/task"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleAndDecode(t *testing.T, err error) (int, Response) {
	rec := httptest.NewRecorder()
	HandleError(rec, err, "Something went wrong")

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHandleError_DomainErrorMessages(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "Employee not found"},
		{"duplicate email", employee.ErrEmailExists, http.StatusBadRequest, "Employee with this email already exists"},
		{"no check-in marker", attendance.ErrNoCheckInRecord, http.StatusBadRequest, "No check-in record found"},
		{"check-out too soon", attendance.ErrCheckOutTooSoon, http.StatusBadRequest, "You cannot check out within one minute of checking in."},
		{"leave request not found", leave.ErrLeaveRequestNotFound, http.StatusNotFound, "Leave request not found"},
		{"bad leave status", leave.ErrInvalidStatus, http.StatusBadRequest, "Status must be 'pending', 'approved', or 'rejected'"},
		{"overtime request not found", overtime.ErrOvertimeRequestNotFound, http.StatusNotFound, "Overtime request not found"},
		{"bad overtime status", overtime.ErrInvalidStatus, http.StatusBadRequest, "Status must be 'pending', 'approved', or 'rejected'"},
		{"task not found", task.ErrTaskNotFound, http.StatusNotFound, "Task not found"},
		{"bad task status", task.ErrInvalidStatus, http.StatusBadRequest, "Status must be 'pending', 'in-progress', or 'completed'"},
		{"deadline in the past", task.ErrDeadlinePassed, http.StatusBadRequest, "Deadline must be in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleAndDecode(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestHandleError_WrappedSentinel(t *testing.T) {
	status, body := handleAndDecode(t, errors.Join(errors.New("lookup failed"), employee.ErrEmployeeNotFound))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Employee not found", body.Message)
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{{Field: "email", Message: "Invalid email format"}}

	status, body := handleAndDecode(t, errs)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "email: Invalid email format", body.Message)
}

func TestHandleError_UnknownErrorUsesFallback(t *testing.T) {
	status, body := handleAndDecode(t, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Something went wrong", body.Message)
	assert.Equal(t, "connection reset", body.Error)
}
