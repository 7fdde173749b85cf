package overtime

import (
	"context"
	"testing"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/overtime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOvertimeRepo struct {
	overtime.OvertimeRequestRepository
	create       func(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error)
	getByID      func(ctx context.Context, id string) (overtime.OvertimeRequest, error)
	updateStatus func(ctx context.Context, id string, status overtime.Status) (overtime.OvertimeRequest, error)
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	return f.create(ctx, request)
}

func (f *fakeOvertimeRepo) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	return f.getByID(ctx, id)
}

func (f *fakeOvertimeRepo) UpdateStatus(ctx context.Context, id string, status overtime.Status) (overtime.OvertimeRequest, error) {
	return f.updateStatus(ctx, id, status)
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	getByID                func(ctx context.Context, id string) (employee.Employee, error)
	adjustOvertimeApproved func(ctx context.Context, id string, deltaHours float64) error
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.getByID(ctx, id)
}

func (f *fakeEmployeeRepo) AdjustOvertimeApproved(ctx context.Context, id string, deltaHours float64) error {
	return f.adjustOvertimeApproved(ctx, id, deltaHours)
}

func validSubmitRequest() overtime.SubmitOvertimeRequest {
	return overtime.SubmitOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-09-04",
		Hours:      3.5,
		StartTime:  "18:00",
		EndTime:    "21:30",
		Reason:     "Release preparation",
	}
}

func TestSubmit_StampsEmployeeName(t *testing.T) {
	var created overtime.OvertimeRequest
	overtimeRepo := &fakeOvertimeRepo{
		create: func(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
			created = request
			request.ID = "ot-1"
			request.Status = overtime.StatusPending
			return request, nil
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		getByID: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{ID: id, FirstName: "Grace", LastName: "Hopper"}, nil
		},
	}
	svc := NewOvertimeService(overtimeRepo, employeeRepo)

	resp, err := svc.Submit(context.Background(), validSubmitRequest())
	require.NoError(t, err)

	assert.Equal(t, "Grace Hopper", created.EmployeeName)
	assert.Equal(t, "ot-1", resp.ID)
	assert.Equal(t, 3.5, resp.Hours)
	assert.Equal(t, "2026-09-04", resp.Date)
}

func TestSubmit_HoursOutOfRange(t *testing.T) {
	svc := NewOvertimeService(&fakeOvertimeRepo{}, &fakeEmployeeRepo{})

	req := validSubmitRequest()
	req.Hours = 13

	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hours must be between 0.5 and 12")
}

func TestSubmit_BadClockTime(t *testing.T) {
	svc := NewOvertimeService(&fakeOvertimeRepo{}, &fakeEmployeeRepo{})

	req := validSubmitRequest()
	req.EndTime = "25:00"

	_, err := svc.Submit(context.Background(), req)
	assert.Error(t, err)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewOvertimeService(&fakeOvertimeRepo{}, &fakeEmployeeRepo{})

	_, err := svc.UpdateStatus(context.Background(), overtime.UpdateOvertimeStatusRequest{ID: "ot-1", Status: "done"})
	assert.ErrorIs(t, err, overtime.ErrInvalidStatus)
}

func statusTransitionFixture(prev overtime.Status, hours float64, delta *float64) (*fakeOvertimeRepo, *fakeEmployeeRepo) {
	existing := overtime.OvertimeRequest{
		ID:         "ot-1",
		EmployeeID: "emp-1",
		Hours:      hours,
		Status:     prev,
	}
	overtimeRepo := &fakeOvertimeRepo{
		getByID: func(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
			return existing, nil
		},
		updateStatus: func(ctx context.Context, id string, status overtime.Status) (overtime.OvertimeRequest, error) {
			updated := existing
			updated.Status = status
			return updated, nil
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		adjustOvertimeApproved: func(ctx context.Context, id string, deltaHours float64) error {
			*delta += deltaHours
			return nil
		},
	}
	return overtimeRepo, employeeRepo
}

func TestUpdateStatus_ApprovalAddsHours(t *testing.T) {
	var delta float64
	overtimeRepo, employeeRepo := statusTransitionFixture(overtime.StatusPending, 3.5, &delta)
	svc := NewOvertimeService(overtimeRepo, employeeRepo)

	resp, err := svc.UpdateStatus(context.Background(), overtime.UpdateOvertimeStatusRequest{ID: "ot-1", Status: "approved"})
	require.NoError(t, err)

	assert.Equal(t, 3.5, delta)
	assert.Equal(t, "approved", resp.Status)
}

func TestUpdateStatus_RevokingApprovalSubtractsHours(t *testing.T) {
	var delta float64
	overtimeRepo, employeeRepo := statusTransitionFixture(overtime.StatusApproved, 3.5, &delta)
	svc := NewOvertimeService(overtimeRepo, employeeRepo)

	_, err := svc.UpdateStatus(context.Background(), overtime.UpdateOvertimeStatusRequest{ID: "ot-1", Status: "pending"})
	require.NoError(t, err)

	assert.Equal(t, -3.5, delta)
}

func TestUpdateStatus_ReapprovingDoesNotDoubleCount(t *testing.T) {
	var delta float64
	overtimeRepo, employeeRepo := statusTransitionFixture(overtime.StatusApproved, 3.5, &delta)
	svc := NewOvertimeService(overtimeRepo, employeeRepo)

	_, err := svc.UpdateStatus(context.Background(), overtime.UpdateOvertimeStatusRequest{ID: "ot-1", Status: "approved"})
	require.NoError(t, err)

	assert.Equal(t, float64(0), delta)
}

func TestUpdateStatus_RequestNotFound(t *testing.T) {
	overtimeRepo := &fakeOvertimeRepo{
		getByID: func(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
			return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
		},
	}
	svc := NewOvertimeService(overtimeRepo, &fakeEmployeeRepo{})

	_, err := svc.UpdateStatus(context.Background(), overtime.UpdateOvertimeStatusRequest{ID: "missing", Status: "approved"})
	assert.ErrorIs(t, err, overtime.ErrOvertimeRequestNotFound)
}
