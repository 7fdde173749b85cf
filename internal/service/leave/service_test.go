package leave

import (
	"context"
	"testing"
	"time"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLeaveRepo struct {
	leave.LeaveRequestRepository
	create       func(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error)
	getByID      func(ctx context.Context, id string) (leave.LeaveRequest, error)
	list         func(ctx context.Context, filter leave.ListLeaveFilter) ([]leave.LeaveRequest, error)
	updateStatus func(ctx context.Context, id string, status leave.Status) (leave.LeaveRequest, error)
}

func (f *fakeLeaveRepo) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	return f.create(ctx, request)
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return f.getByID(ctx, id)
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.ListLeaveFilter) ([]leave.LeaveRequest, error) {
	return f.list(ctx, filter)
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	return f.updateStatus(ctx, id, status)
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	getByID               func(ctx context.Context, id string) (employee.Employee, error)
	adjustTotalLeaveTaken func(ctx context.Context, id string, deltaDays int) error
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.getByID(ctx, id)
}

func (f *fakeEmployeeRepo) AdjustTotalLeaveTaken(ctx context.Context, id string, deltaDays int) error {
	return f.adjustTotalLeaveTaken(ctx, id, deltaDays)
}

func validSubmitRequest() leave.SubmitLeaveRequest {
	return leave.SubmitLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  string(leave.LeaveTypeVacation),
		StartDate:  "2026-09-07",
		EndDate:    "2026-09-11",
		Duration:   5,
		Reason:     "Family trip",
	}
}

func TestSubmit_StampsEmployeeName(t *testing.T) {
	var created leave.LeaveRequest
	leaveRepo := &fakeLeaveRepo{
		create: func(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
			created = request
			request.ID = "lr-1"
			request.Status = leave.StatusPending
			return request, nil
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		getByID: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{ID: id, FirstName: "Ada", LastName: "Lovelace"}, nil
		},
	}
	svc := NewLeaveService(leaveRepo, employeeRepo)

	resp, err := svc.Submit(context.Background(), validSubmitRequest())
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", created.EmployeeName)
	assert.Equal(t, "lr-1", resp.ID)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, "2026-09-07", resp.StartDate)
}

func TestSubmit_UnknownEmployee(t *testing.T) {
	employeeRepo := &fakeEmployeeRepo{
		getByID: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		},
	}
	svc := NewLeaveService(&fakeLeaveRepo{}, employeeRepo)

	_, err := svc.Submit(context.Background(), validSubmitRequest())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSubmit_EndDateNotAfterStartDate(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{}, &fakeEmployeeRepo{})

	req := validSubmitRequest()
	req.EndDate = req.StartDate

	_, err := svc.Submit(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "End date must be after start date")
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{}, &fakeEmployeeRepo{})

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{ID: "lr-1", Status: "cancelled"})
	assert.ErrorIs(t, err, leave.ErrInvalidStatus)
}

func statusTransitionFixture(prev leave.Status, duration int, delta *int) (*fakeLeaveRepo, *fakeEmployeeRepo) {
	existing := leave.LeaveRequest{
		ID:         "lr-1",
		EmployeeID: "emp-1",
		Duration:   duration,
		Status:     prev,
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 0, duration),
	}
	leaveRepo := &fakeLeaveRepo{
		getByID: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return existing, nil
		},
		updateStatus: func(ctx context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
			updated := existing
			updated.Status = status
			return updated, nil
		},
	}
	employeeRepo := &fakeEmployeeRepo{
		adjustTotalLeaveTaken: func(ctx context.Context, id string, deltaDays int) error {
			*delta += deltaDays
			return nil
		},
	}
	return leaveRepo, employeeRepo
}

func TestUpdateStatus_ApprovalAddsLeaveDays(t *testing.T) {
	var delta int
	leaveRepo, employeeRepo := statusTransitionFixture(leave.StatusPending, 5, &delta)
	svc := NewLeaveService(leaveRepo, employeeRepo)

	resp, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{ID: "lr-1", Status: "approved"})
	require.NoError(t, err)

	assert.Equal(t, 5, delta)
	assert.Equal(t, "approved", resp.Status)
}

func TestUpdateStatus_RevokingApprovalSubtractsLeaveDays(t *testing.T) {
	var delta int
	leaveRepo, employeeRepo := statusTransitionFixture(leave.StatusApproved, 5, &delta)
	svc := NewLeaveService(leaveRepo, employeeRepo)

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{ID: "lr-1", Status: "rejected"})
	require.NoError(t, err)

	assert.Equal(t, -5, delta)
}

func TestUpdateStatus_ReapprovingDoesNotDoubleCount(t *testing.T) {
	var delta int
	leaveRepo, employeeRepo := statusTransitionFixture(leave.StatusApproved, 5, &delta)
	svc := NewLeaveService(leaveRepo, employeeRepo)

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{ID: "lr-1", Status: "approved"})
	require.NoError(t, err)

	assert.Equal(t, 0, delta)
}

func TestUpdateStatus_PendingToRejectedLeavesAccumulatorAlone(t *testing.T) {
	var delta int
	leaveRepo, employeeRepo := statusTransitionFixture(leave.StatusPending, 5, &delta)
	svc := NewLeaveService(leaveRepo, employeeRepo)

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{ID: "lr-1", Status: "rejected"})
	require.NoError(t, err)

	assert.Equal(t, 0, delta)
}

func TestUpdateStatus_RequestNotFound(t *testing.T) {
	leaveRepo := &fakeLeaveRepo{
		getByID: func(ctx context.Context, id string) (leave.LeaveRequest, error) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		},
	}
	svc := NewLeaveService(leaveRepo, &fakeEmployeeRepo{})

	_, err := svc.UpdateStatus(context.Background(), leave.UpdateLeaveStatusRequest{ID: "missing", Status: "approved"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
