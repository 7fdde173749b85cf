package leave

import (
	"context"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/leave"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRequestRepo leave.LeaveRequestRepository
	employeeRepo     employee.EmployeeRepository
}

func NewLeaveService(
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRequestRepo: leaveRequestRepo,
		employeeRepo:     employeeRepo,
	}
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	created, err := s.leaveRequestRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		LeaveType:    leave.LeaveType(req.LeaveType),
		StartDate:    startDate,
		EndDate:      endDate,
		Duration:     req.Duration,
		Reason:       req.Reason,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListLeaveFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRequestRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return leave.ToResponseList(requests), nil
}

// UpdateStatus implements leave.LeaveService.
//
// The status write and the accumulator adjustment are two sequential
// operations; a failure between them leaves the request and the employee
// record inconsistent.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateLeaveStatusRequest) (leave.LeaveRequestResponse, error) {
	if !validator.IsInSlice(req.Status, leave.Statuses()) {
		return leave.LeaveRequestResponse{}, leave.ErrInvalidStatus
	}
	newStatus := leave.Status(req.Status)

	existing, err := s.leaveRequestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	previousStatus := existing.Status

	updated, err := s.leaveRequestRepo.UpdateStatus(ctx, req.ID, newStatus)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	switch {
	case newStatus == leave.StatusApproved && previousStatus != leave.StatusApproved:
		err = s.employeeRepo.AdjustTotalLeaveTaken(ctx, existing.EmployeeID, existing.Duration)
	case previousStatus == leave.StatusApproved && newStatus != leave.StatusApproved:
		err = s.employeeRepo.AdjustTotalLeaveTaken(ctx, existing.EmployeeID, -existing.Duration)
	}
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(updated), nil
}
