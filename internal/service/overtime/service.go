package overtime

import (
	"context"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/overtime"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/validator"
)

type OvertimeServiceImpl struct {
	overtimeRequestRepo overtime.OvertimeRequestRepository
	employeeRepo        employee.EmployeeRepository
}

func NewOvertimeService(
	overtimeRequestRepo overtime.OvertimeRequestRepository,
	employeeRepo employee.EmployeeRepository,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		overtimeRequestRepo: overtimeRequestRepo,
		employeeRepo:        employeeRepo,
	}
}

// Submit implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) Submit(ctx context.Context, req overtime.SubmitOvertimeRequest) (overtime.OvertimeRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.overtimeRequestRepo.Create(ctx, overtime.OvertimeRequest{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		Date:         date,
		Hours:        req.Hours,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Reason:       req.Reason,
	})
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	return overtime.ToResponse(created), nil
}

// List implements overtime.OvertimeService.
func (s *OvertimeServiceImpl) List(ctx context.Context, filter overtime.ListOvertimeFilter) ([]overtime.OvertimeRequestResponse, error) {
	requests, err := s.overtimeRequestRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return overtime.ToResponseList(requests), nil
}

// UpdateStatus implements overtime.OvertimeService.
//
// Mirrors the leave approval flow: the status write and the accumulator
// adjustment are sequential, not atomic.
func (s *OvertimeServiceImpl) UpdateStatus(ctx context.Context, req overtime.UpdateOvertimeStatusRequest) (overtime.OvertimeRequestResponse, error) {
	if !validator.IsInSlice(req.Status, overtime.Statuses()) {
		return overtime.OvertimeRequestResponse{}, overtime.ErrInvalidStatus
	}
	newStatus := overtime.Status(req.Status)

	existing, err := s.overtimeRequestRepo.GetByID(ctx, req.ID)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}
	previousStatus := existing.Status

	updated, err := s.overtimeRequestRepo.UpdateStatus(ctx, req.ID, newStatus)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	switch {
	case newStatus == overtime.StatusApproved && previousStatus != overtime.StatusApproved:
		err = s.employeeRepo.AdjustOvertimeApproved(ctx, existing.EmployeeID, existing.Hours)
	case previousStatus == overtime.StatusApproved && newStatus != overtime.StatusApproved:
		err = s.employeeRepo.AdjustOvertimeApproved(ctx, existing.EmployeeID, -existing.Hours)
	}
	if err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	return overtime.ToResponse(updated), nil
}
