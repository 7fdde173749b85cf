package employee

import (
	"context"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	newEmployee := req.ToEntity()

	exists, err := s.employeeRepo.ExistsByEmail(ctx, newEmployee.Email)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// GetReport implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetReport(ctx context.Context, id string) (string, error) {
	return s.employeeRepo.GetReport(ctx, id)
}

// UpdatePerformanceScore implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdatePerformanceScore(ctx context.Context, req employee.UpdatePerformanceScoreRequest) (employee.PerformanceScoreResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.PerformanceScoreResponse{}, err
	}

	updated, err := s.employeeRepo.UpdatePerformanceScore(ctx, req.EmployeeID, req.PerformanceScore)
	if err != nil {
		return employee.PerformanceScoreResponse{}, err
	}

	return employee.PerformanceScoreResponse{
		Employee:         updated.FullName(),
		PerformanceScore: updated.PerformanceScore,
	}, nil
}

// UpdateShift implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateShift(ctx context.Context, req employee.UpdateShiftRequest) (employee.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ShiftResponse{}, err
	}

	updated, err := s.employeeRepo.UpdateShift(ctx, req.EmployeeID, employee.Shift(req.Shift))
	if err != nil {
		return employee.ShiftResponse{}, err
	}

	return employee.ShiftResponse{
		Employee: updated.FullName(),
		Shift:    string(updated.Shift),
	}, nil
}
