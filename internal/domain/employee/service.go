package employee

import "context"

// EmployeeService defines business logic for the employee directory.
type EmployeeService interface {
	// Create adds a new employee, enforcing email uniqueness
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// List retrieves all employees, newest first
	List(ctx context.Context) ([]EmployeeResponse, error)

	// GetByID retrieves a single employee
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)

	// GetReport retrieves only the stored narrative report
	GetReport(ctx context.Context, id string) (string, error)

	// UpdatePerformanceScore sets the performance score (integer, 0-100)
	UpdatePerformanceScore(ctx context.Context, req UpdatePerformanceScoreRequest) (PerformanceScoreResponse, error)

	// UpdateShift sets the shift (day/night)
	UpdateShift(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)
}
