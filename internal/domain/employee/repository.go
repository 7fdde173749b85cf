package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create inserts a new employee record
	Create(ctx context.Context, newEmployee Employee) (Employee, error)

	// GetAll retrieves every employee, newest first
	GetAll(ctx context.Context) ([]Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmailAndPhone retrieves the employee matching both credentials
	GetByEmailAndPhone(ctx context.Context, email, phone string) (Employee, error)

	// ExistsByEmail reports whether an employee with the email already exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// UpdateLastCheckIn overwrites the open check-in marker (nil clears it)
	UpdateLastCheckIn(ctx context.Context, id string, checkIn *time.Time) error

	// ApplyCheckOut stores the new worked-hours total and clears the marker
	ApplyCheckOut(ctx context.Context, id string, workedHours float64) error

	// ApplyPayroll overwrites the salary and resets worked hours to zero
	ApplyPayroll(ctx context.Context, id string, salary decimal.Decimal) error

	// UpdatePerformanceScore overwrites the performance score
	UpdatePerformanceScore(ctx context.Context, id string, score int) (Employee, error)

	// UpdateShift overwrites the shift
	UpdateShift(ctx context.Context, id string, shift Shift) (Employee, error)

	// AdjustTotalLeaveTaken increments (or decrements) the leave-days accumulator
	AdjustTotalLeaveTaken(ctx context.Context, id string, deltaDays int) error

	// AdjustOvertimeApproved increments (or decrements) the overtime-hours accumulator
	AdjustOvertimeApproved(ctx context.Context, id string, deltaHours float64) error

	// UpdateReport overwrites the stored narrative report
	UpdateReport(ctx context.Context, id string, report string) error

	// GetReport retrieves only the stored narrative report
	GetReport(ctx context.Context, id string) (string, error)
}
