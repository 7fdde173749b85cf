package payroll

import "context"

// PayrollService recomputes monthly salary from accrued worked hours.
type PayrollService interface {
	// RunPayroll scales the salary by workedHours/160, overwrites it and
	// resets the worked-hours accumulator.
	RunPayroll(ctx context.Context, req RunPayrollRequest) (PayrollResponse, error)
}
