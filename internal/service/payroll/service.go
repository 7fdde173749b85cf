package payroll

import (
	"context"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// standardMonthlyHours is the fixed 20-day x 8-hour payroll baseline.
var standardMonthlyHours = decimal.NewFromInt(160)

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(employeeRepo employee.EmployeeRepository) payroll.PayrollService {
	return &PayrollServiceImpl{employeeRepo: employeeRepo}
}

// RunPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	oldSalary := emp.Salary
	hoursWorked := emp.WorkedHours

	// Salary scales proportionally to hours worked against the monthly
	// baseline. No floor or ceiling: it can fall to zero or exceed the
	// previous salary when accrued hours pass 160.
	newSalary := oldSalary.Mul(decimal.NewFromFloat(hoursWorked)).Div(standardMonthlyHours)

	if err := s.employeeRepo.ApplyPayroll(ctx, req.EmployeeID, newSalary); err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.PayrollResponse{
		Employee:       emp.FullName(),
		HoursWorked:    hoursWorked,
		PreviousSalary: oldSalary.StringFixed(2),
		UpdatedSalary:  newSalary.StringFixed(2),
	}, nil
}
