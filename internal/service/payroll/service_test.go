package payroll

import (
	"context"
	"testing"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	getByID      func(ctx context.Context, id string) (employee.Employee, error)
	applyPayroll func(ctx context.Context, id string, salary decimal.Decimal) error
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return f.getByID(ctx, id)
}

func (f *fakeEmployeeRepo) ApplyPayroll(ctx context.Context, id string, salary decimal.Decimal) error {
	return f.applyPayroll(ctx, id, salary)
}

func newRepo(emp employee.Employee, stored *decimal.Decimal) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		getByID: func(ctx context.Context, id string) (employee.Employee, error) {
			return emp, nil
		},
		applyPayroll: func(ctx context.Context, id string, salary decimal.Decimal) error {
			*stored = salary
			return nil
		},
	}
}

func TestRunPayroll_FullBaselineLeavesSalaryUnchanged(t *testing.T) {
	var stored decimal.Decimal
	emp := employee.Employee{
		ID:          "emp-1",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Salary:      decimal.NewFromInt(5000),
		WorkedHours: 160,
	}
	svc := NewPayrollService(newRepo(emp, &stored))

	resp, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.Equal(t, "5000.00", resp.PreviousSalary)
	assert.Equal(t, "5000.00", resp.UpdatedSalary)
	assert.Equal(t, float64(160), resp.HoursWorked)
	assert.True(t, stored.Equal(decimal.NewFromInt(5000)))
}

func TestRunPayroll_HalfHoursHalvesSalary(t *testing.T) {
	var stored decimal.Decimal
	emp := employee.Employee{
		ID:          "emp-1",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Salary:      decimal.NewFromInt(5000),
		WorkedHours: 80,
	}
	svc := NewPayrollService(newRepo(emp, &stored))

	resp, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.Equal(t, "2500.00", resp.UpdatedSalary)
	assert.True(t, stored.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, "Ada Lovelace", resp.Employee)
}

func TestRunPayroll_ZeroHoursZeroesSalary(t *testing.T) {
	var stored decimal.Decimal
	emp := employee.Employee{
		ID:          "emp-1",
		Salary:      decimal.NewFromInt(5000),
		WorkedHours: 0,
	}
	svc := NewPayrollService(newRepo(emp, &stored))

	resp, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.Equal(t, "0.00", resp.UpdatedSalary)
	assert.True(t, stored.IsZero())
}

func TestRunPayroll_OvertimeRaisesSalary(t *testing.T) {
	var stored decimal.Decimal
	emp := employee.Employee{
		ID:          "emp-1",
		Salary:      decimal.NewFromInt(4000),
		WorkedHours: 200,
	}
	svc := NewPayrollService(newRepo(emp, &stored))

	resp, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.Equal(t, "5000.00", resp.UpdatedSalary)
}

func TestRunPayroll_EmployeeNotFound(t *testing.T) {
	repo := &fakeEmployeeRepo{
		getByID: func(ctx context.Context, id string) (employee.Employee, error) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		},
	}
	svc := NewPayrollService(repo)

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{EmployeeID: "missing"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRunPayroll_MissingEmployeeID(t *testing.T) {
	svc := NewPayrollService(&fakeEmployeeRepo{})

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{})
	assert.Error(t, err)
}
