package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

const uniqueViolationCode = "23505"

const employeeColumns = `id, first_name, last_name, email, phone, date_of_birth,
		address_street, address_city, address_state, address_zip_code,
		job_title, department, salary, employment_type, shift, start_date,
		worked_hours, performance_score, total_leave_taken, overtime_approved,
		last_check_in, report, created_at, updated_at`

type employeeRepositoryImpl struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone, &emp.DateOfBirth,
		&emp.Address.Street, &emp.Address.City, &emp.Address.State, &emp.Address.ZipCode,
		&emp.JobTitle, &emp.Department, &emp.Salary, &emp.EmploymentType, &emp.Shift, &emp.StartDate,
		&emp.WorkedHours, &emp.PerformanceScore, &emp.TotalLeaveTaken, &emp.OvertimeApproved,
		&emp.LastCheckIn, &emp.Report, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// translateEmployeePgError maps constraint violations to domain errors.
func translateEmployeePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return employee.ErrEmailExists
	}
	return err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (
			id, first_name, last_name, email, phone, date_of_birth,
			address_street, address_city, address_state, address_zip_code,
			job_title, department, salary, employment_type, shift, start_date, report
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(e.db.QueryRow(ctx, query,
		uuid.NewString(), newEmployee.FirstName, newEmployee.LastName, newEmployee.Email,
		newEmployee.Phone, newEmployee.DateOfBirth,
		newEmployee.Address.Street, newEmployee.Address.City, newEmployee.Address.State, newEmployee.Address.ZipCode,
		newEmployee.JobTitle, newEmployee.Department, newEmployee.Salary,
		newEmployee.EmploymentType, newEmployee.Shift, newEmployee.StartDate, newEmployee.Report,
	))
	if err != nil {
		return employee.Employee{}, translateEmployeePgError(err)
	}
	return created, nil
}

// GetAll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetAll(ctx context.Context) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`

	rows, err := e.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(e.db.QueryRow(ctx, query, id))
}

// GetByEmailAndPhone implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmailAndPhone(ctx context.Context, email, phone string) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1 AND phone = $2`
	return scanEmployee(e.db.QueryRow(ctx, query, email, phone))
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`

	var exists bool
	if err := e.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateLastCheckIn implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateLastCheckIn(ctx context.Context, id string, checkIn *time.Time) error {
	query := `UPDATE employees SET last_check_in = $1, updated_at = NOW() WHERE id = $2`
	return e.execExpectingRow(ctx, query, checkIn, id)
}

// ApplyCheckOut implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ApplyCheckOut(ctx context.Context, id string, workedHours float64) error {
	query := `UPDATE employees SET worked_hours = $1, last_check_in = NULL, updated_at = NOW() WHERE id = $2`
	return e.execExpectingRow(ctx, query, workedHours, id)
}

// ApplyPayroll implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ApplyPayroll(ctx context.Context, id string, salary decimal.Decimal) error {
	query := `UPDATE employees SET salary = $1, worked_hours = 0, updated_at = NOW() WHERE id = $2`
	return e.execExpectingRow(ctx, query, salary, id)
}

// UpdatePerformanceScore implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdatePerformanceScore(ctx context.Context, id string, score int) (employee.Employee, error) {
	query := `
		UPDATE employees
		SET performance_score = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + employeeColumns
	return scanEmployee(e.db.QueryRow(ctx, query, score, id))
}

// UpdateShift implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateShift(ctx context.Context, id string, shift employee.Shift) (employee.Employee, error) {
	query := `
		UPDATE employees
		SET shift = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + employeeColumns
	return scanEmployee(e.db.QueryRow(ctx, query, shift, id))
}

// AdjustTotalLeaveTaken implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) AdjustTotalLeaveTaken(ctx context.Context, id string, deltaDays int) error {
	query := `UPDATE employees SET total_leave_taken = total_leave_taken + $1, updated_at = NOW() WHERE id = $2`
	return e.execExpectingRow(ctx, query, deltaDays, id)
}

// AdjustOvertimeApproved implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) AdjustOvertimeApproved(ctx context.Context, id string, deltaHours float64) error {
	query := `UPDATE employees SET overtime_approved = overtime_approved + $1, updated_at = NOW() WHERE id = $2`
	return e.execExpectingRow(ctx, query, deltaHours, id)
}

// UpdateReport implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateReport(ctx context.Context, id string, report string) error {
	query := `UPDATE employees SET report = $1, updated_at = NOW() WHERE id = $2`
	return e.execExpectingRow(ctx, query, report, id)
}

// GetReport implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetReport(ctx context.Context, id string) (string, error) {
	query := `SELECT report FROM employees WHERE id = $1`

	var report string
	if err := e.db.QueryRow(ctx, query, id).Scan(&report); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", employee.ErrEmployeeNotFound
		}
		return "", err
	}
	return report, nil
}

func (e *employeeRepositoryImpl) execExpectingRow(ctx context.Context, query string, args ...interface{}) error {
	tag, err := e.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
