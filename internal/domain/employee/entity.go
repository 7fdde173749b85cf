package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth time.Time
	Address     Address

	JobTitle       string
	Department     string
	Salary         decimal.Decimal
	EmploymentType EmploymentType
	Shift          Shift
	StartDate      time.Time

	// Accrual state. WorkedHours and OvertimeApproved accrue fractionally;
	// TotalLeaveTaken counts whole days.
	WorkedHours      float64
	PerformanceScore int
	TotalLeaveTaken  int
	OvertimeApproved float64
	LastCheckIn      *time.Time
	Report           string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

type EmploymentType string

const (
	EmploymentTypeGeneral EmploymentType = "general_employee"
	EmploymentTypeManager EmploymentType = "Manager"
	EmploymentTypeAdmin   EmploymentType = "Admin"
)

type Shift string

const (
	ShiftDay   Shift = "day"
	ShiftNight Shift = "night"
)
