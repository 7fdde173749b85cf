package employee

import (
	"strings"
	"time"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName      string         `json:"firstName"`
	LastName       string         `json:"lastName"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	DateOfBirth    string         `json:"dateOfBirth"`
	Address        AddressRequest `json:"address"`
	JobTitle       string         `json:"jobTitle"`
	Department     string         `json:"department"`
	Salary         float64        `json:"salary"`
	EmploymentType string         `json:"employmentType"`
	Shift          string         `json:"shift"`
	StartDate      string         `json:"startDate"`
}

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "firstName is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "lastName is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone is required"})
	}
	if validator.IsEmpty(r.DateOfBirth) {
		errs = append(errs, validator.ValidationError{Field: "dateOfBirth", Message: "dateOfBirth is required"})
	} else if _, ok := validator.IsValidDate(r.DateOfBirth); !ok {
		errs = append(errs, validator.ValidationError{Field: "dateOfBirth", Message: "dateOfBirth must be in YYYY-MM-DD format"})
	}
	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{Field: "jobTitle", Message: "jobTitle is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if r.Salary < 0 {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must be greater than or equal to 0"})
	}
	if r.EmploymentType != "" && !validator.IsInSlice(r.EmploymentType, []string{
		string(EmploymentTypeGeneral), string(EmploymentTypeManager), string(EmploymentTypeAdmin),
	}) {
		errs = append(errs, validator.ValidationError{Field: "employmentType", Message: "employmentType must be 'general_employee', 'Manager', or 'Admin'"})
	}
	if r.Shift != "" && !validator.IsInSlice(r.Shift, []string{string(ShiftDay), string(ShiftNight)}) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "shift must be either 'day' or 'night'"})
	}
	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToEntity builds a new employee with the model defaults applied. Validate
// must have passed first.
func (r *CreateEmployeeRequest) ToEntity() Employee {
	dob, _ := validator.IsValidDate(r.DateOfBirth)

	startDate := time.Now()
	if r.StartDate != "" {
		startDate, _ = validator.IsValidDate(r.StartDate)
	}

	employmentType := EmploymentTypeGeneral
	if r.EmploymentType != "" {
		employmentType = EmploymentType(r.EmploymentType)
	}

	shift := ShiftDay
	if r.Shift != "" {
		shift = Shift(r.Shift)
	}

	return Employee{
		FirstName:   strings.TrimSpace(r.FirstName),
		LastName:    strings.TrimSpace(r.LastName),
		Email:       strings.ToLower(strings.TrimSpace(r.Email)),
		Phone:       strings.TrimSpace(r.Phone),
		DateOfBirth: dob,
		Address: Address{
			Street:  r.Address.Street,
			City:    r.Address.City,
			State:   r.Address.State,
			ZipCode: r.Address.ZipCode,
		},
		JobTitle:       strings.TrimSpace(r.JobTitle),
		Department:     strings.TrimSpace(r.Department),
		Salary:         decimal.NewFromFloat(r.Salary),
		EmploymentType: employmentType,
		Shift:          shift,
		StartDate:      startDate,
		Report:         DefaultReport,
	}
}

// DefaultReport is the narrative stored on an employee before the first
// report generation run.
const DefaultReport = "Good"

type UpdatePerformanceScoreRequest struct {
	EmployeeID       string `json:"employeeId"`
	PerformanceScore int    `json:"performanceScore"`
}

func (r *UpdatePerformanceScoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if r.PerformanceScore < 0 || r.PerformanceScore > 100 {
		errs = append(errs, validator.ValidationError{Field: "performanceScore", Message: "Performance score must be an integer between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	EmployeeID string `json:"employeeId"`
	Shift      string `json:"shift"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if !validator.IsInSlice(r.Shift, []string{string(ShiftDay), string(ShiftNight)}) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "Shift must be either 'day' or 'night'"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID               string          `json:"id"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	DateOfBirth      string          `json:"dateOfBirth"`
	Address          AddressRequest  `json:"address"`
	JobTitle         string          `json:"jobTitle"`
	Department       string          `json:"department"`
	Salary           decimal.Decimal `json:"salary"`
	EmploymentType   string          `json:"employmentType"`
	Shift            string          `json:"shift"`
	StartDate        string          `json:"startDate"`
	WorkedHours      float64         `json:"workedHours"`
	PerformanceScore int             `json:"performanceScore"`
	TotalLeaveTaken  int             `json:"totalLeaveTaken"`
	OvertimeApproved float64         `json:"overtimeApproved"`
	LastCheckIn      *time.Time      `json:"lastCheckIn"`
	Report           string          `json:"report"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Email:       e.Email,
		Phone:       e.Phone,
		DateOfBirth: e.DateOfBirth.Format("2006-01-02"),
		Address: AddressRequest{
			Street:  e.Address.Street,
			City:    e.Address.City,
			State:   e.Address.State,
			ZipCode: e.Address.ZipCode,
		},
		JobTitle:         e.JobTitle,
		Department:       e.Department,
		Salary:           e.Salary,
		EmploymentType:   string(e.EmploymentType),
		Shift:            string(e.Shift),
		StartDate:        e.StartDate.Format("2006-01-02"),
		WorkedHours:      e.WorkedHours,
		PerformanceScore: e.PerformanceScore,
		TotalLeaveTaken:  e.TotalLeaveTaken,
		OvertimeApproved: e.OvertimeApproved,
		LastCheckIn:      e.LastCheckIn,
		Report:           e.Report,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

type PerformanceScoreResponse struct {
	Employee         string `json:"employee"`
	PerformanceScore int    `json:"performanceScore"`
}

type ShiftResponse struct {
	Employee string `json:"employee"`
	Shift    string `json:"shift"`
}
