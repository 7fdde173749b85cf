package payroll

import (
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/validator"
)

type RunPayrollRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollResponse struct {
	Employee       string  `json:"employee"`
	HoursWorked    float64 `json:"hoursWorked"`
	PreviousSalary string  `json:"previousSalary"`
	UpdatedSalary  string  `json:"updatedSalary"`
}
