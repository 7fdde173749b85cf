package attendance

import (
	"time"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r *CheckInRequest) Validate() error {
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

type CheckOutRequest struct {
	EmployeeID string `json:"employeeId"`
}

func (r *CheckOutRequest) Validate() error {
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

type CheckInResponse struct {
	CheckInTime time.Time `json:"checkInTime"`
}

type CheckOutResponse struct {
	// HoursWorked is the session total rendered with two decimals, matching
	// the API's historical wire format.
	HoursWorked      string  `json:"hoursWorked"`
	TotalWorkedHours float64 `json:"totalWorkedHours"`
}
