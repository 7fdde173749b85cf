package auth

import (
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Email and phone number are required",
		})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "Email and phone number are required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// EmployeeProfile is the redacted employee view returned on login.
type EmployeeProfile struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	EmploymentType string `json:"employmentType"`
	JobTitle       string `json:"jobTitle"`
	Department     string `json:"department"`
}

type LoginResponse struct {
	RedirectTo  string          `json:"redirectTo"`
	AccessToken string          `json:"accessToken"`
	ExpiresAt   int64           `json:"expiresAt"`
	Employee    EmployeeProfile `json:"employee"`
}
