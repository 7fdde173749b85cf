package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/auth"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/domain/employee"
	"github.com/peopleops-hq/hr-admin-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService. A missing employee is reported as
// invalid credentials so the response does not reveal which field failed.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)

	emp, err := s.employeeRepo.GetByEmailAndPhone(ctx, email, phone)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.EmploymentType)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		RedirectTo:  redirectFor(emp.EmploymentType),
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Employee: auth.EmployeeProfile{
			ID:             emp.ID,
			FirstName:      emp.FirstName,
			LastName:       emp.LastName,
			Email:          emp.Email,
			Phone:          emp.Phone,
			EmploymentType: string(emp.EmploymentType),
			JobTitle:       emp.JobTitle,
			Department:     emp.Department,
		},
	}, nil
}

func redirectFor(role employee.EmploymentType) string {
	switch role {
	case employee.EmploymentTypeAdmin:
		return "/adminDashboard"
	case employee.EmploymentTypeManager:
		return "/managerDashboard"
	default:
		return "/employeeDashboard"
	}
}
