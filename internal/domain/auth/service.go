package auth

import "context"

// AuthService matches email+phone against an employee record and resolves
// the role-based dashboard redirect.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
