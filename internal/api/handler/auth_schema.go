package handler

import "github.com/taskforge/task-api/internal/core/domain"

// registerRequest is the declarative schema for POST /auth/register.
type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=3,max=30"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,oneof=user admin"`
}

// ApplyDefaults assigns the default role when the payload omitted it.
func (r *registerRequest) ApplyDefaults() {
	if r.Role == "" {
		r.Role = domain.RoleUser
	}
}

// loginRequest is the declarative schema for POST /auth/login.
type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccountEmail lets the login rate limiter key on the target account.
func (r *loginRequest) AccountEmail() string { return r.Email }

// RegisterPayload and LoginPayload produce fresh schema values for the
// validation middleware; the route table owns which schema guards which
// endpoint.
func RegisterPayload() any { return new(registerRequest) }
func LoginPayload() any    { return new(loginRequest) }

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}
