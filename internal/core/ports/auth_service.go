package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// RegisterInput carries the validated registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string // defaults to "user" when empty
}

// AuthService implements account registration and login.
type AuthService interface {
	// Register creates a new account and returns it with a freshly issued token.
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	// Login verifies credentials and returns the user with a freshly issued token.
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}
