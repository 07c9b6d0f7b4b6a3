package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// AuthRepository defines the persistence interface for user accounts.
type AuthRepository interface {
	// Create inserts the user and returns it with the assigned id.
	// Returns domain.ErrUserExists when the email is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
