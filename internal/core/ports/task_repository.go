package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// TaskFilter scopes a listing. An empty OwnerID means no owner filter
// (admin unscoped view).
type TaskFilter struct {
	OwnerID string
}

// TaskUpdate holds the persisted fields of a partial update. Nil means
// "leave unchanged".
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	// FindByID returns domain.ErrTaskNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)
	Update(ctx context.Context, id string, update TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
