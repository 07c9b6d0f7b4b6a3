package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// CreateTaskInput carries the validated payload for task creation.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus // defaults to pending when empty
}

// UpdateTaskInput carries the fields present in an update payload. Nil
// pointers mean "field absent"; the validation layer guarantees at least
// one field is set.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// ListTasksInput carries the parameters for the list endpoint. All requests
// the unscoped view; it is honored only for admin principals.
type ListTasksInput struct {
	All bool
}

// TaskService defines use-case operations for tasks. Every operation
// receives the acting principal; update and delete apply the ownership
// guard after fetching the target.
type TaskService interface {
	List(ctx context.Context, p domain.Principal, in ListTasksInput) ([]*domain.Task, error)
	Create(ctx context.Context, p domain.Principal, in CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, p domain.Principal, id string, in UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}
