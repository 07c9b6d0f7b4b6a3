package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// ActivityRepository persists and reads the task activity trail.
type ActivityRepository interface {
	Insert(ctx context.Context, a *domain.Activity) error
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.Activity, error)
}
