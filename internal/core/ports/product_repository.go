package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	// Delete returns domain.ErrProductNotFound for unknown or malformed ids.
	Delete(ctx context.Context, id string) error
}
