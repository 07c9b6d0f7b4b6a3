package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// CreateProductInput carries the validated payload for product creation.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
}

// ProductService defines catalog operations. Listing is public; create and
// delete are reachable only through the admin gate.
type ProductService interface {
	List(ctx context.Context) ([]*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
