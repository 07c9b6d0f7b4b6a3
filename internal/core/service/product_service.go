package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// ProductService implements the public catalog. Role enforcement for
// mutation happens at the middleware gate, not here.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
