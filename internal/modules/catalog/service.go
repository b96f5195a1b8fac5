package catalog

import (
	"context"

	"localfix/internal/domain"
)

// CategoryRepository is the read side of the seeded category directory.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.ServiceCategory, error)
}

type Service struct {
	categories CategoryRepository
}

func NewService(categories CategoryRepository) *Service {
	return &Service{categories: categories}
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	return s.categories.List(ctx)
}
