package provider

import (
	"context"

	"localfix/internal/domain"
	"localfix/internal/repository"
)

type ProviderRepository interface {
	Create(ctx context.Context, p *domain.Provider) error
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Provider, error)
	List(ctx context.Context, f repository.ProviderFilters) ([]domain.Provider, error)
	Update(ctx context.Context, p *domain.Provider) error
	UpdateApproval(ctx context.Context, id string, approved bool) (*domain.Provider, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.UserRole) error
}

type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ServiceCategory, error)
	GetByName(ctx context.Context, name string) (*domain.ServiceCategory, error)
}

type ReviewLister interface {
	GetVisibleByProvider(ctx context.Context, providerID string) ([]domain.Review, error)
}
