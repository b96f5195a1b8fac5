package booking

import (
	"context"

	"localfix/internal/domain"
	"localfix/internal/repository"
)

// BookingRepository defines the ledger operations this module needs
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
}

type ProviderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Provider, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Provider, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
