package review

import (
	"context"

	"localfix/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	GetVisibleByProvider(ctx context.Context, providerID string) ([]domain.Review, error)
	Delete(ctx context.Context, id string) error
}

type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
}
