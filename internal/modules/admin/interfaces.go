package admin

import (
	"context"

	"localfix/internal/domain"
	"localfix/internal/modules/booking"
	"localfix/internal/modules/provider"
	"localfix/internal/repository"
)

type UserLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

type ProviderDirectory interface {
	List(ctx context.Context, f repository.ProviderFilters) ([]provider.ProviderDetails, error)
	Approve(ctx context.Context, providerID string, approved bool) (*domain.Provider, error)
}

type BookingDirectory interface {
	List(ctx context.Context, actorID string, actorRole domain.UserRole, status string) ([]booking.BookingDetails, error)
}

type ReviewModeration interface {
	Delete(ctx context.Context, id string) error
}
