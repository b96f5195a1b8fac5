package admin

import (
	"context"

	"localfix/internal/domain"
	"localfix/internal/modules/booking"
	"localfix/internal/modules/provider"
	"localfix/internal/repository"
)

// Service fronts the moderation surface. It composes the public services
// rather than reaching into repositories, so the role rules and response
// shapes stay in one place.
type Service struct {
	users     UserLister
	providers ProviderDirectory
	bookings  BookingDirectory
	reviews   ReviewModeration
}

func NewService(users UserLister, providers ProviderDirectory, bookings BookingDirectory, reviews ReviewModeration) *Service {
	return &Service{users: users, providers: providers, bookings: bookings, reviews: reviews}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// ListProviders is unfiltered so pending profiles show up for approval.
func (s *Service) ListProviders(ctx context.Context) ([]provider.ProviderDetails, error) {
	return s.providers.List(ctx, repository.ProviderFilters{})
}

func (s *Service) ApproveProvider(ctx context.Context, providerID string, approved bool) (*domain.Provider, error) {
	return s.providers.Approve(ctx, providerID, approved)
}

func (s *Service) ListBookings(ctx context.Context, status string) ([]booking.BookingDetails, error) {
	return s.bookings.List(ctx, "", domain.RoleAdmin, status)
}

func (s *Service) DeleteReview(ctx context.Context, id string) error {
	return s.reviews.Delete(ctx, id)
}
