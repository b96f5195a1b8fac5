package review

import (
	"context"
	"errors"
	"time"

	"localfix/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingRepository
}

func NewService(reviews ReviewRepository, bookings BookingRepository) *Service {
	return &Service{reviews: reviews, bookings: bookings}
}

// Create records a review for a completed booking owned by the actor.
// The repository recomputes the provider's rating aggregates in the same
// transaction as the insert.
func (s *Service) Create(ctx context.Context, actorID string, req CreateReviewRequest) (*domain.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.CustomerID != actorID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrBookingNotCompleted
	}

	rv := &domain.Review{
		BookingID:  b.ID,
		CustomerID: actorID,
		ProviderID: b.ProviderID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		IsVisible:  true,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// ListForProvider returns a provider's visible reviews, newest first.
func (s *Service) ListForProvider(ctx context.Context, providerID string) ([]domain.Review, error) {
	return s.reviews.GetVisibleByProvider(ctx, providerID)
}

// Delete removes a review and recomputes the provider's aggregates. Admin
// moderation path.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.reviews.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
