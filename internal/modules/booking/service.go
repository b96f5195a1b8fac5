package booking

import (
	"context"
	"errors"
	"time"

	"localfix/internal/domain"
	"localfix/internal/repository"

	"gorm.io/gorm"
)

const (
	defaultScheduledTime     = "09:00"
	defaultEstimatedDuration = 2
)

type Service struct {
	bookings  BookingRepository
	providers ProviderRepository
	users     UserRepository
}

func NewService(bookings BookingRepository, providers ProviderRepository, users UserRepository) *Service {
	return &Service{bookings: bookings, providers: providers, users: users}
}

// Create opens a pending booking for the acting customer against an
// existing, approved provider.
func (s *Service) Create(ctx context.Context, actorID string, req CreateBookingRequest) (*domain.Booking, error) {
	if req.ProviderID == "" {
		return nil, missingField("providerId", "Provider ID is required")
	}
	if req.ServiceDescription == "" {
		return nil, missingField("serviceDescription", "Service description is required")
	}
	if req.ScheduledDate == "" {
		return nil, missingField("scheduledDate", "Scheduled date is required")
	}
	if req.CustomerAddress == "" {
		return nil, missingField("customerAddress", "Customer address is required")
	}
	if req.CustomerPhone == "" {
		return nil, missingField("customerPhone", "Customer phone is required")
	}

	scheduledDate, err := parseScheduledDate(req.ScheduledDate)
	if err != nil {
		return nil, invalidField("scheduledDate", "Invalid scheduled date")
	}

	p, err := s.providers.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	if !p.IsApproved {
		return nil, ErrProviderNotApproved
	}

	scheduledTime := req.ScheduledTime
	if scheduledTime == "" {
		scheduledTime = defaultScheduledTime
	}
	duration := req.EstimatedDuration
	if duration <= 0 {
		duration = defaultEstimatedDuration
	}

	b := &domain.Booking{
		CustomerID:         actorID,
		ProviderID:         p.ID,
		ServiceDescription: req.ServiceDescription,
		ScheduledDate:      scheduledDate,
		ScheduledTime:      scheduledTime,
		Status:             domain.BookingPending,
		CustomerAddress:    req.CustomerAddress,
		CustomerPhone:      req.CustomerPhone,
		EstimatedDuration:  duration,
		Notes:              req.Notes,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// List returns bookings scoped to the actor: customers see their own,
// providers see their profile's, admins see everything.
func (s *Service) List(ctx context.Context, actorID string, actorRole domain.UserRole, status string) ([]BookingDetails, error) {
	f := repository.BookingFilters{Status: status}

	switch actorRole {
	case domain.RoleCustomer:
		f.CustomerID = actorID
	case domain.RoleProvider:
		p, err := s.providers.GetByUserID(ctx, actorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// a provider role without a profile owns no bookings
				return []BookingDetails{}, nil
			}
			return nil, err
		}
		f.ProviderID = p.ID
	case domain.RoleAdmin:
		// no identity scope
	default:
		f.CustomerID = actorID
	}

	rows, err := s.bookings.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, rows), nil
}

// Update applies a role-scoped partial patch, enforcing the status
// transition table.
func (s *Service) Update(ctx context.Context, actorID string, actorRole domain.UserRole, bookingID string, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	isAdmin := actorRole == domain.RoleAdmin
	isCustomer := b.CustomerID == actorID

	isOwningProvider := false
	if !isAdmin && !isCustomer && actorRole == domain.RoleProvider {
		p, err := s.providers.GetByUserID(ctx, actorID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		isOwningProvider = err == nil && p.ID == b.ProviderID
	}

	if !isAdmin && !isCustomer && !isOwningProvider {
		return nil, ErrForbidden
	}

	prevStatus := b.Status

	if req.Status != nil {
		next := domain.BookingStatus(*req.Status)
		if !next.Valid() {
			return nil, invalidField("status", "Unknown booking status: %s", *req.Status)
		}
		if !b.Status.CanTransitionTo(next) {
			return nil, ErrInvalidTransition
		}
		if !statusChangeAllowed(next, isAdmin, isCustomer, isOwningProvider) {
			return nil, ErrForbidden
		}
		b.Status = next
	}

	if err := s.applyFieldPatch(b, prevStatus, req, isAdmin, isCustomer, isOwningProvider); err != nil {
		return nil, err
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return s.bookings.GetByID(ctx, bookingID)
}

// statusChangeAllowed is the role side of the transition rules: customers
// may only cancel, providers drive confirm/complete/cancel, admins may make
// any legal transition.
func statusChangeAllowed(next domain.BookingStatus, isAdmin, isCustomer, isOwningProvider bool) bool {
	if isAdmin {
		return true
	}
	if isCustomer {
		return next == domain.BookingCancelled
	}
	if isOwningProvider {
		return next == domain.BookingConfirmed ||
			next == domain.BookingCompleted ||
			next == domain.BookingCancelled
	}
	return false
}

// applyFieldPatch applies the non-status fields. Customers may edit their
// booking details while it is still pending; providers may only touch
// notes; admins may edit anything.
func (s *Service) applyFieldPatch(b *domain.Booking, prevStatus domain.BookingStatus, req UpdateBookingRequest, isAdmin, isCustomer, isOwningProvider bool) error {
	detailEdit := req.ServiceDescription != nil || req.ScheduledDate != nil ||
		req.ScheduledTime != nil || req.CustomerAddress != nil ||
		req.CustomerPhone != nil || req.EstimatedDuration != nil

	if detailEdit {
		switch {
		case isAdmin:
		case isCustomer:
			// once the provider has acted on it, the details are fixed
			if prevStatus != domain.BookingPending {
				return ErrForbidden
			}
		default:
			return ErrForbidden
		}
	}

	if req.ServiceDescription != nil {
		b.ServiceDescription = *req.ServiceDescription
	}
	if req.ScheduledDate != nil {
		d, err := parseScheduledDate(*req.ScheduledDate)
		if err != nil {
			return invalidField("scheduledDate", "Invalid scheduled date")
		}
		b.ScheduledDate = d
	}
	if req.ScheduledTime != nil {
		b.ScheduledTime = *req.ScheduledTime
	}
	if req.CustomerAddress != nil {
		b.CustomerAddress = *req.CustomerAddress
	}
	if req.CustomerPhone != nil {
		b.CustomerPhone = *req.CustomerPhone
	}
	if req.EstimatedDuration != nil {
		b.EstimatedDuration = *req.EstimatedDuration
	}
	if req.Notes != nil {
		if !isAdmin && !isCustomer && !isOwningProvider {
			return ErrForbidden
		}
		b.Notes = *req.Notes
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) enrich(ctx context.Context, rows []domain.Booking) []BookingDetails {
	out := make([]BookingDetails, 0, len(rows))
	for _, b := range rows {
		details := BookingDetails{Booking: b}

		if customer, err := s.users.GetByID(ctx, b.CustomerID); err == nil {
			summary := customer.Summary()
			details.Customer = &summary
		}

		if p, err := s.providers.GetByID(ctx, b.ProviderID); err == nil {
			pd := &ProviderDetails{Provider: *p}
			if owner, err := s.users.GetByID(ctx, p.UserID); err == nil {
				summary := owner.Summary()
				summary.Email = ""
				pd.User = &summary
			}
			details.Provider = pd
		}

		out = append(out, details)
	}
	return out
}

func parseScheduledDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
