package provider

import (
	"context"
	"errors"
	"fmt"

	"localfix/internal/domain"
	"localfix/internal/pkg/validator"
	"localfix/internal/repository"

	"gorm.io/gorm"
)

const defaultServiceRadius = 25

type Service struct {
	providers  ProviderRepository
	users      UserRepository
	categories CategoryRepository
	reviews    ReviewLister
}

func NewService(
	providers ProviderRepository,
	users UserRepository,
	categories CategoryRepository,
	reviews ReviewLister,
) *Service {
	return &Service{
		providers:  providers,
		users:      users,
		categories: categories,
		reviews:    reviews,
	}
}

// Create persists a new profile owned by the actor and promotes a customer
// to the provider role. A user owns at most one profile.
func (s *Service) Create(ctx context.Context, actorID string, req CreateProviderRequest) (*domain.Provider, error) {
	if _, err := s.providers.GetByUserID(ctx, actorID); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	categories, err := s.normalizeCategories(ctx, req.Categories)
	if err != nil {
		return nil, err
	}

	radius := req.ServiceRadius
	if radius == 0 {
		radius = defaultServiceRadius
	}

	p := &domain.Provider{
		UserID:          actorID,
		Specialty:       req.Specialty,
		Description:     req.Description,
		Location:        req.Location,
		ServiceRadius:   radius,
		HourlyRate:      req.HourlyRate,
		IsApproved:      false,
		IsAvailable:     true,
		Categories:      categories,
		YearsExperience: req.YearsExperience,
	}

	// gin binding covers the HTTP path; this also guards direct callers
	if fields := validator.Validate(p); fields != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, fields)
	}

	if err := s.providers.Create(ctx, p); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role == domain.RoleCustomer {
		if err := s.users.UpdateRole(ctx, actorID, domain.RoleProvider); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Update applies an owner's partial patch.
func (s *Service) Update(ctx context.Context, actorID, providerID string, req UpdateProviderRequest) (*domain.Provider, error) {
	p, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if p.UserID != actorID {
		return nil, ErrForbidden
	}

	if req.Specialty != nil {
		p.Specialty = *req.Specialty
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Location != nil {
		p.Location = *req.Location
	}
	if req.ServiceRadius != nil {
		p.ServiceRadius = *req.ServiceRadius
	}
	if req.HourlyRate != nil {
		p.HourlyRate = *req.HourlyRate
	}
	if req.IsAvailable != nil {
		p.IsAvailable = *req.IsAvailable
	}
	if req.YearsExperience != nil {
		p.YearsExperience = *req.YearsExperience
	}
	if req.Categories != nil {
		categories, err := s.normalizeCategories(ctx, *req.Categories)
		if err != nil {
			return nil, err
		}
		p.Categories = categories
	}

	if err := s.providers.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.providers.GetByID(ctx, providerID)
}

// Approve flips the admin approval flag.
func (s *Service) Approve(ctx context.Context, providerID string, approved bool) (*domain.Provider, error) {
	p, err := s.providers.UpdateApproval(ctx, providerID, approved)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns providers matching all supplied filters, each with its
// owner's name summary attached.
func (s *Service) List(ctx context.Context, f repository.ProviderFilters) ([]ProviderDetails, error) {
	rows, err := s.providers.List(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]ProviderDetails, 0, len(rows))
	for _, p := range rows {
		details := ProviderDetails{Provider: p}
		if u, err := s.users.GetByID(ctx, p.UserID); err == nil {
			summary := u.Summary()
			details.User = &summary
		}
		out = append(out, details)
	}
	return out, nil
}

// GetByID returns the public profile: provider, owner summary and visible
// reviews, most recent first.
func (s *Service) GetByID(ctx context.Context, id string) (*ProviderProfile, error) {
	p, err := s.providers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	profile := &ProviderProfile{Provider: *p, Reviews: []domain.Review{}}

	if u, err := s.users.GetByID(ctx, p.UserID); err == nil {
		summary := u.Summary()
		profile.User = &summary
	}

	reviews, err := s.reviews.GetVisibleByProvider(ctx, id)
	if err != nil {
		return nil, err
	}
	profile.Reviews = reviews

	return profile, nil
}

// normalizeCategories resolves every supplied value to a canonical category
// ID, accepting either an ID or a name on the way in. Unknown values fail.
func (s *Service) normalizeCategories(ctx context.Context, values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))

	for _, v := range values {
		id, err := s.resolveCategory(ctx, v)
		if err != nil {
			return nil, err
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out, nil
}

func (s *Service) resolveCategory(ctx context.Context, value string) (string, error) {
	if c, err := s.categories.GetByID(ctx, value); err == nil {
		return c.ID, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	c, err := s.categories.GetByName(ctx, value)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: %s", ErrUnknownCategory, value)
		}
		return "", err
	}
	return c.ID, nil
}
