package auth

import (
	"context"

	"localfix/internal/domain"
)

// UserRepository defines the account-store operations this module needs
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
