package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"localfix/internal/domain"
	"localfix/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// adminEmail is the seeded admin account that the shared-secret login
// resolves to. It is created by cmd/seed, never by registration.
const adminEmail = "admin@localfix.com"

type Service struct {
	users         UserRepository
	adminPassword string
}

func NewService(users UserRepository, adminPassword string) *Service {
	return &Service{users: users, adminPassword: adminPassword}
}

// Register creates a customer account. The provider role is only ever
// reached later, by creating a provider profile.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	email := strings.TrimSpace(req.Email)

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         domain.RoleCustomer,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// AdminLogin checks the single shared admin secret and resolves the seeded
// admin user. It never creates an account.
func (s *Service) AdminLogin(ctx context.Context, password string) (*domain.User, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return nil, ErrInvalidAdminPassword
	}

	admin, err := s.users.GetByEmail(ctx, adminEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
