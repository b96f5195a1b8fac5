package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"localfix/internal/domain"

	"gorm.io/gorm"
)

var ErrInvalidSession = errors.New("invalid session")

// Store persists session rows keyed by token hash.
type Store interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByTokenHash(ctx context.Context, hash string) (*domain.Session, error)
	DeleteByTokenHash(ctx context.Context, hash string) error
}

// Manager mints and resolves opaque session tokens. The raw token lives
// only in the client cookie; the store keeps a peppered SHA-256 hash.
type Manager struct {
	store  Store
	pepper string
	ttl    time.Duration
}

func NewManager(store Store, pepper string, ttl time.Duration) *Manager {
	return &Manager{store: store, pepper: pepper, ttl: ttl}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue creates a session for the user and returns the raw token.
func (m *Manager) Issue(ctx context.Context, userID string) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	now := time.Now().UTC()
	s := &domain.Session{
		TokenHash: m.hash(token),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Create(ctx, s); err != nil {
		return "", err
	}
	return token, nil
}

// Resolve returns the user ID behind a raw token. Expired sessions are
// removed on sight.
func (m *Manager) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidSession
	}

	s, err := m.store.GetByTokenHash(ctx, m.hash(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidSession
		}
		return "", err
	}

	if s.Expired(time.Now().UTC()) {
		_ = m.store.DeleteByTokenHash(ctx, s.TokenHash)
		return "", ErrInvalidSession
	}
	return s.UserID, nil
}

// Destroy removes the session behind a raw token. Unknown tokens are a no-op.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	err := m.store.DeleteByTokenHash(ctx, m.hash(token))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (m *Manager) hash(token string) string {
	sum := sha256.Sum256([]byte(token + m.pepper))
	return hex.EncodeToString(sum[:])
}
