package session

import (
	"context"
	"testing"
	"time"

	"localfix/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memStore struct {
	rows map[string]*domain.Session
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[string]*domain.Session)}
}

func (s *memStore) Create(_ context.Context, sess *domain.Session) error {
	cp := *sess
	s.rows[sess.TokenHash] = &cp
	return nil
}

func (s *memStore) GetByTokenHash(_ context.Context, hash string) (*domain.Session, error) {
	sess, ok := s.rows[hash]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *sess
	return &cp, nil
}

func (s *memStore) DeleteByTokenHash(_ context.Context, hash string) error {
	delete(s.rows, hash)
	return nil
}

func TestManager_IssueAndResolve(t *testing.T) {
	store := newMemStore()
	m := NewManager(store, "pepper", 24*time.Hour)

	token, err := m.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// raw token never stored
	_, stored := store.rows[token]
	assert.False(t, stored)

	userID, err := m.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestManager_ResolveUnknownToken(t *testing.T) {
	m := NewManager(newMemStore(), "pepper", 24*time.Hour)

	_, err := m.Resolve(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, ErrInvalidSession)

	_, err = m.Resolve(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestManager_ResolveExpired(t *testing.T) {
	store := newMemStore()
	m := NewManager(store, "pepper", -time.Minute)

	token, err := m.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = m.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidSession)
	// expired row is pruned on resolve
	assert.Empty(t, store.rows)
}

func TestManager_Destroy(t *testing.T) {
	store := newMemStore()
	m := NewManager(store, "pepper", 24*time.Hour)

	token, err := m.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	require.NoError(t, m.Destroy(context.Background(), token))

	_, err = m.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	// destroying twice is a no-op
	require.NoError(t, m.Destroy(context.Background(), token))
}
