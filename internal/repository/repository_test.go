package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"localfix/internal/database"
	"localfix/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, role domain.UserRole) *domain.User {
	t.Helper()

	u := &domain.User{
		Email:        email,
		PasswordHash: "x",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func seedProvider(t *testing.T, db *gorm.DB, userID string, mutate func(*domain.Provider)) *domain.Provider {
	t.Helper()

	p := &domain.Provider{
		UserID:        userID,
		Specialty:     "Electrician",
		Location:      "Springfield",
		ServiceRadius: 25,
		HourlyRate:    80,
		IsAvailable:   true,
		Categories:    []string{},
	}
	if mutate != nil {
		mutate(p)
	}
	require.NoError(t, NewProviderRepository(db).Create(context.Background(), p))
	return p
}

func TestUserRepository_EmailUnique(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)

	u := &domain.User{Email: "a@x.com", PasswordHash: "h", Role: domain.RoleCustomer}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.NotEmpty(t, u.ID)

	dup := &domain.User{Email: "a@x.com", PasswordHash: "h", Role: domain.RoleCustomer}
	err := repo.Create(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestProviderRepository_OneProfilePerUser(t *testing.T) {
	db := setupDB(t)
	u := seedUser(t, db, "owner@x.com", domain.RoleCustomer)

	seedProvider(t, db, u.ID, nil)

	second := &domain.Provider{UserID: u.ID, Specialty: "Plumber", Location: "Springfield"}
	err := NewProviderRepository(db).Create(context.Background(), second)
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestProviderRepository_ListFilters(t *testing.T) {
	db := setupDB(t)
	repo := NewProviderRepository(db)
	ctx := context.Background()

	u1 := seedUser(t, db, "p1@x.com", domain.RoleProvider)
	u2 := seedUser(t, db, "p2@x.com", domain.RoleProvider)
	u3 := seedUser(t, db, "p3@x.com", domain.RoleProvider)

	p1 := seedProvider(t, db, u1.ID, func(p *domain.Provider) {
		p.Location = "Downtown Springfield"
		p.Categories = []string{"cat-electrical"}
	})
	seedProvider(t, db, u2.ID, func(p *domain.Provider) {
		p.Location = "Shelbyville"
		p.Categories = []string{"cat-plumbing"}
	})
	p3 := seedProvider(t, db, u3.ID, func(p *domain.Provider) {
		p.Location = "springfield east"
		p.Categories = []string{"cat-electrical", "cat-plumbing"}
	})

	approved, err := repo.UpdateApproval(ctx, p1.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	// category membership
	got, err := repo.List(ctx, ProviderFilters{CategoryID: "cat-electrical"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// case-insensitive location substring
	got, err = repo.List(ctx, ProviderFilters{Location: "SPRINGFIELD"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// AND semantics across filters
	yes := true
	got, err = repo.List(ctx, ProviderFilters{
		CategoryID: "cat-electrical",
		Location:   "springfield",
		IsApproved: &yes,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, p1.ID, got[0].ID)

	no := false
	got, err = repo.List(ctx, ProviderFilters{IsApproved: &no})
	require.NoError(t, err)
	require.Len(t, got, 2)
	ids := []string{got[0].ID, got[1].ID}
	assert.NotContains(t, ids, p1.ID)
	assert.Contains(t, ids, p3.ID)
}

func TestProviderRepository_UpdateDoesNotTouchAggregates(t *testing.T) {
	db := setupDB(t)
	repo := NewProviderRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "p@x.com", domain.RoleProvider)
	p := seedProvider(t, db, u.ID, nil)

	// simulate an aggregate written by the review path
	require.NoError(t, db.Table("providers").Where("id = ?", p.ID).
		Updates(map[string]any{"rating": 4.5, "review_count": 2}).Error)

	p.Specialty = "Master Electrician"
	p.Rating = 1.0 // must be ignored
	p.ReviewCount = 99
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Master Electrician", got.Specialty)
	assert.Equal(t, 4.5, got.Rating)
	assert.Equal(t, 2, got.ReviewCount)
}

func TestBookingRepository_ListFilters(t *testing.T) {
	db := setupDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	mk := func(customerID, providerID string, status domain.BookingStatus) *domain.Booking {
		b := &domain.Booking{
			CustomerID:         customerID,
			ProviderID:         providerID,
			ServiceDescription: "fix wiring",
			ScheduledDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			ScheduledTime:      "10:00",
			Status:             status,
			CustomerAddress:    "1 Main St",
			CustomerPhone:      "555-0100",
			EstimatedDuration:  2,
		}
		require.NoError(t, repo.Create(ctx, b))
		return b
	}

	mk("cust-1", "prov-1", domain.BookingPending)
	mk("cust-1", "prov-2", domain.BookingConfirmed)
	mk("cust-2", "prov-1", domain.BookingPending)

	got, err := repo.List(ctx, BookingFilters{CustomerID: "cust-1"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.List(ctx, BookingFilters{ProviderID: "prov-1"})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.List(ctx, BookingFilters{CustomerID: "cust-1", Status: "confirmed"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "prov-2", got[0].ProviderID)

	got, err = repo.List(ctx, BookingFilters{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestReviewRepository_CreateRecomputesAggregates(t *testing.T) {
	db := setupDB(t)
	reviews := NewReviewRepository(db)
	providers := NewProviderRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "p@x.com", domain.RoleProvider)
	p := seedProvider(t, db, u.ID, nil)

	n := 0
	add := func(rating int, visible bool) {
		n++
		rv := &domain.Review{
			BookingID:  fmt.Sprintf("bk-%d", n),
			CustomerID: "cust-1",
			ProviderID: p.ID,
			Rating:     rating,
			IsVisible:  visible,
		}
		require.NoError(t, reviews.Create(ctx, rv))
		assert.NotEmpty(t, rv.ID)
	}

	add(5, true)
	add(4, true)

	got, err := providers.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got.Rating)
	assert.Equal(t, 2, got.ReviewCount)

	// hidden reviews do not count
	add(1, false)

	got, err = providers.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, got.Rating)
	assert.Equal(t, 2, got.ReviewCount)

	// rounding to two decimals: (5+4+4)/3 = 4.33
	add(4, true)
	got, err = providers.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.33, got.Rating)
	assert.Equal(t, 3, got.ReviewCount)
}

func TestReviewRepository_DeleteRecomputesAggregates(t *testing.T) {
	db := setupDB(t)
	reviews := NewReviewRepository(db)
	providers := NewProviderRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "p@x.com", domain.RoleProvider)
	p := seedProvider(t, db, u.ID, nil)

	first := &domain.Review{BookingID: "bk-1", CustomerID: "c1", ProviderID: p.ID, Rating: 5, IsVisible: true}
	require.NoError(t, reviews.Create(ctx, first))
	second := &domain.Review{BookingID: "bk-2", CustomerID: "c2", ProviderID: p.ID, Rating: 1, IsVisible: true}
	require.NoError(t, reviews.Create(ctx, second))

	require.NoError(t, reviews.Delete(ctx, second.ID))

	got, err := providers.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, got.Rating)
	assert.Equal(t, 1, got.ReviewCount)

	err = reviews.Delete(ctx, "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// removing the last review resets the aggregate to zero
	require.NoError(t, reviews.Delete(ctx, first.ID))
	got, err = providers.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Rating)
	assert.Equal(t, 0, got.ReviewCount)
}

func TestReviewRepository_GetVisibleByProviderOrdering(t *testing.T) {
	db := setupDB(t)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	u := seedUser(t, db, "p@x.com", domain.RoleProvider)
	p := seedProvider(t, db, u.ID, nil)

	old := &domain.Review{
		BookingID: "bk-1", CustomerID: "c1", ProviderID: p.ID,
		Rating: 4, IsVisible: true,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, reviews.Create(ctx, old))
	recent := &domain.Review{
		BookingID: "bk-2", CustomerID: "c2", ProviderID: p.ID,
		Rating: 5, IsVisible: true,
		CreatedAt: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, reviews.Create(ctx, recent))
	hidden := &domain.Review{
		BookingID: "bk-3", CustomerID: "c3", ProviderID: p.ID,
		Rating: 1, IsVisible: false,
		CreatedAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, reviews.Create(ctx, hidden))

	got, err := reviews.GetVisibleByProvider(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, recent.ID, got[0].ID)
	assert.Equal(t, old.ID, got[1].ID)
}

func TestSessionRepository_DeleteExpired(t *testing.T) {
	db := setupDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, &domain.Session{
		TokenHash: "h1", UserID: "u1", CreatedAt: now.Add(-48 * time.Hour), ExpiresAt: now.Add(-24 * time.Hour),
	}))
	require.NoError(t, repo.Create(ctx, &domain.Session{
		TokenHash: "h2", UserID: "u1", CreatedAt: now, ExpiresAt: now.Add(24 * time.Hour),
	}))

	n, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.GetByTokenHash(ctx, "h1")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	s, err := repo.GetByTokenHash(ctx, "h2")
	require.NoError(t, err)
	assert.Equal(t, "u1", s.UserID)
}
