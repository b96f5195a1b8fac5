package provider

import (
	"context"
	"testing"

	"localfix/internal/domain"
	"localfix/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) Create(ctx context.Context, p *domain.Provider) error {
	args := m.Called(ctx, p)
	if p != nil && p.ID == "" {
		p.ID = "prov-1"
	}
	return args.Error(0)
}

func (m *MockProviderRepository) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) GetByUserID(ctx context.Context, userID string) (*domain.Provider, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) List(ctx context.Context, f repository.ProviderFilters) ([]domain.Provider, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Provider), args.Error(1)
}

func (m *MockProviderRepository) Update(ctx context.Context, p *domain.Provider) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProviderRepository) UpdateApproval(ctx context.Context, id string, approved bool) (*domain.Provider, error) {
	args := m.Called(ctx, id, approved)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Provider), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id string, role domain.UserRole) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.ServiceCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceCategory), args.Error(1)
}

func (m *MockCategoryRepository) GetByName(ctx context.Context, name string) (*domain.ServiceCategory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceCategory), args.Error(1)
}

type MockReviewLister struct {
	mock.Mock
}

func (m *MockReviewLister) GetVisibleByProvider(ctx context.Context, providerID string) ([]domain.Review, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func newTestService() (*Service, *MockProviderRepository, *MockUserRepository, *MockCategoryRepository, *MockReviewLister) {
	providers := new(MockProviderRepository)
	users := new(MockUserRepository)
	categories := new(MockCategoryRepository)
	reviews := new(MockReviewLister)
	return NewService(providers, users, categories, reviews), providers, users, categories, reviews
}

func TestService_Create_PromotesCustomerAndNormalizesCategories(t *testing.T) {
	service, providers, users, categories, _ := newTestService()

	providers.On("GetByUserID", mock.Anything, "user-1").Return(nil, gorm.ErrRecordNotFound)
	// "Electrical" comes in as a name, goes out as the canonical ID
	categories.On("GetByID", mock.Anything, "Electrical").Return(nil, gorm.ErrRecordNotFound)
	categories.On("GetByName", mock.Anything, "Electrical").
		Return(&domain.ServiceCategory{ID: "cat-1", Name: "Electrical"}, nil)
	providers.On("Create", mock.Anything, mock.Anything).Return(nil)
	users.On("GetByID", mock.Anything, "user-1").
		Return(&domain.User{ID: "user-1", Role: domain.RoleCustomer}, nil)
	users.On("UpdateRole", mock.Anything, "user-1", domain.RoleProvider).Return(nil)

	p, err := service.Create(context.Background(), "user-1", CreateProviderRequest{
		Specialty:  "Electrician",
		Location:   "Springfield",
		HourlyRate: 80,
		Categories: []string{"Electrical"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"cat-1"}, p.Categories)
	assert.Equal(t, defaultServiceRadius, p.ServiceRadius)
	assert.False(t, p.IsApproved)
	assert.True(t, p.IsAvailable)
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.ReviewCount)
	users.AssertCalled(t, "UpdateRole", mock.Anything, "user-1", domain.RoleProvider)
}

func TestService_Create_SecondProfileConflicts(t *testing.T) {
	service, providers, users, _, _ := newTestService()

	providers.On("GetByUserID", mock.Anything, "user-1").
		Return(&domain.Provider{ID: "prov-1", UserID: "user-1"}, nil)

	_, err := service.Create(context.Background(), "user-1", CreateProviderRequest{
		Specialty: "Plumber",
		Location:  "Springfield",
	})

	assert.ErrorIs(t, err, ErrConflict)
	providers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	users.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_UnknownCategory(t *testing.T) {
	service, providers, _, categories, _ := newTestService()

	providers.On("GetByUserID", mock.Anything, "user-1").Return(nil, gorm.ErrRecordNotFound)
	categories.On("GetByID", mock.Anything, "Astrology").Return(nil, gorm.ErrRecordNotFound)
	categories.On("GetByName", mock.Anything, "Astrology").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Create(context.Background(), "user-1", CreateProviderRequest{
		Specialty:  "Stargazer",
		Location:   "Springfield",
		Categories: []string{"Astrology"},
	})

	assert.ErrorIs(t, err, ErrUnknownCategory)
	providers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Update_OwnerOnly(t *testing.T) {
	service, providers, _, _, _ := newTestService()

	providers.On("GetByID", mock.Anything, "prov-1").
		Return(&domain.Provider{ID: "prov-1", UserID: "owner-1"}, nil)

	specialty := "Master Electrician"
	_, err := service.Update(context.Background(), "intruder", "prov-1", UpdateProviderRequest{
		Specialty: &specialty,
	})

	assert.ErrorIs(t, err, ErrForbidden)
	providers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_AppliesPartialPatch(t *testing.T) {
	service, providers, _, _, _ := newTestService()

	current := &domain.Provider{
		ID:            "prov-1",
		UserID:        "owner-1",
		Specialty:     "Electrician",
		Location:      "Springfield",
		ServiceRadius: 25,
		HourlyRate:    80,
		IsAvailable:   true,
	}
	providers.On("GetByID", mock.Anything, "prov-1").Return(current, nil)
	providers.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Provider) bool {
		return p.HourlyRate == 95 && !p.IsAvailable && p.Specialty == "Electrician"
	})).Return(nil)

	rate := 95.0
	unavailable := false
	_, err := service.Update(context.Background(), "owner-1", "prov-1", UpdateProviderRequest{
		HourlyRate:  &rate,
		IsAvailable: &unavailable,
	})

	require.NoError(t, err)
	providers.AssertExpectations(t)
}

func TestService_Update_NotFound(t *testing.T) {
	service, providers, _, _, _ := newTestService()

	providers.On("GetByID", mock.Anything, "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := service.Update(context.Background(), "owner-1", "missing", UpdateProviderRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Approve(t *testing.T) {
	service, providers, _, _, _ := newTestService()

	providers.On("UpdateApproval", mock.Anything, "prov-1", true).
		Return(&domain.Provider{ID: "prov-1", IsApproved: true}, nil)

	p, err := service.Approve(context.Background(), "prov-1", true)
	require.NoError(t, err)
	assert.True(t, p.IsApproved)

	providers.On("UpdateApproval", mock.Anything, "missing", true).
		Return(nil, gorm.ErrRecordNotFound)
	_, err = service.Approve(context.Background(), "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetByID_IncludesOwnerAndReviews(t *testing.T) {
	service, providers, users, _, reviews := newTestService()

	providers.On("GetByID", mock.Anything, "prov-1").
		Return(&domain.Provider{ID: "prov-1", UserID: "owner-1"}, nil)
	users.On("GetByID", mock.Anything, "owner-1").Return(&domain.User{
		ID:        "owner-1",
		Email:     "owner@x.com",
		FirstName: "Pat",
		LastName:  "Jones",
	}, nil)
	reviews.On("GetVisibleByProvider", mock.Anything, "prov-1").Return([]domain.Review{
		{ID: "rev-1", Rating: 5},
	}, nil)

	profile, err := service.GetByID(context.Background(), "prov-1")
	require.NoError(t, err)
	require.NotNil(t, profile.User)
	assert.Equal(t, "Pat", profile.User.FirstName)
	require.Len(t, profile.Reviews, 1)
	assert.Equal(t, "rev-1", profile.Reviews[0].ID)
}
