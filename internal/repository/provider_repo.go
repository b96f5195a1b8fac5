package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"localfix/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderFilters struct {
	CategoryID string
	Location   string
	IsApproved *bool
}

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

type providerModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	UserID          string    `gorm:"column:user_id;uniqueIndex"`
	Specialty       string    `gorm:"column:specialty"`
	Description     *string   `gorm:"column:description"`
	Location        string    `gorm:"column:location"`
	ServiceRadius   int       `gorm:"column:service_radius"`
	HourlyRate      float64   `gorm:"column:hourly_rate"`
	IsApproved      bool      `gorm:"column:is_approved"`
	IsAvailable     bool      `gorm:"column:is_available"`
	Rating          float64   `gorm:"column:rating"`
	ReviewCount     int       `gorm:"column:review_count"`
	Categories      string    `gorm:"column:categories;type:text"`
	YearsExperience *int      `gorm:"column:years_experience"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (providerModel) TableName() string { return "providers" }

func toDomainProvider(m providerModel) *domain.Provider {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}
	var years int
	if m.YearsExperience != nil {
		years = *m.YearsExperience
	}

	categories := []string{}
	if m.Categories != "" {
		// a corrupt column should not take the whole listing down
		_ = json.Unmarshal([]byte(m.Categories), &categories)
	}

	return &domain.Provider{
		ID:              m.ID,
		UserID:          m.UserID,
		Specialty:       m.Specialty,
		Description:     desc,
		Location:        m.Location,
		ServiceRadius:   m.ServiceRadius,
		HourlyRate:      m.HourlyRate,
		IsApproved:      m.IsApproved,
		IsAvailable:     m.IsAvailable,
		Rating:          m.Rating,
		ReviewCount:     m.ReviewCount,
		Categories:      categories,
		YearsExperience: years,
		CreatedAt:       m.CreatedAt,
	}
}

func toProviderModel(p *domain.Provider) providerModel {
	var desc *string
	if p.Description != "" {
		v := p.Description
		desc = &v
	}
	var years *int
	if p.YearsExperience > 0 {
		v := p.YearsExperience
		years = &v
	}

	categories := p.Categories
	if categories == nil {
		categories = []string{}
	}
	raw, _ := json.Marshal(categories)

	return providerModel{
		ID:              p.ID,
		UserID:          p.UserID,
		Specialty:       p.Specialty,
		Description:     desc,
		Location:        p.Location,
		ServiceRadius:   p.ServiceRadius,
		HourlyRate:      p.HourlyRate,
		IsApproved:      p.IsApproved,
		IsAvailable:     p.IsAvailable,
		Rating:          p.Rating,
		ReviewCount:     p.ReviewCount,
		Categories:      string(raw),
		YearsExperience: years,
		CreatedAt:       p.CreatedAt,
	}
}

func (r *ProviderRepository) Create(ctx context.Context, p *domain.Provider) error {
	m := toProviderModel(p)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProvider(m)
	return nil
}

func (r *ProviderRepository) GetByID(ctx context.Context, id string) (*domain.Provider, error) {
	var m providerModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProvider(m), nil
}

func (r *ProviderRepository) GetByUserID(ctx context.Context, userID string) (*domain.Provider, error) {
	var m providerModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProvider(m), nil
}

// List returns providers matching all supplied filters. Category matching
// is by canonical category ID against the JSON-encoded categories column.
func (r *ProviderRepository) List(ctx context.Context, f ProviderFilters) ([]domain.Provider, error) {
	q := r.db.WithContext(ctx).Model(&providerModel{})

	if f.CategoryID != "" {
		q = q.Where(`categories LIKE ?`, `%"`+f.CategoryID+`"%`)
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(f.Location)+"%")
	}
	if f.IsApproved != nil {
		q = q.Where("is_approved = ?", *f.IsApproved)
	}

	var rows []providerModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Provider, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainProvider(m))
	}
	return out, nil
}

// Update writes the owner-editable columns. Rating, review count and the
// approval flag are out of reach here; they have their own paths.
func (r *ProviderRepository) Update(ctx context.Context, p *domain.Provider) error {
	m := toProviderModel(p)
	tx := r.db.WithContext(ctx).
		Table("providers").
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"specialty":        m.Specialty,
			"description":      m.Description,
			"location":         m.Location,
			"service_radius":   m.ServiceRadius,
			"hourly_rate":      m.HourlyRate,
			"is_available":     m.IsAvailable,
			"categories":       m.Categories,
			"years_experience": m.YearsExperience,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ProviderRepository) UpdateApproval(ctx context.Context, id string, approved bool) (*domain.Provider, error) {
	tx := r.db.WithContext(ctx).
		Table("providers").
		Where("id = ?", id).
		Update("is_approved", approved)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
