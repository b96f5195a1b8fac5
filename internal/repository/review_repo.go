package repository

import (
	"context"
	"math"
	"time"

	"localfix/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	BookingID  string    `gorm:"column:booking_id;index"`
	CustomerID string    `gorm:"column:customer_id"`
	ProviderID string    `gorm:"column:provider_id;index"`
	Rating     int       `gorm:"column:rating"`
	Comment    *string   `gorm:"column:comment"`
	IsVisible  bool      `gorm:"column:is_visible"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) domain.Review {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}
	return domain.Review{
		ID:         m.ID,
		BookingID:  m.BookingID,
		CustomerID: m.CustomerID,
		ProviderID: m.ProviderID,
		Rating:     m.Rating,
		Comment:    comment,
		IsVisible:  m.IsVisible,
		CreatedAt:  m.CreatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	var comment *string
	if rv.Comment != "" {
		v := rv.Comment
		comment = &v
	}
	return reviewModel{
		ID:         rv.ID,
		BookingID:  rv.BookingID,
		CustomerID: rv.CustomerID,
		ProviderID: rv.ProviderID,
		Rating:     rv.Rating,
		Comment:    comment,
		IsVisible:  rv.IsVisible,
		CreatedAt:  rv.CreatedAt,
	}
}

// Create inserts the review and recomputes the provider's aggregate rating
// and review count in one transaction, so two concurrent reviews for the
// same provider cannot lose an update.
func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		return recomputeProviderAggregates(tx, m.ProviderID)
	})
	if err != nil {
		return err
	}

	*rv = toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	rv := toDomainReview(m)
	return &rv, nil
}

// GetVisibleByProvider returns visible reviews, most recent first.
func (r *ReviewRepository) GetVisibleByProvider(ctx context.Context, providerID string) ([]domain.Review, error) {
	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where("provider_id = ? AND is_visible = ?", providerID, true).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReview(m))
	}
	return out, nil
}

// Delete hard-deletes the review and recomputes the owning provider's
// aggregates in the same transaction.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m reviewModel
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			return err
		}
		if err := tx.Delete(&reviewModel{}, "id = ?", id).Error; err != nil {
			return err
		}
		return recomputeProviderAggregates(tx, m.ProviderID)
	})
}

func recomputeProviderAggregates(tx *gorm.DB, providerID string) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := tx.Table("reviews").
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(1) AS count").
		Where("provider_id = ? AND is_visible = ?", providerID, true).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	rating := math.Round(agg.Avg*100) / 100

	return tx.Table("providers").
		Where("id = ?", providerID).
		Updates(map[string]any{
			"rating":       rating,
			"review_count": agg.Count,
		}).Error
}
