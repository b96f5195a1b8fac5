package repository

import (
	"context"
	"time"

	"localfix/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingFilters struct {
	CustomerID string
	ProviderID string
	Status     string
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                 string    `gorm:"column:id;primaryKey"`
	CustomerID         string    `gorm:"column:customer_id;index"`
	ProviderID         string    `gorm:"column:provider_id;index"`
	ServiceDescription string    `gorm:"column:service_description"`
	ScheduledDate      time.Time `gorm:"column:scheduled_date"`
	ScheduledTime      string    `gorm:"column:scheduled_time"`
	Status             string    `gorm:"column:status"`
	CustomerAddress    string    `gorm:"column:customer_address"`
	CustomerPhone      string    `gorm:"column:customer_phone"`
	EstimatedDuration  int       `gorm:"column:estimated_duration"`
	Notes              *string   `gorm:"column:notes"`
	CreatedAt          time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:                 m.ID,
		CustomerID:         m.CustomerID,
		ProviderID:         m.ProviderID,
		ServiceDescription: m.ServiceDescription,
		ScheduledDate:      m.ScheduledDate,
		ScheduledTime:      m.ScheduledTime,
		Status:             domain.BookingStatus(m.Status),
		CustomerAddress:    m.CustomerAddress,
		CustomerPhone:      m.CustomerPhone,
		EstimatedDuration:  m.EstimatedDuration,
		Notes:              notes,
		CreatedAt:          m.CreatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		ProviderID:         b.ProviderID,
		ServiceDescription: b.ServiceDescription,
		ScheduledDate:      b.ScheduledDate,
		ScheduledTime:      b.ScheduledTime,
		Status:             string(b.Status),
		CustomerAddress:    b.CustomerAddress,
		CustomerPhone:      b.CustomerPhone,
		EstimatedDuration:  b.EstimatedDuration,
		Notes:              notes,
		CreatedAt:          b.CreatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilters) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{})

	if f.CustomerID != "" {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	if f.ProviderID != "" {
		q = q.Where("provider_id = ?", f.ProviderID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	var rows []bookingModel
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).
		Table("bookings").
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"service_description": m.ServiceDescription,
			"scheduled_date":      m.ScheduledDate,
			"scheduled_time":      m.ScheduledTime,
			"status":              m.Status,
			"customer_address":    m.CustomerAddress,
			"customer_phone":      m.CustomerPhone,
			"estimated_duration":  m.EstimatedDuration,
			"notes":               m.Notes,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
