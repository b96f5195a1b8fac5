package repository

import (
	"context"
	"strings"

	"localfix/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryModel struct {
	ID          string  `gorm:"column:id;primaryKey"`
	Name        string  `gorm:"column:name;uniqueIndex"`
	Description *string `gorm:"column:description"`
	Icon        string  `gorm:"column:icon"`
	Color       string  `gorm:"column:color"`
}

func (categoryModel) TableName() string { return "service_categories" }

func toDomainCategory(m categoryModel) domain.ServiceCategory {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}
	return domain.ServiceCategory{
		ID:          m.ID,
		Name:        m.Name,
		Description: desc,
		Icon:        m.Icon,
		Color:       m.Color,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.ServiceCategory) error {
	m := categoryModel{
		ID:    c.ID,
		Name:  c.Name,
		Icon:  c.Icon,
		Color: c.Color,
	}
	if c.Description != "" {
		v := c.Description
		m.Description = &v
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = toDomainCategory(m)
	return nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.ServiceCategory, error) {
	var rows []categoryModel
	tx := r.db.WithContext(ctx).Order("name ASC").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.ServiceCategory, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainCategory(m))
	}
	return out, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.ServiceCategory, error) {
	var m categoryModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	c := toDomainCategory(m)
	return &c, nil
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*domain.ServiceCategory, error) {
	var m categoryModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	c := toDomainCategory(m)
	return &c, nil
}
