package repository

import (
	"context"

	"gorm.io/gorm"

	"asiadrive/internal/model"
)

// LeadRepository defines inquiry persistence operations.
type LeadRepository interface {
	Create(ctx context.Context, lead *model.Lead) error
	ListWithDetails(ctx context.Context) ([]model.LeadDetail, error)
}

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository builds a GORM-backed repository.
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// ListWithDetails returns all leads newest first, each joined with the
// referenced car and owning user. Both joins are LEFT: a deleted car or user
// nulls the reference but keeps the lead.
func (r *leadRepository) ListWithDetails(ctx context.Context) ([]model.LeadDetail, error) {
	var leads []model.LeadDetail
	err := r.db.WithContext(ctx).
		Table("leads").
		Select("leads.*, cars.brand AS car_brand, cars.model AS car_model, users.name AS user_name, users.email AS user_email, users.role AS user_role").
		Joins("LEFT JOIN cars ON cars.id = leads.car_id").
		Joins("LEFT JOIN users ON users.id = leads.user_id").
		Order("leads.created_at DESC").
		Scan(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}
