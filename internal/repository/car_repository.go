package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"asiadrive/internal/model"
)

// CarRepository defines catalog persistence operations.
type CarRepository interface {
	Create(ctx context.Context, car *model.Car) error
	Search(ctx context.Context, country, query string) ([]model.Car, error)
	DistinctCountries(ctx context.Context) ([]string, error)
	ListOrderedByBrand(ctx context.Context) ([]model.Car, error)
	Count(ctx context.Context) (int64, error)
}

type carRepository struct {
	db *gorm.DB
}

// NewCarRepository builds a GORM-backed repository.
func NewCarRepository(db *gorm.DB) CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, car *model.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

// Search returns cars matching the optional country and free-text filters,
// newest model year first. An empty country or query leaves that filter off.
func (r *carRepository) Search(ctx context.Context, country, query string) ([]model.Car, error) {
	tx := r.db.WithContext(ctx).Model(&model.Car{})
	if country != "" {
		tx = tx.Where("LOWER(country) = ?", strings.ToLower(country))
	}
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		tx = tx.Where("LOWER(brand) LIKE ? OR LOWER(model) LIKE ?", like, like)
	}

	var cars []model.Car
	if err := tx.Order("year DESC").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

// DistinctCountries returns the sorted set of non-empty origin countries,
// independent of any applied filter. It feeds the country facet of the
// catalog page.
func (r *carRepository) DistinctCountries(ctx context.Context) ([]string, error) {
	var countries []string
	err := r.db.WithContext(ctx).
		Model(&model.Car{}).
		Distinct("country").
		Where("country IS NOT NULL AND country <> ''").
		Order("country ASC").
		Pluck("country", &countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

// ListOrderedByBrand returns every car, ordered by brand, for the tracking
// management form.
func (r *carRepository) ListOrderedByBrand(ctx context.Context) ([]model.Car, error) {
	var cars []model.Car
	if err := r.db.WithContext(ctx).Order("brand ASC").Find(&cars).Error; err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *carRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Car{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
