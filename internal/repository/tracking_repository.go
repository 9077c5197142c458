package repository

import (
	"context"

	"gorm.io/gorm"

	"asiadrive/internal/model"
)

// TrackingRepository defines shipment-status persistence operations.
type TrackingRepository interface {
	Create(ctx context.Context, event *model.TrackingEvent) error
	ListWithCars(ctx context.Context, limit int) ([]model.TrackingEventDetail, error)
	LatestPerCar(ctx context.Context) ([]model.TrackingEvent, error)
	Count(ctx context.Context) (int64, error)
}

type trackingRepository struct {
	db *gorm.DB
}

// NewTrackingRepository builds a GORM-backed repository.
func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) Create(ctx context.Context, event *model.TrackingEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// ListWithCars returns tracking events joined with their car, newest first.
// A limit of zero or less returns everything.
func (r *trackingRepository) ListWithCars(ctx context.Context, limit int) ([]model.TrackingEventDetail, error) {
	tx := r.db.WithContext(ctx).
		Table("tracking_events").
		Select("tracking_events.*, cars.brand AS car_brand, cars.model AS car_model, cars.country AS car_country").
		Joins("JOIN cars ON cars.id = tracking_events.car_id").
		Order("tracking_events.updated_at DESC")
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var events []model.TrackingEventDetail
	if err := tx.Scan(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// LatestPerCar returns, for every car with history, the event carrying that
// car's maximum updated_at. The equality join can yield more than one row
// for a car when two events share a timestamp; callers collapsing the result
// into a map keep whichever row arrives last.
func (r *trackingRepository) LatestPerCar(ctx context.Context) ([]model.TrackingEvent, error) {
	var events []model.TrackingEvent
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.*
		FROM tracking_events t
		INNER JOIN (
			SELECT car_id, MAX(updated_at) AS max_updated
			FROM tracking_events
			GROUP BY car_id
		) latest ON latest.car_id = t.car_id AND latest.max_updated = t.updated_at`).
		Scan(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *trackingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.TrackingEvent{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
