package model

import "time"

// TrackingEvent is one shipment-status record for a car. A car accumulates
// events over time; the newest one (max updated_at) is its current status.
type TrackingEvent struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CarID     uint      `json:"car_id" gorm:"not null;index"`
	Status    string    `json:"status" gorm:"size:255;not null"`
	Location  string    `json:"location" gorm:"size:255;not null"`
	ETA       string    `json:"eta" gorm:"column:eta;size:255"`
	Comment   string    `json:"comment" gorm:"type:text"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrackingEventDetail is the public feed projection: an event joined with
// the car it belongs to.
type TrackingEventDetail struct {
	TrackingEvent `gorm:"embedded"`
	CarBrand      string `json:"car_brand"`
	CarModel      string `json:"car_model"`
	CarCountry    string `json:"car_country"`
}
