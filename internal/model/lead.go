package model

import "time"

// Lead represents a customer purchase inquiry. Leads are immutable once
// created and keep their car/user references nullable so deleting either
// side leaves the inquiry intact.
type Lead struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:255;not null"`
	Phone          string    `json:"phone" gorm:"size:50;not null"`
	Email          string    `json:"email" gorm:"size:255"`
	CarID          *uint     `json:"car_id"`
	PreferredBrand string    `json:"preferred_brand" gorm:"size:255"`
	PreferredModel string    `json:"preferred_model" gorm:"size:255"`
	Country        string    `json:"country" gorm:"size:100"`
	Budget         *int      `json:"budget"`
	Comment        string    `json:"comment" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         *uint     `json:"user_id"`
}

// LeadDetail is the admin listing projection: a lead joined with the
// referenced car and owning user, when they still exist.
type LeadDetail struct {
	Lead      `gorm:"embedded"`
	CarBrand  *string `json:"car_brand"`
	CarModel  *string `json:"car_model"`
	UserName  *string `json:"user_name"`
	UserEmail *string `json:"user_email"`
	UserRole  *string `json:"user_role"`
}
