package model

// Car represents a catalog listing for an imported vehicle.
type Car struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Brand       string `json:"brand" gorm:"size:255;not null;index"`
	Model       string `json:"model" gorm:"size:255;not null;index"`
	Year        int    `json:"year" gorm:"not null"`
	Price       int    `json:"price" gorm:"not null"`
	Mileage     int    `json:"mileage"`
	FuelType    string `json:"fuel_type" gorm:"size:50"`
	Country     string `json:"country" gorm:"size:100;not null;index"`
	ImageURL    string `json:"image_url" gorm:"column:image_url;size:512"`
	Description string `json:"description" gorm:"type:text"`

	// Relations
	TrackingEvents []TrackingEvent `json:"-" gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
	Leads          []Lead          `json:"-" gorm:"foreignKey:CarID;constraint:OnDelete:SET NULL"`
}
