package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"asiadrive/internal/model"
)

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate brings the schema up to date for all catalog models. AutoMigrate
// creates missing tables and adds missing columns; it never drops or
// reorders, so it is safe against a database that already holds data.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Car{},
		&model.Lead{},
		&model.TrackingEvent{},
	)
}
