package database

import (
	"booking-app/internal/domain/booking"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres database and migrates the schema. The handle
// is returned to the caller; nothing in this package keeps global state.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the three directory tables. Tests reuse it
// against their own handles.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&booking.Venue{},
		&booking.Artist{},
		&booking.Show{},
	)
}
