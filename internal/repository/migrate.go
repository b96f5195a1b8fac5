package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table this repository layer owns.
// cmd/seed and the test suites run it; production postgres schemas are
// managed the same way at deploy time.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&categoryModel{},
		&providerModel{},
		&bookingModel{},
		&reviewModel{},
		&sessionModel{},
	)
}
