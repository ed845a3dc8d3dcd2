package models

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&User{},
		&UserProfile{},
		&EmailVerification{},
		&PhoneVerification{},
		&SocialIDVerification{},
		&Amenity{},
		&Apartment{},
		&Photo{},
		&Booking{},
		&Review{},
		&Payment{},
		&WishList{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) User {
	t.Helper()
	user := User{Username: username, Email: username + "@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createTestApartment(t *testing.T, db *gorm.DB, ownerID uint, pricePerNight float64) Apartment {
	t.Helper()
	apartment := Apartment{
		Name:          "Riverside Loft",
		Address:       "12 Quay St",
		City:          "Lisbon",
		Country:       "Portugal",
		PricePerNight: pricePerNight,
		NumBedrooms:   2,
		NumBathrooms:  1,
		MaxGuests:     4,
		SizeSqMeters:  63.5,
		OwnerID:       ownerID,
	}
	if err := db.Create(&apartment).Error; err != nil {
		t.Fatalf("create apartment: %v", err)
	}
	return apartment
}
