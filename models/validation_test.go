package models

import (
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestUserProfilePhoneNumberValidation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "alice")

	profile := UserProfile{UserID: user.ID, PhoneNumber: "12345"}
	err := db.Create(&profile).Error
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("short phone number: got %v, want ValidationError", err)
	}

	profile.PhoneNumber = "+12345678901"
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("valid phone number rejected: %v", err)
	}
}

func TestOneProfilePerUser(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "bob")

	first := UserProfile{UserID: user.ID, PhoneNumber: "+12345678901"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create first profile: %v", err)
	}

	second := UserProfile{UserID: user.ID, PhoneNumber: "+12345678902"}
	if err := db.Create(&second).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("second profile: got %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestReviewRatingBounds(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "carol")
	apartment := createTestApartment(t, db, user.ID, 75.00)

	for _, rating := range []int{0, 6, -1} {
		review := Review{UserID: user.ID, ApartmentID: apartment.ID, Rating: rating}
		err := db.Create(&review).Error
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Errorf("rating %d: got %v, want ValidationError", rating, err)
		}
	}

	for rating := 1; rating <= 5; rating++ {
		review := Review{UserID: user.ID, ApartmentID: apartment.ID, Rating: rating, Comment: "fine stay"}
		if err := db.Create(&review).Error; err != nil {
			t.Errorf("rating %d rejected: %v", rating, err)
		}
	}
}

func TestApartmentRejectsNegativePriceAndSize(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "dave")

	apartment := Apartment{Name: "Basement", OwnerID: user.ID, PricePerNight: -1}
	err := db.Create(&apartment).Error
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("negative price: got %v, want ValidationError", err)
	}

	apartment = Apartment{Name: "Basement", OwnerID: user.ID, PricePerNight: 10, SizeSqMeters: -5}
	err = db.Create(&apartment).Error
	if !errors.As(err, &validationErr) {
		t.Fatalf("negative size: got %v, want ValidationError", err)
	}
}

func TestOnePaymentPerBooking(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, "erin")
	apartment := createTestApartment(t, db, user.ID, 100.00)

	booking := Booking{
		UserID:      user.ID,
		ApartmentID: apartment.ID,
		StartDate:   date(2024, 2, 1),
		EndDate:     date(2024, 2, 3),
		Status:      BookingStatusConfirmed,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	first := Payment{UserID: user.ID, BookingID: booking.ID, Amount: 200.00, PaymentMethod: "card"}
	if err := db.Create(&first).Error; err != nil {
		t.Fatalf("create first payment: %v", err)
	}

	second := Payment{UserID: user.ID, BookingID: booking.ID, Amount: 200.00, PaymentMethod: "card"}
	if err := db.Create(&second).Error; !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("second payment: got %v, want gorm.ErrDuplicatedKey", err)
	}

	// The first payment is unaffected.
	var stored Payment
	if err := db.First(&stored, first.ID).Error; err != nil {
		t.Fatalf("first payment gone after duplicate attempt: %v", err)
	}
	if stored.Amount != 200.00 {
		t.Fatalf("first payment amount = %v, want 200.00", stored.Amount)
	}
}
