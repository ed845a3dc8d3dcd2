package models

import (
	"testing"

	"gorm.io/gorm"
)

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Unscoped().Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

func TestDeleteUserCascadesTransitively(t *testing.T) {
	db := newTestDB(t)

	host := createTestUser(t, db, "host")
	apartment := createTestApartment(t, db, host.ID, 120.00)

	profile := UserProfile{UserID: host.ID, PhoneNumber: "+12345678901"}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create profile: %v", err)
	}

	booking := Booking{
		UserID:      host.ID,
		ApartmentID: apartment.ID,
		StartDate:   date(2024, 4, 1),
		EndDate:     date(2024, 4, 5),
		Status:      BookingStatusConfirmed,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	payment := Payment{UserID: host.ID, BookingID: booking.ID, Amount: 480.00, PaymentMethod: "card"}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("create payment: %v", err)
	}

	review := Review{UserID: host.ID, ApartmentID: apartment.ID, Rating: 4, Comment: "ok"}
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("create review: %v", err)
	}

	photo := Photo{ApartmentID: apartment.ID, Image: "apartment_photos/x"}
	if err := db.Create(&photo).Error; err != nil {
		t.Fatalf("create photo: %v", err)
	}

	wishList := WishList{UserID: host.ID}
	if err := db.Create(&wishList).Error; err != nil {
		t.Fatalf("create wishlist: %v", err)
	}
	if err := db.Model(&wishList).Association("Apartments").Append(&apartment); err != nil {
		t.Fatalf("append wishlist apartment: %v", err)
	}

	if err := DeleteUserCascade(db, host.ID); err != nil {
		t.Fatalf("DeleteUserCascade: %v", err)
	}

	for name, model := range map[string]interface{}{
		"users":      &User{},
		"profiles":   &UserProfile{},
		"apartments": &Apartment{},
		"bookings":   &Booking{},
		"payments":   &Payment{},
		"reviews":    &Review{},
		"photos":     &Photo{},
		"wishlists":  &WishList{},
	} {
		if count := countRows(t, db, model); count != 0 {
			t.Errorf("%s: %d orphan rows remain", name, count)
		}
	}

	var joinRows int64
	db.Table("wish_list_apartments").Count(&joinRows)
	if joinRows != 0 {
		t.Errorf("wish_list_apartments: %d orphan join rows remain", joinRows)
	}
}

func TestDeleteApartmentCascade(t *testing.T) {
	db := newTestDB(t)

	host := createTestUser(t, db, "host")
	guest := createTestUser(t, db, "guest")
	apartment := createTestApartment(t, db, host.ID, 90.00)

	booking := Booking{
		UserID:      guest.ID,
		ApartmentID: apartment.ID,
		StartDate:   date(2024, 5, 1),
		EndDate:     date(2024, 5, 3),
		Status:      BookingStatusPending,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("create booking: %v", err)
	}

	review := Review{UserID: guest.ID, ApartmentID: apartment.ID, Rating: 5, Comment: "great"}
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("create review: %v", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return DeleteApartmentsCascade(tx, []uint{apartment.ID})
	})
	if err != nil {
		t.Fatalf("DeleteApartmentsCascade: %v", err)
	}

	if count := countRows(t, db, &Apartment{}); count != 0 {
		t.Errorf("apartments remain: %d", count)
	}
	if count := countRows(t, db, &Booking{}); count != 0 {
		t.Errorf("bookings remain: %d", count)
	}
	if count := countRows(t, db, &Review{}); count != 0 {
		t.Errorf("reviews remain: %d", count)
	}

	// Guests themselves are untouched.
	if count := countRows(t, db, &User{}); count != 2 {
		t.Errorf("users = %d, want 2", count)
	}
}
