package models

import (
	"math"
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking reserves an apartment for a date range. TotalPrice is derived:
// the save hook recomputes it from the nightly rate on every insert and
// update, overwriting whatever the caller supplied. Nothing rejects
// end before start or an overlapping confirmed booking for the same
// apartment; both are accepted as-is.
type Booking struct {
	gorm.Model
	UserID      uint      `json:"userID" gorm:"not null;index"`
	ApartmentID uint      `json:"apartmentID" gorm:"not null;index"`
	StartDate   time.Time `json:"startDate" gorm:"type:date;not null"`
	EndDate     time.Time `json:"endDate" gorm:"type:date;not null"`
	Status      string    `json:"status" gorm:"type:varchar(20);default:'pending'"` // pending, confirmed, cancelled
	TotalPrice  float64   `json:"totalPrice" gorm:"type:decimal(10,2)"`

	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Apartment *Apartment `json:"apartment,omitempty" gorm:"foreignKey:ApartmentID"`
	Payment   *Payment   `json:"payment,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// TotalPriceFor computes nights times nightly rate, rounded to cents.
// Negative ranges yield negative totals; that is up to the caller.
func TotalPriceFor(startDate, endDate time.Time, pricePerNight float64) float64 {
	nights := int(endDate.Sub(startDate).Hours() / 24)
	return math.Round(float64(nights)*pricePerNight*100) / 100
}

// BeforeSave recomputes the total from the referenced apartment's current
// nightly rate, unconditionally, on both create and update.
func (b *Booking) BeforeSave(tx *gorm.DB) error {
	var apartment Apartment
	if err := tx.First(&apartment, b.ApartmentID).Error; err != nil {
		return err
	}
	b.TotalPrice = TotalPriceFor(b.StartDate, b.EndDate, apartment.PricePerNight)
	return nil
}
