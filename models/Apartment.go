package models

import (
	"gorm.io/gorm"
)

type Apartment struct {
	gorm.Model
	Name          string  `json:"name" gorm:"size:100;not null"`
	Description   string  `json:"description" gorm:"type:text"`
	Address       string  `json:"address" gorm:"size:255"`
	City          string  `json:"city" gorm:"size:100;index"`
	Country       string  `json:"country" gorm:"size:100;index"`
	PricePerNight float64 `json:"pricePerNight" gorm:"type:decimal(10,2)"`
	NumBedrooms   uint    `json:"numBedrooms"`
	NumBathrooms  uint    `json:"numBathrooms"`
	MaxGuests     uint    `json:"maxGuests"`
	SizeSqMeters  float64 `json:"sizeSqMeters" gorm:"type:decimal(10,2)"`
	MainImage     string  `json:"mainImage" gorm:"size:512"`
	OwnerID       uint    `json:"ownerID" gorm:"not null;index"`

	Owner     *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Amenities []Amenity `json:"amenities,omitempty" gorm:"many2many:apartment_amenities"`
	Photos    []Photo   `json:"photos,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Bookings  []Booking `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Reviews   []Review  `json:"reviews,omitempty" gorm:"constraint:OnDelete:CASCADE"`
}

// BeforeSave keeps price and size non-negative. Bedroom, bathroom and guest
// counts are unsigned already.
func (a *Apartment) BeforeSave(tx *gorm.DB) error {
	if a.PricePerNight < 0 {
		return NewValidationError("pricePerNight", "must not be negative")
	}
	if a.SizeSqMeters < 0 {
		return NewValidationError("sizeSqMeters", "must not be negative")
	}
	return nil
}
