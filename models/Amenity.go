package models

import "gorm.io/gorm"

// Amenity is a feature tag attached to apartments (wifi, parking, pool...).
// Icon is a blob-store key under amenity_icons/. Name carries no uniqueness.
type Amenity struct {
	gorm.Model
	Name string `json:"name" gorm:"size:100;not null"`
	Icon string `json:"icon" gorm:"size:512"`

	Apartments []Apartment `json:"-" gorm:"many2many:apartment_amenities"`
}
