package models

import "gorm.io/gorm"

// Photo is one gallery image of an apartment. Image is a blob-store key
// under apartment_photos/.
type Photo struct {
	gorm.Model
	ApartmentID uint   `json:"apartmentID" gorm:"not null;index"`
	Image       string `json:"image" gorm:"size:512;not null"`
}
