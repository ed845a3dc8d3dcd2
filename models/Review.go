package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID      uint   `json:"userID" gorm:"not null;index"`
	ApartmentID uint   `json:"apartmentID" gorm:"not null;index"`
	Rating      int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment     string `json:"comment" gorm:"type:text"`

	User      *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Apartment *Apartment `json:"apartment,omitempty" gorm:"foreignKey:ApartmentID"`
}

// BeforeSave mirrors the check constraint so a bad rating fails before the
// write reaches the store.
func (r *Review) BeforeSave(tx *gorm.DB) error {
	if r.Rating < 1 || r.Rating > 5 {
		return NewValidationError("rating", "must be between 1 and 5")
	}
	return nil
}
