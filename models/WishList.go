package models

import "gorm.io/gorm"

// WishList is a user's saved-listings collection. One per user is the
// intent, but UserID is only indexed, not unique, so nothing stops a
// second list from being created.
type WishList struct {
	gorm.Model
	UserID uint `json:"userID" gorm:"not null;index"`

	User       *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Apartments []Apartment `json:"apartments,omitempty" gorm:"many2many:wish_list_apartments"`
}
