package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `json:"username" gorm:"size:150;not null;uniqueIndex"`
	Email    string `json:"email" gorm:"size:256;uniqueIndex"`
	Password string `json:"-"`

	// Everything a user owns goes with the user.
	Profile              *UserProfile          `json:"profile,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	EmailVerification    *EmailVerification    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	PhoneVerification    *PhoneVerification    `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	SocialIDVerification *SocialIDVerification `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Apartments           []Apartment           `json:"apartments,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Bookings             []Booking             `json:"bookings,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Reviews              []Review              `json:"reviews,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Payments             []Payment             `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	WishLists            []WishList            `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
