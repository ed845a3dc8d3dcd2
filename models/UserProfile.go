package models

import (
	"regexp"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// phoneNumberPattern accepts an optional leading +, an optional literal 1,
// then 9 to 15 digits.
var phoneNumberPattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// ValidPhoneNumber reports whether the value is a storable phone number.
func ValidPhoneNumber(phoneNumber string) bool {
	return phoneNumberPattern.MatchString(phoneNumber)
}

// UserProfile holds the verification state and extended identity of a user.
// Exactly one profile per user, enforced by the unique index on UserID.
type UserProfile struct {
	gorm.Model
	UserID             uint           `json:"userID" gorm:"not null;uniqueIndex"`
	PhoneNumber        string         `json:"phoneNumber" gorm:"size:15"`
	IsPhoneVerified    bool           `json:"isPhoneVerified" gorm:"default:false"`
	IsEmailVerified    bool           `json:"isEmailVerified" gorm:"default:false"`
	SocialIDCardNumber string         `json:"socialIDCardNumber" gorm:"size:20"`
	IsSocialIDVerified bool           `json:"isSocialIDVerified" gorm:"default:false"`
	Languages          datatypes.JSON `json:"languages"`
}

// BeforeSave rejects malformed phone numbers before anything is written.
func (p *UserProfile) BeforeSave(tx *gorm.DB) error {
	if !ValidPhoneNumber(p.PhoneNumber) {
		return NewValidationError("phoneNumber", "must match an optional +, an optional 1, then 9 to 15 digits")
	}
	return nil
}
