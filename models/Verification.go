package models

import "gorm.io/gorm"

// One row per user for each verification channel. The code is the 6-digit
// OTP most recently issued; Verified flips once the user echoes it back.

type EmailVerification struct {
	gorm.Model
	UserID   uint   `json:"userID" gorm:"not null;uniqueIndex"`
	Code     string `json:"-" gorm:"size:6"`
	Verified bool   `json:"verified" gorm:"default:false"`
}

type PhoneVerification struct {
	gorm.Model
	UserID   uint   `json:"userID" gorm:"not null;uniqueIndex"`
	Code     string `json:"-" gorm:"size:6"`
	Verified bool   `json:"verified" gorm:"default:false"`
}

// SocialIDVerification tracks review of an uploaded identity document.
// Document is a blob-store key under social_id_documents/, never the bytes.
type SocialIDVerification struct {
	gorm.Model
	UserID   uint   `json:"userID" gorm:"not null;uniqueIndex"`
	Document string `json:"document" gorm:"size:512"`
	Verified bool   `json:"verified" gorm:"default:false"`
}
