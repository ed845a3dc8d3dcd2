package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment records one captured payment per booking. The unique index on
// BookingID makes a second payment for the same booking fail at the store.
// Amount is not checked against the booking total.
type Payment struct {
	gorm.Model
	UserID        uint      `json:"userID" gorm:"not null;index"`
	BookingID     uint      `json:"bookingID" gorm:"not null;uniqueIndex"`
	Amount        float64   `json:"amount" gorm:"type:decimal(10,2)"`
	PaymentDate   time.Time `json:"paymentDate" gorm:"autoCreateTime"`
	PaymentMethod string    `json:"paymentMethod" gorm:"size:100"`

	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}
