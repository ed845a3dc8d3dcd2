package utils

import (
	"apartment-booking-server/models"
	"regexp"
)

var phoneSeparators = regexp.MustCompile(`[\s().-]`)

// FormatPhoneNumber strips spaces, dashes and parentheses so user input
// like "+1 (234) 567-8901" stores as "+12345678901".
func FormatPhoneNumber(phoneNumber string) string {
	return phoneSeparators.ReplaceAllString(phoneNumber, "")
}

// ValidatePhoneNumber checks a formatted number against the schema rule:
// optional +, optional 1, then 9 to 15 digits.
func ValidatePhoneNumber(phoneNumber string) bool {
	return models.ValidPhoneNumber(phoneNumber)
}
