package utils

import "crypto/rand"

// GenerateVerificationCode returns an n-digit numeric OTP.
func GenerateVerificationCode(n int) string {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return ""
	}
	const digits = "0123456789"
	out := make([]byte, n)
	for i, v := range b {
		out[i] = digits[int(v)%len(digits)]
	}
	return string(out)
}
