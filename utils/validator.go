// utils/validator.go - Input validation
package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	panRegex    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstinRegex  = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][0-9A-Z]Z[0-9A-Z]$`)
	aadharRegex = regexp.MustCompile(`^[0-9]{12}$`)
)

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}

	return true, ""
}

// ValidatePAN checks the Indian PAN format (AAAAA9999A)
func ValidatePAN(pan string) bool {
	return panRegex.MatchString(strings.ToUpper(strings.TrimSpace(pan)))
}

// ValidateGSTIN checks the Indian GST number format
func ValidateGSTIN(gstin string) bool {
	return gstinRegex.MatchString(strings.ToUpper(strings.TrimSpace(gstin)))
}

// ValidateAadhar checks the 12-digit Aadhar format
func ValidateAadhar(aadhar string) bool {
	return aadharRegex.MatchString(strings.TrimSpace(aadhar))
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
