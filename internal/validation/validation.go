// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"unicode"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	// Check maximum length (prevent unreasonable inputs)
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	hasUpper := false
	hasLower := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsLower(r) {
			hasLower = true
		}
	}
	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}

	if !digitRegex.MatchString(password) {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}

// ValidateFullName checks the optional display name.
func ValidateFullName(name string) error {
	if len(name) > 120 {
		return fmt.Errorf("full name must not exceed 120 characters")
	}
	return nil
}

// ValidateLicenseNumber checks the medical license number format.
// Licenses are issuer-specific; only shape is validated here.
func ValidateLicenseNumber(license string) error {
	if len(license) < 4 {
		return fmt.Errorf("license number must be at least 4 characters long")
	}
	if len(license) > 64 {
		return fmt.Errorf("license number must not exceed 64 characters")
	}
	if !regexp.MustCompile(`^[A-Za-z0-9\-/]+$`).MatchString(license) {
		return fmt.Errorf("license number can only contain letters, numbers, hyphens, and slashes")
	}
	return nil
}
