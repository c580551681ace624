package domain

import (
	"errors"
	"regexp"
)

var (
	// ErrInvalidEmail is returned when the contact email does not have a
	// local@domain.tld shape
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidPhone is returned when the contact phone is not exactly 10 digits
	ErrInvalidPhone = errors.New("invalid phone")

	// ErrCityRequired is returned when the contact city is empty
	ErrCityRequired = errors.New("city is required")
)

var (
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

// ContactInfo holds the per-request contact details. Validated, not persisted
// on its own.
type ContactInfo struct {
	Email string
	Phone string
	City  string
}

// Validate checks email shape, phone length and city presence
func (c ContactInfo) Validate() error {
	if c.Email == "" || !emailRegex.MatchString(c.Email) {
		return ErrInvalidEmail
	}
	if c.Phone == "" || !phoneRegex.MatchString(c.Phone) {
		return ErrInvalidPhone
	}
	if c.City == "" {
		return ErrCityRequired
	}
	return nil
}
