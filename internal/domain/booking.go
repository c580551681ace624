package domain

import "time"

// Booking is an immutable record created exactly once per successful
// confirmation, keyed by its opaque BookingRef
type Booking struct {
	BookingRef    string
	PackageID     string
	DepartureDate string
	RoomConfig    string // raw room-configuration string, kept for audit
	Travellers    []Traveller
	Contact       ContactInfo

	GSTEnabled  bool
	GSTNumber   *string
	CompanyName *string

	Subtotal        int64
	TCS             int64
	DiscountApplied int64
	Total           int64

	CreatedAt time.Time
}

// Enquiry is an immutable contact enquiry about a package, keyed by Ref
type Enquiry struct {
	Ref       string
	Contact   ContactInfo
	PackageID string
	CreatedAt time.Time
}
