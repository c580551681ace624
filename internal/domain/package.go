package domain

// Hotel represents a hotel stay included in a package
type Hotel struct {
	Name   string
	Rating int
	Nights int
	City   string
}

// DepartureDate represents a bookable departure of a package.
// Dates are stored as YYYY-MM-DD strings and matched by string equality.
type DepartureDate struct {
	Date           string
	ReturnDate     string
	PricePerPerson int64 // minor-unit-free integer currency
	Available      bool
}

// Package represents immutable travel-package reference data
type Package struct {
	ID             string
	Name           string
	LeavingFrom    string
	Destination    string
	Duration       int // nights
	Itinerary      string
	Description    string
	Inclusions     []string
	Hotels         []Hotel
	DepartureDates []DepartureDate
}

// FindDeparture returns the departure matching the given date string exactly
func (p *Package) FindDeparture(date string) (*DepartureDate, bool) {
	for i := range p.DepartureDates {
		if p.DepartureDates[i].Date == date {
			return &p.DepartureDates[i], true
		}
	}
	return nil, false
}
