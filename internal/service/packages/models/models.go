package models

import "github.com/m04kA/SMC-TravelService/internal/domain"

// SearchFilter фильтры поиска пакетов. Пустые значения не фильтруют.
type SearchFilter struct {
	LeavingFrom    string
	Destination    string
	LeavingOn      string // дата вылета, YYYY-MM-DD
	Duration       string // количество ночей, сравнивается как строка
	TravellerCount string // принимается, но не участвует в фильтрации
}

// PackageSummary краткое описание пакета в результатах поиска
type PackageSummary struct {
	ID             string
	Name           string
	Destination    string
	LeavingFrom    string
	Duration       int
	Itinerary      string
	DepartureDates []domain.DepartureDate
}

// PackageDetails подробное описание пакета
type PackageDetails struct {
	ID          string
	Name        string
	Itinerary   string
	Description string
	Inclusions  []string
	Hotels      []domain.Hotel
	Duration    int
}

// FromDomainSummary конвертирует доменный пакет в краткое описание
func FromDomainSummary(pkg *domain.Package) PackageSummary {
	return PackageSummary{
		ID:             pkg.ID,
		Name:           pkg.Name,
		Destination:    pkg.Destination,
		LeavingFrom:    pkg.LeavingFrom,
		Duration:       pkg.Duration,
		Itinerary:      pkg.Itinerary,
		DepartureDates: pkg.DepartureDates,
	}
}

// FromDomainDetails конвертирует доменный пакет в подробное описание
func FromDomainDetails(pkg *domain.Package) PackageDetails {
	return PackageDetails{
		ID:          pkg.ID,
		Name:        pkg.Name,
		Itinerary:   pkg.Itinerary,
		Description: pkg.Description,
		Inclusions:  pkg.Inclusions,
		Hotels:      pkg.Hotels,
		Duration:    pkg.Duration,
	}
}
