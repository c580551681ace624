package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// Seed формат TOML-файла справочника: пакеты и промокоды
type Seed struct {
	Packages []seedPackage `toml:"packages"`
	Promos   []seedPromo   `toml:"promos"`
}

type seedPackage struct {
	ID             string          `toml:"id"`
	Name           string          `toml:"name"`
	LeavingFrom    string          `toml:"leaving_from"`
	Destination    string          `toml:"destination"`
	Duration       int             `toml:"duration"`
	Itinerary      string          `toml:"itinerary"`
	Description    string          `toml:"description"`
	Inclusions     []string        `toml:"inclusions"`
	Hotels         []seedHotel     `toml:"hotels"`
	DepartureDates []seedDeparture `toml:"departure_dates"`
}

type seedHotel struct {
	Name   string `toml:"name"`
	Rating int    `toml:"rating"`
	Nights int    `toml:"nights"`
	City   string `toml:"city"`
}

type seedDeparture struct {
	Date           string `toml:"date"`
	ReturnDate     string `toml:"return_date"`
	PricePerPerson int64  `toml:"price_per_person"`
	Available      bool   `toml:"available"`
}

// LoadSeed загружает seed-файл справочника
func LoadSeed(path string) (*Seed, error) {
	var seed Seed
	if _, err := toml.DecodeFile(path, &seed); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadSeed, path, err)
	}
	return &seed, nil
}

func (p *seedPackage) toDomain() *domain.Package {
	pkg := &domain.Package{
		ID:          p.ID,
		Name:        p.Name,
		LeavingFrom: p.LeavingFrom,
		Destination: p.Destination,
		Duration:    p.Duration,
		Itinerary:   p.Itinerary,
		Description: p.Description,
		Inclusions:  append([]string(nil), p.Inclusions...),
	}
	for _, h := range p.Hotels {
		pkg.Hotels = append(pkg.Hotels, domain.Hotel{
			Name:   h.Name,
			Rating: h.Rating,
			Nights: h.Nights,
			City:   h.City,
		})
	}
	for _, d := range p.DepartureDates {
		pkg.DepartureDates = append(pkg.DepartureDates, domain.DepartureDate{
			Date:           d.Date,
			ReturnDate:     d.ReturnDate,
			PricePerPerson: d.PricePerPerson,
			Available:      d.Available,
		})
	}
	return pkg
}

func (p *seedPromo) toDomain() *domain.PromoCode {
	return &domain.PromoCode{
		Code:   p.Code,
		Amount: p.Amount,
		Type:   domain.PromoType(p.Type),
	}
}

type seedPromo struct {
	Code   string `toml:"code"`
	Amount int64  `toml:"amount"`
	Type   string `toml:"type"`
}
