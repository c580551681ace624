package get_package_details

import "github.com/m04kA/SMC-TravelService/internal/service/packages/models"

// PackageDetailsResponse HTTP модель деталей пакета
type PackageDetailsResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Itinerary   string          `json:"itinerary"`
	Description string          `json:"description"`
	Inclusions  []string        `json:"inclusions"`
	Hotels      []HotelResponse `json:"hotels"`
	Duration    int             `json:"duration"`
}

// HotelResponse HTTP модель отеля
type HotelResponse struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Nights int    `json:"nights"`
	City   string `json:"city"`
}

// FromDetails конвертирует модель сервиса в HTTP ответ
func FromDetails(d *models.PackageDetails) *PackageDetailsResponse {
	resp := &PackageDetailsResponse{
		ID:          d.ID,
		Name:        d.Name,
		Itinerary:   d.Itinerary,
		Description: d.Description,
		Inclusions:  d.Inclusions,
		Duration:    d.Duration,
	}
	for _, h := range d.Hotels {
		resp.Hotels = append(resp.Hotels, HotelResponse{
			Name:   h.Name,
			Rating: h.Rating,
			Nights: h.Nights,
			City:   h.City,
		})
	}
	return resp
}
