package search_packages

import (
	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/internal/service/packages/models"
)

// SearchRequest HTTP модель фильтров поиска. Имена полей повторяют
// контракт исходного фронтенда.
type SearchRequest struct {
	LeavingFrom    string `json:"Leaving From"`
	Destination    string `json:"Destination"`
	LeavingOn      string `json:"Leaving On"`
	Duration       string `json:"Duration"`
	TravellerCount string `json:"Traveller Count"`
}

// PackageSummaryResponse HTTP модель результата поиска
type PackageSummaryResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Destination    string                  `json:"destination"`
	LeavingFrom    string                  `json:"leaving_from"`
	Duration       int                     `json:"duration"`
	Itinerary      string                  `json:"itinerary"`
	DepartureDates []DepartureDateResponse `json:"departure_dates"`
}

// DepartureDateResponse HTTP модель даты вылета
type DepartureDateResponse struct {
	Date           string `json:"date"`
	ReturnDate     string `json:"return_date"`
	PricePerPerson int64  `json:"price_per_person"`
	Available      bool   `json:"available"`
}

// ToFilter конвертирует HTTP запрос в фильтр сервиса
func (r *SearchRequest) ToFilter() models.SearchFilter {
	return models.SearchFilter{
		LeavingFrom:    r.LeavingFrom,
		Destination:    r.Destination,
		LeavingOn:      r.LeavingOn,
		Duration:       r.Duration,
		TravellerCount: r.TravellerCount,
	}
}

// FromDepartureDates конвертирует доменные даты вылета в HTTP модель
func FromDepartureDates(dates []domain.DepartureDate) []DepartureDateResponse {
	result := make([]DepartureDateResponse, 0, len(dates))
	for _, d := range dates {
		result = append(result, DepartureDateResponse{
			Date:           d.Date,
			ReturnDate:     d.ReturnDate,
			PricePerPerson: d.PricePerPerson,
			Available:      d.Available,
		})
	}
	return result
}

// FromSummaries конвертирует результаты сервиса в HTTP модель
func FromSummaries(summaries []models.PackageSummary) []PackageSummaryResponse {
	result := make([]PackageSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		result = append(result, PackageSummaryResponse{
			ID:             s.ID,
			Name:           s.Name,
			Destination:    s.Destination,
			LeavingFrom:    s.LeavingFrom,
			Duration:       s.Duration,
			Itinerary:      s.Itinerary,
			DepartureDates: FromDepartureDates(s.DepartureDates),
		})
	}
	return result
}
