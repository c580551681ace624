package compute_quote

import "github.com/m04kA/SMC-TravelService/internal/domain"

// Request модель запроса котировки
type Request struct {
	PackageID     string
	DepartureDate string
	RoomConfig    string
}

// Response модель ответа с разбивкой цены
type Response struct {
	PricePerPerson    int64
	TotalAdults       int
	Subtotal          int64
	TCS               int64
	Total             int64
	TravellerEntities []domain.TravellerEntity
}

// FromDomainQuote конвертирует доменную котировку в ответ usecase
func FromDomainQuote(q *domain.Quote) *Response {
	return &Response{
		PricePerPerson:    q.PricePerPerson,
		TotalAdults:       q.TotalAdults,
		Subtotal:          q.Subtotal,
		TCS:               q.TCS,
		Total:             q.Total,
		TravellerEntities: q.TravellerEntities,
	}
}
