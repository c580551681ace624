package compute_quote

import (
	computeQuote "github.com/m04kA/SMC-TravelService/internal/usecase/compute_quote"
)

// QuoteRequest HTTP модель запроса котировки
type QuoteRequest struct {
	PackageID     string `json:"package_id"`
	DepartureDate string `json:"departure_date"`
	RoomConfig    string `json:"room_config"`
}

// TravellerEntityResponse HTTP модель слота туриста
type TravellerEntityResponse struct {
	Type string `json:"type"`
}

// QuoteResponse HTTP модель разбивки цены
type QuoteResponse struct {
	PricePerPerson    int64                     `json:"price_per_person"`
	TotalAdults       int                       `json:"total_adults"`
	Subtotal          int64                     `json:"subtotal"`
	TCS               int64                     `json:"tcs"`
	Total             int64                     `json:"total"`
	TravellerEntities []TravellerEntityResponse `json:"traveller_entities"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *computeQuote.Request {
	return &computeQuote.Request{
		PackageID:     r.PackageID,
		DepartureDate: r.DepartureDate,
		RoomConfig:    r.RoomConfig,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *computeQuote.Response) *QuoteResponse {
	out := &QuoteResponse{
		PricePerPerson:    resp.PricePerPerson,
		TotalAdults:       resp.TotalAdults,
		Subtotal:          resp.Subtotal,
		TCS:               resp.TCS,
		Total:             resp.Total,
		TravellerEntities: make([]TravellerEntityResponse, 0, len(resp.TravellerEntities)),
	}
	for _, e := range resp.TravellerEntities {
		out.TravellerEntities = append(out.TravellerEntities, TravellerEntityResponse{Type: string(e.Type)})
	}
	return out
}
