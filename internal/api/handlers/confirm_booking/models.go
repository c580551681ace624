package confirm_booking

import (
	"time"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	confirmBooking "github.com/m04kA/SMC-TravelService/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest HTTP модель запроса подтверждения бронирования.
// Имена полей повторяют контракт исходного фронтенда.
type ConfirmBookingRequest struct {
	PackageID     string             `json:"package_id"`
	DepartureDate string             `json:"departure_date"`
	RoomConfig    string             `json:"room_config"`
	Travellers    []domain.Traveller `json:"travellers"`
	Contact       ContactPayload     `json:"contact"`
	PassportAck   *bool              `json:"passport_ack"`
	GSTEnabled    bool               `json:"gst_enabled"`
	GSTNumber     string             `json:"gst_number"`
	CompanyName   string             `json:"company_name"`
	StepsComplete []string           `json:"steps_completed"`
	PromoCode     string             `json:"promo_code"`
}

// ContactPayload HTTP модель контактных данных
type ContactPayload struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// ConfirmBookingResponse HTTP модель ответа с подтвержденным бронированием
type ConfirmBookingResponse struct {
	BookingRef      string `json:"booking_ref"`
	PackageID       string `json:"package_id"`
	DepartureDate   string `json:"departure_date"`
	Subtotal        int64  `json:"subtotal"`
	TCS             int64  `json:"tcs"`
	DiscountApplied int64  `json:"discount_applied"`
	Total           int64  `json:"total"`
	CreatedAt       string `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmBookingRequest) ToUseCaseRequest() *confirmBooking.Request {
	return &confirmBooking.Request{
		PackageID:     r.PackageID,
		DepartureDate: r.DepartureDate,
		RoomConfig:    r.RoomConfig,
		Travellers:    r.Travellers,
		Contact: domain.ContactInfo{
			Email: r.Contact.Email,
			Phone: r.Contact.Phone,
			City:  r.Contact.City,
		},
		PassportAck:    r.PassportAck,
		GSTEnabled:     r.GSTEnabled,
		GSTNumber:      r.GSTNumber,
		CompanyName:    r.CompanyName,
		StepsCompleted: r.StepsComplete,
		PromoCode:      r.PromoCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		BookingRef:      resp.BookingRef,
		PackageID:       resp.PackageID,
		DepartureDate:   resp.DepartureDate,
		Subtotal:        resp.Subtotal,
		TCS:             resp.TCS,
		DiscountApplied: resp.DiscountApplied,
		Total:           resp.Total,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
