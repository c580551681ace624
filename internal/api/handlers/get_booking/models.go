package get_booking

import (
	"time"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// BookingResponse HTTP модель сохраненного бронирования
type BookingResponse struct {
	BookingRef      string             `json:"booking_ref"`
	PackageID       string             `json:"package_id"`
	DepartureDate   string             `json:"departure_date"`
	RoomConfig      string             `json:"room_config"`
	Travellers      []domain.Traveller `json:"travellers"`
	Contact         ContactResponse    `json:"contact"`
	GSTEnabled      bool               `json:"gst_enabled"`
	GSTNumber       *string            `json:"gst_number,omitempty"`
	CompanyName     *string            `json:"company_name,omitempty"`
	Subtotal        int64              `json:"subtotal"`
	TCS             int64              `json:"tcs"`
	DiscountApplied int64              `json:"discount_applied"`
	Total           int64              `json:"total"`
	CreatedAt       string             `json:"created_at"`
}

// ContactResponse HTTP модель контактных данных
type ContactResponse struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// FromDomainBooking конвертирует доменное бронирование в HTTP модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		BookingRef:    b.BookingRef,
		PackageID:     b.PackageID,
		DepartureDate: b.DepartureDate,
		RoomConfig:    b.RoomConfig,
		Travellers:    b.Travellers,
		Contact: ContactResponse{
			Email: b.Contact.Email,
			Phone: b.Contact.Phone,
			City:  b.Contact.City,
		},
		GSTEnabled:      b.GSTEnabled,
		GSTNumber:       b.GSTNumber,
		CompanyName:     b.CompanyName,
		Subtotal:        b.Subtotal,
		TCS:             b.TCS,
		DiscountApplied: b.DiscountApplied,
		Total:           b.Total,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}
