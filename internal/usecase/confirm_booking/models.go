package confirm_booking

import (
	"time"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// Request модель запроса на подтверждение бронирования
type Request struct {
	PackageID     string
	DepartureDate string
	RoomConfig    string

	Travellers []domain.Traveller
	Contact    domain.ContactInfo

	// PassportAck должен быть булевым true; nil означает, что клиент
	// не передал подтверждение
	PassportAck *bool

	GSTEnabled  bool
	GSTNumber   string
	CompanyName string

	StepsCompleted []string
	PromoCode      string
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingRef      string
	PackageID       string
	DepartureDate   string
	Subtotal        int64
	TCS             int64
	DiscountApplied int64
	Total           int64
	CreatedAt       time.Time
}
