package confirm_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/internal/service/promo"
)

// PricingService интерфейс серверного расчета котировок
type PricingService interface {
	Quote(ctx context.Context, packageID, departureDate, roomConfigSpec string) (*domain.Quote, error)
}

// PromoService интерфейс применения промокодов
type PromoService interface {
	Apply(ctx context.Context, code string, currentTotal int64) (*promo.Result, error)
}

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// RefProvider интерфейс генерации опаковых ссылок бронирования
// (для фиксации в тестах)
type RefProvider interface {
	NewRef() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDRefProvider генератор ссылок на основе UUIDv4 для production
type UUIDRefProvider struct{}

// NewRef возвращает новую случайную ссылку
func (p *UUIDRefProvider) NewRef() string {
	return uuid.NewString()
}
