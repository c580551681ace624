package bookings

import (
	"context"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// BookingStore интерфейс хранилища бронирований
type BookingStore interface {
	GetByRef(ctx context.Context, ref string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
