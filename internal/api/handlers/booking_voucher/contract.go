package booking_voucher

import (
	"context"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

type BookingService interface {
	GetByRef(ctx context.Context, ref string) (*domain.Booking, error)
}

type VoucherService interface {
	Generate(ctx context.Context, booking *domain.Booking) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
