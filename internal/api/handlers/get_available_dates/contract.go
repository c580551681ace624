package get_available_dates

import (
	"context"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

type PackagesService interface {
	AvailableDates(ctx context.Context, id string, month string) ([]domain.DepartureDate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
