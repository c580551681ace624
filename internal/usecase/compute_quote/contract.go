package compute_quote

import (
	"context"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// PricingService интерфейс серверного расчета котировок
type PricingService interface {
	Quote(ctx context.Context, packageID, departureDate, roomConfigSpec string) (*domain.Quote, error)
}

// QuoteCache интерфейс кэша котировок. Может быть nil — тогда кэширование
// выключено.
type QuoteCache interface {
	Get(ctx context.Context, packageID, departureDate, roomConfig string) (*domain.Quote, error)
	Set(ctx context.Context, packageID, departureDate, roomConfig string, quote *domain.Quote) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
