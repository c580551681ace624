package promo

import (
	"context"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// PromoTable интерфейс справочника промокодов
type PromoTable interface {
	Lookup(ctx context.Context, code string) (*domain.PromoCode, bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
