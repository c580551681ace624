package apply_promo

import (
	"context"

	"github.com/m04kA/SMC-TravelService/internal/service/promo"
)

type PromoService interface {
	Apply(ctx context.Context, code string, currentTotal int64) (*promo.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
