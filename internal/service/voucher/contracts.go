package voucher

import (
	"context"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// Catalog интерфейс справочника пакетов
type Catalog interface {
	GetPackage(ctx context.Context, id string) (*domain.Package, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
