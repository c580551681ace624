package submit_enquiry

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// Catalog интерфейс справочника пакетов
type Catalog interface {
	GetPackage(ctx context.Context, id string) (*domain.Package, error)
}

// EnquiryStore интерфейс хранилища заявок
type EnquiryStore interface {
	Create(ctx context.Context, e *domain.Enquiry) (*domain.Enquiry, error)
}

// RefProvider интерфейс генерации опаковых ссылок заявок
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
