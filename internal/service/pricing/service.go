package pricing

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/internal/infra/catalog"
	"github.com/m04kA/SMC-TravelService/internal/service/roomconfig"
)

// Service вычисляет серверную котировку для тройки пакет/дата/конфигурация
// комнат. Чистая функция от состояния справочника и входных данных, без
// побочных эффектов.
type Service struct {
	catalog Catalog
	logger  Logger
}

// NewService создает новый экземпляр pricing-сервиса
func NewService(cat Catalog, logger Logger) *Service {
	return &Service{
		catalog: cat,
		logger:  logger,
	}
}

// Quote вычисляет разбивку цены.
// В subtotal входят только взрослые; дети занимают места в комнатах, но не
// тарифицируются. TCS округляется от половины в большую сторону (half away
// from zero) в целочисленной арифметике.
func (s *Service) Quote(ctx context.Context, packageID, departureDate, roomConfigSpec string) (*domain.Quote, error) {
	pkg, err := s.catalog.GetPackage(ctx, packageID)
	if err != nil {
		if errors.Is(err, catalog.ErrPackageNotFound) {
			s.logger.Warn("Quote: package id=%s not found", packageID)
			return nil, ErrPackageNotFound
		}
		s.logger.Error("Quote: failed to get package id=%s: %v", packageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	// Точное строковое сравнение даты, без парсинга
	dep, ok := pkg.FindDeparture(departureDate)
	if !ok {
		s.logger.Warn("Quote: departure date=%s not found in package id=%s", departureDate, packageID)
		return nil, ErrDepartureDateNotFound
	}
	if !dep.Available {
		s.logger.Warn("Quote: departure date=%s of package id=%s is not available", departureDate, packageID)
		return nil, ErrDateNotAvailable
	}

	// Ошибки парсера конфигурации комнат пробрасываются без изменений
	cfg, err := roomconfig.Parse(roomConfigSpec)
	if err != nil {
		return nil, err
	}

	subtotal := dep.PricePerPerson * int64(cfg.TotalAdults)
	tcs := roundTCS(subtotal)

	return &domain.Quote{
		PricePerPerson:    dep.PricePerPerson,
		TotalAdults:       cfg.TotalAdults,
		Subtotal:          subtotal,
		TCS:               tcs,
		Total:             subtotal + tcs,
		TravellerEntities: cfg.TravellerEntities,
	}, nil
}

// roundTCS вычисляет round(subtotal * 0.05) с округлением half away from zero.
// Парсер конфигурации гарантирует неотрицательный subtotal.
func roundTCS(subtotal int64) int64 {
	return (subtotal*domain.TCSRatePercent + 50) / 100
}
