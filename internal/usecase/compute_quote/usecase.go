package compute_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelService/internal/infra/quotecache"
	"github.com/m04kA/SMC-TravelService/internal/service/pricing"
	"github.com/m04kA/SMC-TravelService/internal/service/roomconfig"
)

// UseCase quote-only путь: серверный расчет котировки с опциональным
// redis-кэшем. Ошибки кэша не фатальны — котировка пересчитывается.
type UseCase struct {
	pricing PricingService
	cache   QuoteCache // nil = кэширование выключено
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(pricingSvc PricingService, cache QuoteCache, logger Logger) *UseCase {
	return &UseCase{
		pricing: pricingSvc,
		cache:   cache,
		logger:  logger,
	}
}

// Execute вычисляет котировку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Обязательные поля запроса
	if req.PackageID == "" || req.DepartureDate == "" || req.RoomConfig == "" {
		uc.logger.Warn("ComputeQuote: missing required fields")
		return nil, ErrInvalidInput
	}

	// 2. Кэш
	if uc.cache != nil {
		cached, err := uc.cache.Get(ctx, req.PackageID, req.DepartureDate, req.RoomConfig)
		if err == nil {
			uc.logger.Info("ComputeQuote: cache hit for package=%s date=%s", req.PackageID, req.DepartureDate)
			return FromDomainQuote(cached), nil
		}
		if !errors.Is(err, quotecache.ErrCacheMiss) {
			uc.logger.Warn("ComputeQuote: cache get failed: %v", err)
		}
	}

	// 3. Расчет
	quote, err := uc.pricing.Quote(ctx, req.PackageID, req.DepartureDate, req.RoomConfig)
	if err != nil {
		uc.logger.Warn("ComputeQuote: quote failed: %v", err)
		return nil, mapPricingError(err)
	}

	// 4. Заполняем кэш; ошибка записи не влияет на результат
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, req.PackageID, req.DepartureDate, req.RoomConfig, quote); err != nil {
			uc.logger.Warn("ComputeQuote: cache set failed: %v", err)
		}
	}

	return FromDomainQuote(quote), nil
}

// mapPricingError конвертирует ошибки pricing-сервиса и парсера конфигурации
// комнат в ошибки usecase
func mapPricingError(err error) error {
	switch {
	case errors.Is(err, pricing.ErrPackageNotFound):
		return ErrPackageNotFound
	case errors.Is(err, pricing.ErrDepartureDateNotFound):
		return ErrDepartureDateNotFound
	case errors.Is(err, pricing.ErrDateNotAvailable):
		return ErrDateNotAvailable
	case errors.Is(err, roomconfig.ErrSpecRequired), errors.Is(err, roomconfig.ErrInvalidToken):
		return fmt.Errorf("%w: %v", ErrInvalidRoomConfig, err)
	default:
		return fmt.Errorf("%w: quote failed: %v", ErrInternal, err)
	}
}
