package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	"github.com/m04kA/SMC-TravelService/internal/service/pricing"
	"github.com/m04kA/SMC-TravelService/internal/service/promo"
	"github.com/m04kA/SMC-TravelService/internal/service/roomconfig"
	"github.com/m04kA/SMC-TravelService/pkg/ptr"
)

// UseCase оркестратор подтверждения бронирования: конвейер валидаций,
// серверный пересчет цены, сверка количества туристов, применение промокода
// и создание неизменяемой записи бронирования.
//
// Частичные бронирования не сохраняются: запись создается только после
// успешного прохождения всех предыдущих шагов.
type UseCase struct {
	pricing     PricingService
	promo       PromoService
	store       BookingStore
	refProvider RefProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pricingSvc PricingService,
	promoSvc PromoService,
	store BookingStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		pricing:     pricingSvc,
		promo:       promoSvc,
		store:       store,
		refProvider: &UUIDRefProvider{},
		logger:      logger,
	}
}

// WithRefProvider подменяет генератор ссылок (используется в тестах)
func (uc *UseCase) WithRefProvider(p RefProvider) *UseCase {
	uc.refProvider = p
	return uc
}

// Execute выполняет подтверждение бронирования.
// Шаги идут в фиксированном порядке и падают на первой ошибке; ошибка
// каждого шага возвращается вызывающему без изменений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: package=%s, date=%s, rooms=%q, travellers=%d",
		req.PackageID, req.DepartureDate, req.RoomConfig, len(req.Travellers))

	// 1. Обязательные поля запроса
	if req.PackageID == "" || req.DepartureDate == "" || req.RoomConfig == "" {
		uc.logger.Warn("ConfirmBooking: missing required fields")
		return nil, ErrInvalidInput
	}

	// 2. Конвейер валидаций: последовательность шагов, паспорт, контакты, GST
	if err := validateStepSequence(req.StepsCompleted); err != nil {
		uc.logger.Warn("ConfirmBooking: step sequence validation failed: %v", err)
		return nil, err
	}
	if err := validatePassportAck(req.PassportAck); err != nil {
		uc.logger.Warn("ConfirmBooking: passport ack validation failed")
		return nil, err
	}
	if err := req.Contact.Validate(); err != nil {
		uc.logger.Warn("ConfirmBooking: contact validation failed: %v", err)
		return nil, err
	}
	if err := validateGST(req.GSTEnabled, req.GSTNumber, req.CompanyName); err != nil {
		uc.logger.Warn("ConfirmBooking: gst validation failed")
		return nil, err
	}

	// 3. Серверный пересчет котировки: цене клиента не доверяем
	quote, err := uc.pricing.Quote(ctx, req.PackageID, req.DepartureDate, req.RoomConfig)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: quote failed: %v", err)
		return nil, uc.mapQuoteError(err)
	}

	// 4. Сверка количества туристов: именные записи нужны только для
	// взрослых мест, дети из конфигурации комнат не представлены
	if len(req.Travellers) != quote.TotalAdults {
		uc.logger.Warn("ConfirmBooking: traveller count mismatch: got %d, expected %d",
			len(req.Travellers), quote.TotalAdults)
		return nil, fmt.Errorf("%w: expected %d", ErrTravellerCountMismatch, quote.TotalAdults)
	}

	// 5. Полнота данных каждого туриста
	if err := validateTravellers(req.Travellers); err != nil {
		uc.logger.Warn("ConfirmBooking: incomplete traveller")
		return nil, err
	}

	// 6. Промокод (опционально) поверх серверной котировки
	total := quote.Total
	var discountApplied int64
	if req.PromoCode != "" {
		result, err := uc.promo.Apply(ctx, req.PromoCode, quote.Total)
		if err != nil {
			uc.logger.Warn("ConfirmBooking: promo failed: %v", err)
			return nil, uc.mapPromoError(err)
		}
		discountApplied = result.DiscountApplied
		total = result.NewTotal
	}

	// 7. Создаем и сохраняем запись бронирования
	booking := &domain.Booking{
		BookingRef:      uc.refProvider.NewRef(),
		PackageID:       req.PackageID,
		DepartureDate:   req.DepartureDate,
		RoomConfig:      req.RoomConfig,
		Travellers:      req.Travellers,
		Contact:         req.Contact,
		GSTEnabled:      req.GSTEnabled,
		Subtotal:        quote.Subtotal,
		TCS:             quote.TCS,
		DiscountApplied: discountApplied,
		Total:           total,
	}
	if req.GSTEnabled {
		booking.GSTNumber = ptr.Ptr(req.GSTNumber)
		booking.CompanyName = ptr.Ptr(req.CompanyName)
	}

	created, err := uc.store.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to store booking: %v", err)
		return nil, fmt.Errorf("%w: failed to store booking: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: booking created ref=%s total=%d", created.BookingRef, created.Total)

	return &Response{
		BookingRef:      created.BookingRef,
		PackageID:       created.PackageID,
		DepartureDate:   created.DepartureDate,
		Subtotal:        created.Subtotal,
		TCS:             created.TCS,
		DiscountApplied: created.DiscountApplied,
		Total:           created.Total,
		CreatedAt:       created.CreatedAt,
	}, nil
}

// mapQuoteError конвертирует ошибки pricing-сервиса и парсера конфигурации
// комнат в ошибки usecase
func (uc *UseCase) mapQuoteError(err error) error {
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

// mapPromoError конвертирует ошибки promo-сервиса в ошибки usecase
func (uc *UseCase) mapPromoError(err error) error {
	switch {
	case errors.Is(err, promo.ErrCodeRequired):
		return ErrPromoCodeRequired
	case errors.Is(err, promo.ErrInvalidCode):
		return ErrInvalidPromoCode
	default:
		return fmt.Errorf("%w: promo failed: %v", ErrInternal, err)
	}
}
