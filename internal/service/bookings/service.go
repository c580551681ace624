package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TravelService/internal/domain"
	bookingStore "github.com/m04kA/SMC-TravelService/internal/infra/storage/booking"
)

// Service read-path сервис бронирований
type Service struct {
	store  BookingStore
	logger Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(store BookingStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// GetByRef получает бронирование по booking_ref
func (s *Service) GetByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	booking, err := s.store.GetByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, bookingStore.ErrBookingNotFound) {
			s.logger.Warn("GetByRef: booking ref=%s not found", ref)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByRef: store error for ref=%s: %v", ref, err)
		return nil, fmt.Errorf("%w: GetByRef - store error: %v", ErrInternal, err)
	}
	return booking, nil
}
