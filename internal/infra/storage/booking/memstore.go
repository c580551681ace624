package booking

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// MemStore in-memory хранилище бронирований. Используется, когда база данных
// выключена в конфигурации: исходный сервис держал бронирования в памяти
// процесса, долговечность хранения вне скоупа.
type MemStore struct {
	mu    sync.RWMutex
	byRef map[string]domain.Booking
}

// NewMemStore создает новое in-memory хранилище бронирований
func NewMemStore() *MemStore {
	return &MemStore{
		byRef: make(map[string]domain.Booking),
	}
}

// Create сохраняет бронирование. Assign-once: повторная запись того же
// booking_ref отклоняется.
func (s *MemStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byRef[booking.BookingRef]; ok {
		return nil, ErrRefAlreadyExists
	}

	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	s.byRef[booking.BookingRef] = *booking

	return booking, nil
}

// GetByRef получает бронирование по booking_ref
func (s *MemStore) GetByRef(_ context.Context, ref string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.byRef[ref]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &booking, nil
}

// Len возвращает количество сохраненных бронирований
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byRef)
}
