package enquiry

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// MemStore in-memory хранилище заявок
type MemStore struct {
	mu    sync.RWMutex
	byRef map[string]domain.Enquiry
}

// NewMemStore создает новое in-memory хранилище заявок
func NewMemStore() *MemStore {
	return &MemStore{
		byRef: make(map[string]domain.Enquiry),
	}
}

// Create сохраняет заявку. Assign-once: повторная запись того же ref
// отклоняется.
func (s *MemStore) Create(_ context.Context, e *domain.Enquiry) (*domain.Enquiry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byRef[e.Ref]; ok {
		return nil, ErrRefAlreadyExists
	}

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	s.byRef[e.Ref] = *e

	return e, nil
}

// GetByRef получает заявку по ref
func (s *MemStore) GetByRef(_ context.Context, ref string) (*domain.Enquiry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.byRef[ref]
	if !ok {
		return nil, ErrEnquiryNotFound
	}
	return &e, nil
}

// Len возвращает количество сохраненных заявок
func (s *MemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byRef)
}
