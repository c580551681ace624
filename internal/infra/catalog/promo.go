package catalog

import (
	"context"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// PromoTable in-memory справочник промокодов
type PromoTable struct {
	promos map[string]*domain.PromoCode
}

// NewPromoTable создает справочник промокодов из seed-данных
func NewPromoTable(seed *Seed) *PromoTable {
	t := &PromoTable{
		promos: make(map[string]*domain.PromoCode, len(seed.Promos)),
	}
	for i := range seed.Promos {
		p := seed.Promos[i].toDomain()
		t.promos[p.Code] = p
	}
	return t
}

// Lookup возвращает промокод по коду
func (t *PromoTable) Lookup(_ context.Context, code string) (*domain.PromoCode, bool) {
	p, ok := t.promos[code]
	return p, ok
}
