package promo

import (
	"context"
)

// Result результат применения промокода
type Result struct {
	NewTotal        int64
	DiscountApplied int64
}

// Service применяет промокоды с фиксированной скидкой к итоговой сумме.
// Поддерживается только тип "fixed"; процентных скидок нет.
type Service struct {
	table  PromoTable
	logger Logger
}

// NewService создает новый экземпляр promo-сервиса
func NewService(table PromoTable, logger Logger) *Service {
	return &Service{
		table:  table,
		logger: logger,
	}
}

// Apply применяет промокод к текущей сумме.
// Новая сумма никогда не уходит в минус: при скидке больше суммы
// результат ограничивается нулем.
func (s *Service) Apply(ctx context.Context, code string, currentTotal int64) (*Result, error) {
	if code == "" {
		return nil, ErrCodeRequired
	}

	promoCode, ok := s.table.Lookup(ctx, code)
	if !ok {
		s.logger.Warn("Apply: unknown promo code=%s", code)
		return nil, ErrInvalidCode
	}

	newTotal := currentTotal - promoCode.Amount
	if newTotal < 0 {
		newTotal = 0
	}

	s.logger.Info("Apply: code=%s discount=%d total %d -> %d", code, promoCode.Amount, currentTotal, newTotal)

	return &Result{
		NewTotal:        newTotal,
		DiscountApplied: promoCode.Amount,
	}, nil
}
