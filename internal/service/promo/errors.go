package promo

import "errors"

var (
	// ErrCodeRequired возвращается, когда промокод не передан
	ErrCodeRequired = errors.New("promo: promo code is required")

	// ErrInvalidCode возвращается, когда промокод не найден в справочнике
	ErrInvalidCode = errors.New("promo: invalid promo code")
)
