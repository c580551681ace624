package pricing

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет не найден в справочнике
	ErrPackageNotFound = errors.New("pricing: package not found")

	// ErrDepartureDateNotFound возвращается, когда дата вылета не найдена в пакете
	ErrDepartureDateNotFound = errors.New("pricing: departure date not found")

	// ErrDateNotAvailable возвращается, когда дата вылета существует, но закрыта
	ErrDateNotAvailable = errors.New("pricing: selected departure date is not available")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing: internal error")
)
