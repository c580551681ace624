package compute_quote

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей запроса
	ErrInvalidInput = errors.New("compute_quote: package_id, departure_date and room_config are required")

	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = errors.New("compute_quote: package not found")

	// ErrDepartureDateNotFound возвращается, когда дата вылета не найдена
	ErrDepartureDateNotFound = errors.New("compute_quote: departure date not found")

	// ErrDateNotAvailable возвращается, когда дата вылета закрыта
	ErrDateNotAvailable = errors.New("compute_quote: selected departure date is not available")

	// ErrInvalidRoomConfig возвращается при некорректной конфигурации комнат
	ErrInvalidRoomConfig = errors.New("compute_quote: invalid room config")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("compute_quote: internal error")
)
