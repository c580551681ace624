package roomconfig

import "errors"

var (
	// ErrSpecRequired возвращается, когда строка конфигурации комнат пуста
	ErrSpecRequired = errors.New("roomconfig: room config is required")

	// ErrInvalidToken возвращается, когда токен конфигурации некорректен
	// (меньше двух полей, нечисловые или недопустимые значения)
	ErrInvalidToken = errors.New("roomconfig: invalid room config token")
)
