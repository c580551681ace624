package confirm_booking

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствии обязательных полей запроса
	ErrInvalidInput = errors.New("confirm_booking: package_id, departure_date and room_config are required")

	// ErrMissingStep возвращается, когда обязательный шаг workflow отсутствует
	ErrMissingStep = errors.New("confirm_booking: required step missing")

	// ErrStepsOutOfOrder возвращается, когда шаги workflow идут в неверном порядке
	ErrStepsOutOfOrder = errors.New("confirm_booking: steps are not in required order")

	// ErrPassportAckRequired возвращается, когда подтверждение действительности
	// паспорта не является булевым true
	ErrPassportAckRequired = errors.New("confirm_booking: passport validity acknowledgement is required")

	// ErrGSTFieldsRequired возвращается, когда при включенном GST не переданы
	// номер GST и название компании
	ErrGSTFieldsRequired = errors.New("confirm_booking: gst number and company name are required when gst is enabled")

	// ErrTravellerCountMismatch возвращается, когда количество туристов не
	// совпадает с количеством взрослых мест в котировке
	ErrTravellerCountMismatch = errors.New("confirm_booking: traveller count mismatch")

	// ErrIncompleteTraveller возвращается, когда у туриста не заполнены
	// title, first_name или last_name
	ErrIncompleteTraveller = errors.New("confirm_booking: each traveller must have title, first_name, last_name")

	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = errors.New("confirm_booking: package not found")

	// ErrDepartureDateNotFound возвращается, когда дата вылета не найдена
	ErrDepartureDateNotFound = errors.New("confirm_booking: departure date not found")

	// ErrDateNotAvailable возвращается, когда дата вылета закрыта
	ErrDateNotAvailable = errors.New("confirm_booking: selected departure date is not available")

	// ErrInvalidRoomConfig возвращается при некорректной конфигурации комнат
	ErrInvalidRoomConfig = errors.New("confirm_booking: invalid room config")

	// ErrPromoCodeRequired возвращается, когда промокод пуст
	ErrPromoCodeRequired = errors.New("confirm_booking: promo code is required")

	// ErrInvalidPromoCode возвращается, когда промокод не найден
	ErrInvalidPromoCode = errors.New("confirm_booking: invalid promo code")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
