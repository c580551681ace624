package submit_enquiry

import "errors"

var (
	// ErrPackageRequired возвращается, когда package_id не передан или
	// пакет не найден
	ErrPackageRequired = errors.New("submit_enquiry: valid package_id is required")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_enquiry: internal error")
)
