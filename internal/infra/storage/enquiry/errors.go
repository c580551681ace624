package enquiry

import "errors"

var (
	// ErrEnquiryNotFound возвращается, когда заявка не найдена
	ErrEnquiryNotFound = errors.New("enquiry.repository: enquiry not found")

	// ErrRefAlreadyExists возвращается при попытке повторно сохранить
	// заявку с тем же ref
	ErrRefAlreadyExists = errors.New("enquiry.repository: enquiry ref already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("enquiry.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("enquiry.repository: failed to execute query")
)
