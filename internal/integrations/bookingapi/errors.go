package bookingapi

import "errors"

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена в сервисе бронирований
	ErrCompanyNotFound = errors.New("company not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)
