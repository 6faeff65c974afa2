package get_week_view

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCompanyNotFound возвращается, когда компания не найдена в сервисе бронирований
	ErrCompanyNotFound = errors.New("company not found")

	// ErrBookingsUnavailable возвращается, когда сервис бронирований недоступен
	ErrBookingsUnavailable = errors.New("bookings are unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
