package get_available_times

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("date is in the past")

	// ErrProfessionalNotFound возвращается, когда специалист или услуга не найдены
	ErrProfessionalNotFound = errors.New("professional or service not found")

	// ErrAvailabilityUnavailable возвращается, когда сервис доступности недоступен
	ErrAvailabilityUnavailable = errors.New("availability is unavailable")
)
