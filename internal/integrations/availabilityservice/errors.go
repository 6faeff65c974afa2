package availabilityservice

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда специалист или услуга не найдены
	ErrProfessionalNotFound = errors.New("professional or service not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("availabilityservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("availabilityservice client: invalid response")
)
