package domain

import "time"

// Booking is a booking record as returned by the booking backend.
// Date and time fields keep their wire format and are not validated here.
type Booking struct {
	ID             string
	CompanyID      int64
	BranchID       int64
	ProfessionalID int64
	ServiceID      int64
	Date           string // "YYYY-MM-DD"
	StartTime      string // "HH:mm:ss"
	EndTime        string // "HH:mm:ss"
	Status         string

	// Denormalized references, nil when the linked entity is absent
	ServiceName      *string
	CustomerName     *string
	ProfessionalName *string
}

// BookingsFilter фильтр для получения бронирований компании за период
type BookingsFilter struct {
	CompanyID      int64     // Обязательный параметр
	BranchID       *int64    // Фильтр по филиалу (опционально)
	ProfessionalID *int64    // Фильтр по специалисту (опционально)
	From           time.Time // Начало периода (включительно)
	To             time.Time // Конец периода (включительно)
}
