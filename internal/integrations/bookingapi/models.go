package bookingapi

import (
	"strconv"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Статусы сервиса бронирований, которые сводятся к четырем статусам календаря
const (
	statusInProgress         = "in_progress"
	statusCancelledByUser    = "cancelled_by_user"
	statusCancelledByCompany = "cancelled_by_company"
	statusNoShow             = "no_show"
)

// Booking модель бронирования из сервиса бронирований
type Booking struct {
	ID               int64   `json:"id"`
	CompanyID        int64   `json:"companyId"`
	BranchID         int64   `json:"branchId"`
	ProfessionalID   int64   `json:"professionalId"`
	ServiceID        int64   `json:"serviceId"`
	Date             string  `json:"date"`      // YYYY-MM-DD
	StartTime        string  `json:"startTime"` // HH:MM:SS
	EndTime          string  `json:"endTime"`   // HH:MM:SS
	Status           string  `json:"status"`
	ServiceName      *string `json:"serviceName,omitempty"`
	CustomerName     *string `json:"customerName,omitempty"`
	ProfessionalName *string `json:"professionalName,omitempty"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []Booking `json:"bookings"`
}

// ErrorResponse модель ошибки от сервиса бронирований
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ToDomain конвертирует ответ сервиса в domain модель
func (b *Booking) ToDomain() domain.Booking {
	return domain.Booking{
		ID:               strconv.FormatInt(b.ID, 10),
		CompanyID:        b.CompanyID,
		BranchID:         b.BranchID,
		ProfessionalID:   b.ProfessionalID,
		ServiceID:        b.ServiceID,
		Date:             b.Date,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		Status:           normalizeStatus(b.Status),
		ServiceName:      b.ServiceName,
		CustomerName:     b.CustomerName,
		ProfessionalName: b.ProfessionalName,
	}
}

// normalizeStatus сводит расширенные статусы сервиса бронирований к статусам календаря
// Неизвестные статусы передаются как есть
func normalizeStatus(status string) string {
	switch status {
	case statusInProgress:
		return string(domain.StatusConfirmed)
	case statusCancelledByUser, statusCancelledByCompany, statusNoShow:
		return string(domain.StatusCancelled)
	}
	return status
}
