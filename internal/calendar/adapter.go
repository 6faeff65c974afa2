package calendar

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const (
	dateTimeLayout        = domain.DateFormat + " " + domain.TimeFormatSeconds
	dateTimeLayoutMinutes = domain.DateFormat + " " + domain.TimeFormat
)

// EventFromBooking maps a booking record to a calendar event. The booking is not modified.
//
// Upstream fields are not validated: an unparseable date or time becomes a zero
// timestamp on the event, and an unknown status falls back to pending.
func EventFromBooking(booking domain.Booking, loc *time.Location) domain.CalendarEvent {
	if loc == nil {
		loc = time.Local
	}

	status, ok := domain.ParseEventStatus(booking.Status)
	if !ok {
		status = domain.StatusPending
	}

	serviceName := valueOr(booking.ServiceName, domain.FallbackServiceName)

	return domain.CalendarEvent{
		ID:               booking.ID,
		Start:            combineDateTime(booking.Date, booking.StartTime, loc),
		End:              combineDateTime(booking.Date, booking.EndTime, loc),
		Status:           status,
		ProfessionalID:   booking.ProfessionalID,
		CustomerName:     valueOr(booking.CustomerName, domain.FallbackCustomerName),
		ServiceName:      serviceName,
		ProfessionalName: valueOr(booking.ProfessionalName, domain.FallbackProfessionalName),
		Title:            serviceName,
	}
}

// EventsFromBookings maps a list of bookings, preserving order
func EventsFromBookings(bookings []domain.Booking, loc *time.Location) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, len(bookings))
	for i, b := range bookings {
		events[i] = EventFromBooking(b, loc)
	}
	return events
}

func combineDateTime(date, clock string, loc *time.Location) time.Time {
	layout := dateTimeLayout
	if len(clock) == len(domain.TimeFormat) {
		layout = dateTimeLayoutMinutes
	}

	t, err := time.ParseInLocation(layout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

func valueOr(value *string, fallback string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return fallback
	}
	return *value
}
