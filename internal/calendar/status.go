package calendar

import "github.com/m04kA/SMC-CalendarService/internal/domain"

const unknownStatusColor = "#9CA3AF"

// StatusColor returns the display color of a status.
// A new domain.EventStatus must get its own case here.
func StatusColor(status domain.EventStatus) string {
	switch status {
	case domain.StatusPending:
		return "#F59E0B"
	case domain.StatusConfirmed:
		return "#10B981"
	case domain.StatusCancelled:
		return "#EF4444"
	case domain.StatusCompleted:
		return "#3B82F6"
	}
	return unknownStatusColor
}
