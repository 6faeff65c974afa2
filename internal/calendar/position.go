package calendar

import (
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Position maps an event onto the grid in abstract units (minutes x density).
// Offset is measured from StartHour:00 of the event's own date and is not clamped:
// an event starting before the grid gets a negative offset.
// Minutes are read off the wall clock, so a DST shift does not move events
// relative to the grid or the now indicator.
func Position(event domain.CalendarEvent, cfg domain.CalendarConfig, density float64) domain.EventPlacement {
	start := wallClock(event.Start)
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), cfg.StartHour, 0, 0, 0, time.UTC)

	return domain.EventPlacement{
		Offset: float64(minutesBetween(dayStart, start)) * density,
		Extent: float64(minutesBetween(start, wallClock(event.End))) * density,
	}
}

// Place positions every laid out event
func Place(events []domain.EventWithPosition, cfg domain.CalendarConfig, density float64) []domain.PlacedEvent {
	placed := make([]domain.PlacedEvent, len(events))
	for i, e := range events {
		placed[i] = domain.PlacedEvent{
			EventWithPosition: e,
			Placement:         Position(e.Event, cfg, density),
		}
	}
	return placed
}

// wallClock keeps the clock reading of t and drops its zone offset
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// minutesBetween returns whole minutes from -> to, truncated toward zero
func minutesBetween(from, to time.Time) int64 {
	return int64(to.Sub(from) / time.Minute)
}

// Arrange lays out one day of events with the given mode and places them on the grid
func Arrange(events []domain.CalendarEvent, cfg domain.CalendarConfig, mode domain.LayoutMode, density float64) []domain.PlacedEvent {
	return Place(LayoutWith(mode, events), cfg, density)
}

// MaxColumns returns the widest overlap group among placed events, 0 for none
func MaxColumns(events []domain.PlacedEvent) int {
	widest := 0
	for _, e := range events {
		widest = max(widest, e.TotalColumns)
	}
	return widest
}
