package domain

import "time"

// EventStatus represents the status of a calendar event.
// The set is closed; every switch over it must handle all four values.
type EventStatus string

const (
	StatusPending   EventStatus = "pending"
	StatusConfirmed EventStatus = "confirmed"
	StatusCancelled EventStatus = "cancelled"
	StatusCompleted EventStatus = "completed"
)

// EventStatuses lists every status in display order
var EventStatuses = []EventStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// ParseEventStatus converts a raw status string
func ParseEventStatus(s string) (EventStatus, bool) {
	status := EventStatus(s)
	if status.IsValid() {
		return status, true
	}
	return "", false
}

// IsValid returns true for the four known statuses
func (s EventStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CalendarEvent is a normalized appointment occurrence. Treat it as a value:
// a changed booking produces a new event.
type CalendarEvent struct {
	ID               string
	Start            time.Time
	End              time.Time
	Status           EventStatus
	ProfessionalID   int64
	CustomerName     string
	ServiceName      string
	ProfessionalName string
	Title            string
}

// Duration returns End - Start
func (e CalendarEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// DayKey returns the calendar date of the event start as "YYYY-MM-DD"
func (e CalendarEvent) DayKey() string {
	return e.Start.Format(DateFormat)
}

// Overlaps reports whether two events intersect under closed-open semantics.
// Touching endpoints do not overlap; an event without positive duration overlaps nothing.
func (e CalendarEvent) Overlaps(other CalendarEvent) bool {
	if e.Duration() <= 0 || other.Duration() <= 0 {
		return false
	}
	return e.Start.Before(other.End) && e.End.After(other.Start)
}

// EventWithPosition is the layout of one event: its column inside its overlap group
type EventWithPosition struct {
	Event        CalendarEvent
	ColumnIndex  int
	TotalColumns int
}

// EventPlacement is the vertical placement of an event in abstract units (minutes x density)
type EventPlacement struct {
	Offset float64
	Extent float64
}

// PlacedEvent combines column layout and vertical placement
type PlacedEvent struct {
	EventWithPosition
	Placement EventPlacement
}

// LayoutMode selects the overlap grouping algorithm
type LayoutMode string

const (
	// LayoutPerEvent groups each event with the events it directly overlaps
	LayoutPerEvent LayoutMode = "per_event"
	// LayoutClustered colors connected overlap clusters with a shared column count
	LayoutClustered LayoutMode = "clustered"
)

// ParseLayoutMode converts a raw mode, empty string means LayoutPerEvent
func ParseLayoutMode(s string) (LayoutMode, bool) {
	switch LayoutMode(s) {
	case "", LayoutPerEvent:
		return LayoutPerEvent, true
	case LayoutClustered:
		return LayoutClustered, true
	}
	return "", false
}
