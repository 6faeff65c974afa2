package domain

import "github.com/m04kA/SMC-CalendarService/pkg/types"

// TimeSlot is a fixed point of the day grid
type TimeSlot struct {
	Time  types.TimeString // zero-padded 24h key, e.g. "09:30"
	Label string           // display label, e.g. "9:30 AM"
}
