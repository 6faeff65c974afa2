package calendar

import (
	"slices"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// DefaultLabelLayout renders slot labels on a 12h clock
const DefaultLabelLayout = "3:04 PM"

const maxCachedGrids = 64

// GenerateSlots turns a calendar configuration into the ordered time grid.
//
// Hours run from StartHour to EndHour inclusive, so the grid also covers the
// sub-slots of the last hour (EndHour=23 with 30 minute slots ends at 23:30).
// An interval that does not divide 60 yields a ragged last slot per hour.
// A non-positive interval or an inverted range yields an empty grid.
func GenerateSlots(cfg domain.CalendarConfig) []domain.TimeSlot {
	return generateSlots(cfg, DefaultLabelLayout)
}

func generateSlots(cfg domain.CalendarConfig, labelLayout string) []domain.TimeSlot {
	if cfg.SlotInterval <= 0 || cfg.EndHour < cfg.StartHour {
		return []domain.TimeSlot{}
	}

	slots := make([]domain.TimeSlot, 0, cfg.Hours()*cfg.SlotsPerHour())
	for hour := cfg.StartHour; hour <= cfg.EndHour; hour++ {
		for minute := 0; minute < domain.MinutesPerHour; minute += cfg.SlotInterval {
			clock := time.Date(2000, time.January, 1, hour, minute, 0, 0, time.UTC)
			slots = append(slots, domain.TimeSlot{
				Time:  types.NewTimeStringFromClock(hour, minute),
				Label: clock.Format(labelLayout),
			})
		}
	}
	return slots
}

// SlotGrid memoizes generated grids per configuration.
// Safe for concurrent use; callers receive their own copy.
type SlotGrid struct {
	labelLayout string
	grids       *memo[domain.CalendarConfig, []domain.TimeSlot]
}

// NewSlotGrid creates a grid generator, empty labelLayout means DefaultLabelLayout
func NewSlotGrid(labelLayout string) *SlotGrid {
	if labelLayout == "" {
		labelLayout = DefaultLabelLayout
	}
	return &SlotGrid{
		labelLayout: labelLayout,
		grids:       newMemo[domain.CalendarConfig, []domain.TimeSlot](maxCachedGrids),
	}
}

// Slots returns the grid for cfg
func (g *SlotGrid) Slots(cfg domain.CalendarConfig) []domain.TimeSlot {
	slots := g.grids.getOrCompute(cfg, func() []domain.TimeSlot {
		return generateSlots(cfg, g.labelLayout)
	})
	return slices.Clone(slots)
}
