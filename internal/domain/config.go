package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidCalendarConfig is returned when a calendar configuration cannot be constructed
var ErrInvalidCalendarConfig = errors.New("domain: invalid calendar config")

// CalendarConfig describes the visible time range of a calendar view.
// It is immutable for the lifetime of a view; changing it invalidates every derived grid.
type CalendarConfig struct {
	StartHour    int
	EndHour      int
	SlotInterval int // minutes
}

// NewCalendarConfig validates and builds a CalendarConfig.
// Intervals that do not divide 60 are accepted: they only degrade label alignment.
func NewCalendarConfig(startHour, endHour, slotInterval int) (CalendarConfig, error) {
	cfg := CalendarConfig{
		StartHour:    startHour,
		EndHour:      endHour,
		SlotInterval: slotInterval,
	}
	if err := cfg.Validate(); err != nil {
		return CalendarConfig{}, err
	}
	return cfg, nil
}

// DefaultCalendarConfig returns the built-in configuration
func DefaultCalendarConfig() CalendarConfig {
	return CalendarConfig{
		StartHour:    DefaultStartHour,
		EndHour:      DefaultEndHour,
		SlotInterval: DefaultSlotInterval,
	}
}

// Validate checks the configuration invariants
func (c CalendarConfig) Validate() error {
	if c.StartHour < MinHour || c.StartHour > MaxHour {
		return fmt.Errorf("%w: startHour must be in [%d,%d], got %d", ErrInvalidCalendarConfig, MinHour, MaxHour, c.StartHour)
	}
	if c.EndHour < c.StartHour || c.EndHour > MaxHour {
		return fmt.Errorf("%w: endHour must be in [startHour,%d], got %d", ErrInvalidCalendarConfig, MaxHour, c.EndHour)
	}
	if c.SlotInterval < MinSlotInterval {
		return fmt.Errorf("%w: slotInterval must be positive, got %d", ErrInvalidCalendarConfig, c.SlotInterval)
	}
	return nil
}

// AlignsToClock returns true if slot labels fall on the same minutes every hour
func (c CalendarConfig) AlignsToClock() bool {
	return c.SlotInterval > 0 && MinutesPerHour%c.SlotInterval == 0
}

// SlotsPerHour returns ceil(60/slotInterval), 0 for a non-positive interval
func (c CalendarConfig) SlotsPerHour() int {
	if c.SlotInterval <= 0 {
		return 0
	}
	return (MinutesPerHour + c.SlotInterval - 1) / c.SlotInterval
}

// Hours returns the number of grid hours, endHour inclusive
func (c CalendarConfig) Hours() int {
	if c.EndHour < c.StartHour {
		return 0
	}
	return c.EndHour - c.StartHour + 1
}
