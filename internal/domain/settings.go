package domain

import (
	"fmt"
	"time"
)

// SettingsLevel is the hierarchy level the effective calendar settings came from
type SettingsLevel string

const (
	SettingsLevelBranch  SettingsLevel = "branch"
	SettingsLevelCompany SettingsLevel = "company"
	SettingsLevelDefault SettingsLevel = "default"
)

// CalendarSettings are the stored calendar view settings of a company or one of its branches.
// BranchID == nil means the company-wide row.
type CalendarSettings struct {
	ID            int64
	CompanyID     int64
	BranchID      *int64
	StartHour     int
	EndHour       int
	SlotInterval  int
	DensityFactor float64
	LayoutMode    LayoutMode
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsBranchSpecific returns true for a per-branch row
func (s *CalendarSettings) IsBranchSpecific() bool {
	return s.BranchID != nil
}

// CalendarConfig builds the grid configuration, rejecting invalid combinations
func (s *CalendarSettings) CalendarConfig() (CalendarConfig, error) {
	return NewCalendarConfig(s.StartHour, s.EndHour, s.SlotInterval)
}

// Validate checks every stored field
func (s *CalendarSettings) Validate() error {
	if _, err := s.CalendarConfig(); err != nil {
		return err
	}
	if s.DensityFactor <= 0 || s.DensityFactor > MaxDensityFactor {
		return fmt.Errorf("%w: densityFactor must be in (0,%v], got %v", ErrInvalidCalendarConfig, MaxDensityFactor, s.DensityFactor)
	}
	if _, ok := ParseLayoutMode(string(s.LayoutMode)); !ok {
		return fmt.Errorf("%w: unknown layoutMode %q", ErrInvalidCalendarConfig, s.LayoutMode)
	}
	return nil
}

// EffectiveSettings are the settings applied to a calendar view together with their origin
type EffectiveSettings struct {
	Settings CalendarSettings
	Level    SettingsLevel
	Config   CalendarConfig
}
