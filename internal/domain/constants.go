package domain

import "time"

// Default calendar configuration values
const (
	DefaultStartHour     = 8
	DefaultEndHour       = 20
	DefaultSlotInterval  = 30
	DefaultDensityFactor = 1.2
	DefaultTickInterval  = 60 * time.Second
)

// Business validation constants
const (
	MinHour            = 0
	MaxHour            = 23
	MinSlotInterval    = 1
	MinutesPerHour     = 60
	MaxDensityFactor   = 100.0
	AfternoonStartHour = 12 // 12:00 - 18:59
	NightStartHour     = 19 // >= 19:00
)

// Time format constants
const (
	TimeFormat        = "15:04"      // HH:MM
	TimeFormatSeconds = "15:04:05"   // HH:MM:SS
	DateFormat        = "2006-01-02" // YYYY-MM-DD
)

// Display fallbacks used when the upstream booking has no linked reference
const (
	FallbackServiceName      = "no service"
	FallbackCustomerName     = "no customer"
	FallbackProfessionalName = "no professional"
)
