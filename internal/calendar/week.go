package calendar

import (
	"slices"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// DaysInWeek is the length of a calendar week
const DaysInWeek = 7

const maxCachedWeeks = 512

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock, optionally pinned to a display timezone
type SystemClock struct {
	Location *time.Location
}

// Now returns the current time in the configured location
func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// WeekOf returns the Monday-first week containing date, as midnights in date's location.
func WeekOf(date time.Time) []time.Time {
	day := StartOfDay(date)
	monday := day.AddDate(0, 0, -mondayOffset(day.Weekday()))

	week := make([]time.Time, DaysInWeek)
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}

// mondayOffset is the number of days back to Monday, Sunday being weekday 0
func mondayOffset(weekday time.Weekday) int {
	if weekday == time.Sunday {
		return 6
	}
	return int(weekday) - 1
}

// StartOfDay drops the time of day, keeping the location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey formats the calendar date as "YYYY-MM-DD"
func DayKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// WeekResolver answers week and "today" questions against an injected clock
type WeekResolver struct {
	clock Clock
	weeks *memo[string, []time.Time]
}

// NewWeekResolver creates a resolver, nil clock means SystemClock in time.Local
func NewWeekResolver(clock Clock) *WeekResolver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &WeekResolver{
		clock: clock,
		weeks: newMemo[string, []time.Time](maxCachedWeeks),
	}
}

// Week returns WeekOf(date), memoized by calendar date and location
func (r *WeekResolver) Week(date time.Time) []time.Time {
	key := DayKey(date) + "@" + date.Location().String()
	week := r.weeks.getOrCompute(key, func() []time.Time {
		return WeekOf(date)
	})
	return slices.Clone(week)
}

// Now returns the clock's current time
func (r *WeekResolver) Now() time.Time {
	return r.clock.Now()
}

// IsToday compares calendar dates only; the time of day is ignored
func (r *WeekResolver) IsToday(date time.Time) bool {
	return DayKey(date) == DayKey(r.clock.Now())
}

// IsCurrentWeek returns true if any day of week is today
func (r *WeekResolver) IsCurrentWeek(week []time.Time) bool {
	today := DayKey(r.clock.Now())
	for _, day := range week {
		if DayKey(day) == today {
			return true
		}
	}
	return false
}
