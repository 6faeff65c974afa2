package domain

import (
	"sort"

	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// AvailabilityResult is the availability service answer for one professional, service and date.
// AvailableTimes is consumed as-is; it is never recomputed here.
type AvailabilityResult struct {
	Date            string
	ProfessionalID  int64
	ServiceID       int64
	DurationMinutes int
	AvailableTimes  []string // "HH:mm"
}

// DayPeriod is a coarse bucket of the day used by the booking widget
type DayPeriod string

const (
	PeriodMorning   DayPeriod = "morning"   // < 12:00
	PeriodAfternoon DayPeriod = "afternoon" // 12:00 - 18:59
	PeriodNight     DayPeriod = "night"     // >= 19:00
)

// PeriodOf classifies a time of day by its hour
func PeriodOf(t types.TimeString) DayPeriod {
	hour := t.Hour()
	switch {
	case hour < AfternoonStartHour:
		return PeriodMorning
	case hour < NightStartHour:
		return PeriodAfternoon
	default:
		return PeriodNight
	}
}

// GroupedTimes holds available times split by day period, each list sorted ascending
type GroupedTimes struct {
	Morning   []string
	Afternoon []string
	Night     []string
}

// Total returns the number of grouped times
func (g GroupedTimes) Total() int {
	return len(g.Morning) + len(g.Afternoon) + len(g.Night)
}

// GroupByPeriod buckets "HH:mm" strings by day period. Unparseable entries are skipped.
func GroupByPeriod(times []string) GroupedTimes {
	parsed := make([]types.TimeString, 0, len(times))
	for _, raw := range times {
		t, err := types.NewTimeStringFromString(raw)
		if err != nil {
			continue
		}
		parsed = append(parsed, t)
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].IsBefore(parsed[j])
	})

	grouped := GroupedTimes{
		Morning:   []string{},
		Afternoon: []string{},
		Night:     []string{},
	}
	for _, t := range parsed {
		switch PeriodOf(t) {
		case PeriodMorning:
			grouped.Morning = append(grouped.Morning, t.String())
		case PeriodAfternoon:
			grouped.Afternoon = append(grouped.Afternoon, t.String())
		case PeriodNight:
			grouped.Night = append(grouped.Night, t.String())
		}
	}
	return grouped
}
