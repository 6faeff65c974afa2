package calendar

import (
	"cmp"
	"slices"
	"strconv"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// Layout assigns columns to the events of one day so that overlapping events render side by side.
//
// Grouping is per event: an event's group is itself plus every event it directly
// overlaps. TotalColumns is the group size and ColumnIndex is the event's rank by id
// inside the group. Overlap is not transitive here: with A-B and B-C overlapping but
// not A-C, A and C get different TotalColumns. Rendering code depends on this.
// Output order matches input order.
func Layout(events []domain.CalendarEvent) []domain.EventWithPosition {
	result := make([]domain.EventWithPosition, len(events))

	for i, event := range events {
		group := []int{i}
		for j, other := range events {
			if j != i && event.Overlaps(other) {
				group = append(group, j)
			}
		}

		slices.SortFunc(group, func(a, b int) int {
			if c := compareIDs(events[a].ID, events[b].ID); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})

		result[i] = domain.EventWithPosition{
			Event:        event,
			ColumnIndex:  slices.Index(group, i),
			TotalColumns: len(group),
		}
	}

	return result
}

// LayoutClustered is the strict alternative to Layout: events connected through
// overlaps form one cluster, every member shares the cluster's column count and
// columns are assigned greedily in start order.
func LayoutClustered(events []domain.CalendarEvent) []domain.EventWithPosition {
	result := make([]domain.EventWithPosition, len(events))

	order := make([]int, 0, len(events))
	for i, event := range events {
		if event.Duration() <= 0 {
			result[i] = domain.EventWithPosition{Event: event, ColumnIndex: 0, TotalColumns: 1}
			continue
		}
		order = append(order, i)
	}

	slices.SortFunc(order, func(a, b int) int {
		if c := events[a].Start.Compare(events[b].Start); c != 0 {
			return c
		}
		if c := events[a].End.Compare(events[b].End); c != 0 {
			return c
		}
		if c := compareIDs(events[a].ID, events[b].ID); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	var (
		cluster    []int
		clusterEnd time.Time
		columnEnds []time.Time
		columnOf   = make(map[int]int, len(order))
	)

	flush := func() {
		for _, idx := range cluster {
			result[idx] = domain.EventWithPosition{
				Event:        events[idx],
				ColumnIndex:  columnOf[idx],
				TotalColumns: len(columnEnds),
			}
		}
		cluster = cluster[:0]
		columnEnds = columnEnds[:0]
		clusterEnd = time.Time{}
	}

	for _, idx := range order {
		event := events[idx]
		if len(cluster) > 0 && !event.Start.Before(clusterEnd) {
			flush()
		}

		column := -1
		for c, end := range columnEnds {
			if !end.After(event.Start) {
				column = c
				break
			}
		}
		if column == -1 {
			columnEnds = append(columnEnds, event.End)
			column = len(columnEnds) - 1
		} else {
			columnEnds[column] = event.End
		}

		columnOf[idx] = column
		cluster = append(cluster, idx)
		if event.End.After(clusterEnd) {
			clusterEnd = event.End
		}
	}
	flush()

	return result
}

// LayoutWith dispatches on the layout mode, LayoutPerEvent being the default
func LayoutWith(mode domain.LayoutMode, events []domain.CalendarEvent) []domain.EventWithPosition {
	switch mode {
	case domain.LayoutClustered:
		return LayoutClustered(events)
	case domain.LayoutPerEvent:
		return Layout(events)
	}
	return Layout(events)
}

// GroupByDay splits events by the calendar date of their start, keeping input order per day
func GroupByDay(events []domain.CalendarEvent) map[string][]domain.CalendarEvent {
	days := make(map[string][]domain.CalendarEvent)
	for _, event := range events {
		key := event.DayKey()
		days[key] = append(days[key], event)
	}
	return days
}

// compareIDs orders numeric ids numerically and anything else lexicographically
func compareIDs(a, b string) int {
	na, errA := strconv.ParseInt(a, 10, 64)
	nb, errB := strconv.ParseInt(b, 10, 64)
	if errA == nil && errB == nil {
		return cmp.Compare(na, nb)
	}
	return cmp.Compare(a, b)
}
