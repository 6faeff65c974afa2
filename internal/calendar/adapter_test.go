package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

func TestEventFromBooking(t *testing.T) {
	t.Run("full booking", func(t *testing.T) {
		booking := domain.Booking{
			ID:               "42",
			ProfessionalID:   7,
			Date:             "2025-12-03",
			StartTime:        "10:00:00",
			EndTime:          "10:40",
			Status:           "confirmed",
			ServiceName:      ptr.Ptr("Haircut"),
			CustomerName:     ptr.Ptr("Anna"),
			ProfessionalName: ptr.Ptr("Boris"),
		}
		snapshot := booking

		e := EventFromBooking(booking, time.UTC)

		assert.Equal(t, "42", e.ID)
		assert.Equal(t, at(10, 0), e.Start)
		assert.Equal(t, at(10, 40), e.End)
		assert.Equal(t, domain.StatusConfirmed, e.Status)
		assert.Equal(t, int64(7), e.ProfessionalID)
		assert.Equal(t, "Haircut", e.Title)
		assert.Equal(t, "Haircut", e.ServiceName)
		assert.Equal(t, "Anna", e.CustomerName)
		assert.Equal(t, "Boris", e.ProfessionalName)
		assert.Equal(t, snapshot, booking)
	})

	t.Run("missing references fall back", func(t *testing.T) {
		e := EventFromBooking(domain.Booking{
			ID:          "1",
			Date:        "2025-12-03",
			StartTime:   "09:00",
			EndTime:     "09:30",
			Status:      "pending",
			ServiceName: ptr.Ptr("  "),
		}, time.UTC)

		assert.Equal(t, "no service", e.Title)
		assert.Equal(t, domain.FallbackCustomerName, e.CustomerName)
		assert.Equal(t, domain.FallbackProfessionalName, e.ProfessionalName)
	})

	t.Run("malformed upstream data does not fail", func(t *testing.T) {
		e := EventFromBooking(domain.Booking{
			ID:        "1",
			Date:      "not-a-date",
			StartTime: "25:99",
			Status:    "archived",
		}, time.UTC)

		assert.True(t, e.Start.IsZero())
		assert.True(t, e.End.IsZero())
		assert.Equal(t, domain.StatusPending, e.Status)
	})

	t.Run("location applied", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		e := EventFromBooking(domain.Booking{Date: "2025-12-03", StartTime: "09:00", EndTime: "10:00"}, loc)

		assert.Equal(t, 9, e.Start.Hour())
		assert.Equal(t, loc, e.Start.Location())
	})
}

func TestEventsFromBookings(t *testing.T) {
	events := EventsFromBookings([]domain.Booking{
		{ID: "2", Date: "2025-12-03", StartTime: "09:00", EndTime: "10:00"},
		{ID: "1", Date: "2025-12-03", StartTime: "08:00", EndTime: "09:00"},
	}, time.UTC)

	require.Len(t, events, 2)
	assert.Equal(t, "2", events[0].ID)
	assert.Equal(t, "1", events[1].ID)
	assert.Empty(t, EventsFromBookings(nil, time.UTC))
}

func TestStatusColor(t *testing.T) {
	seen := make(map[string]bool)
	for _, status := range domain.EventStatuses {
		color := StatusColor(status)
		assert.NotEqual(t, unknownStatusColor, color, string(status))
		assert.False(t, seen[color], "duplicate color for %s", status)
		seen[color] = true
	}
	assert.Equal(t, unknownStatusColor, StatusColor("archived"))
}
