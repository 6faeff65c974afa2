package get_day_view

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	bookingClient "github.com/m04kA/SMC-CalendarService/internal/integrations/bookingapi"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/ptr"
)

type MockSettings struct {
	mock.Mock
}

func (m *MockSettings) Resolve(ctx context.Context, companyID int64, branchID *int64) (*domain.EffectiveSettings, error) {
	args := m.Called(ctx, companyID, branchID)
	if s, ok := args.Get(0).(*domain.EffectiveSettings); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBookings struct {
	mock.Mock
}

func (m *MockBookings) GetBookings(ctx context.Context, filter domain.BookingsFilter) ([]domain.Booking, error) {
	args := m.Called(ctx, filter)
	if list, ok := args.Get(0).([]domain.Booking); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

type recordingObserver struct {
	view, mode         string
	events, maxColumns int
}

func (o *recordingObserver) ObserveLayout(view, mode string, events, maxColumns int) {
	o.view, o.mode, o.events, o.maxColumns = view, mode, events, maxColumns
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func effective(mode domain.LayoutMode) *domain.EffectiveSettings {
	cfg := domain.DefaultCalendarConfig()
	return &domain.EffectiveSettings{
		Settings: domain.CalendarSettings{
			CompanyID:     1,
			StartHour:     cfg.StartHour,
			EndHour:       cfg.EndHour,
			SlotInterval:  cfg.SlotInterval,
			DensityFactor: 1,
			LayoutMode:    mode,
		},
		Level:  domain.SettingsLevelCompany,
		Config: cfg,
	}
}

func booking(id, date, start, end string) domain.Booking {
	return domain.Booking{ID: id, CompanyID: 1, Date: date, StartTime: start, EndTime: end, Status: "confirmed"}
}

func newUseCase(settings *MockSettings, bookings *MockBookings, now time.Time, observer LayoutObserver) *UseCase {
	return NewUseCase(
		settings,
		bookings,
		calendar.NewSlotGrid(calendar.DefaultLabelLayout),
		calendar.NewWeekResolver(fixedClock(now)),
		time.UTC,
		observer,
		logger.Nop(),
	)
}

func TestExecute_LaysOutDay(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)

	settings := &MockSettings{}
	settings.On("Resolve", ctx, int64(1), (*int64)(nil)).Return(effective(domain.LayoutPerEvent), nil)

	bookings := &MockBookings{}
	bookings.On("GetBookings", ctx, domain.BookingsFilter{CompanyID: 1, From: day, To: day}).Return([]domain.Booking{
		booking("1", "2025-12-03", "09:00", "10:00"),
		booking("2", "2025-12-03", "09:30", "10:30"),
		booking("3", "2025-12-03", "11:00", "11:30"),
		booking("4", "2025-12-04", "09:00", "10:00"),
	}, nil)

	observer := &recordingObserver{}
	uc := newUseCase(settings, bookings, day.Add(9*time.Hour+15*time.Minute), observer)

	resp, err := uc.Execute(ctx, &Request{CompanyID: 1, Date: day.Add(13 * time.Hour)})
	require.NoError(t, err)

	assert.Equal(t, day, resp.Date)
	assert.Equal(t, domain.SettingsLevelCompany, resp.SettingsLevel)
	assert.Equal(t, domain.LayoutPerEvent, resp.LayoutMode)
	assert.Len(t, resp.Slots, 26)
	assert.Equal(t, 1, resp.Skipped)

	require.Len(t, resp.Events, 3)
	byID := map[string]domain.PlacedEvent{}
	for _, e := range resp.Events {
		byID[e.Event.ID] = e
	}
	assert.Equal(t, 2, byID["1"].TotalColumns)
	assert.Equal(t, 0, byID["1"].ColumnIndex)
	assert.Equal(t, 1, byID["2"].ColumnIndex)
	assert.Equal(t, 1, byID["3"].TotalColumns)
	assert.Equal(t, 60.0, byID["1"].Placement.Offset)
	assert.Equal(t, 60.0, byID["1"].Placement.Extent)

	assert.True(t, resp.IsToday)
	require.NotNil(t, resp.Now)
	assert.Equal(t, calendar.NowState{Visible: true, Offset: 75}, *resp.Now)

	assert.Equal(t, "day", observer.view)
	assert.Equal(t, "per_event", observer.mode)
	assert.Equal(t, 3, observer.events)
	assert.Equal(t, 2, observer.maxColumns)

	settings.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestExecute_DensityOverrideAndOtherDay(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)
	branchID := ptr.Ptr(int64(5))

	settings := &MockSettings{}
	settings.On("Resolve", ctx, int64(1), branchID).Return(effective(domain.LayoutClustered), nil)

	bookings := &MockBookings{}
	bookings.On("GetBookings", ctx, mock.Anything).Return([]domain.Booking{
		booking("1", "2025-12-03", "10:00", "10:30"),
	}, nil)

	uc := newUseCase(settings, bookings, day.AddDate(0, 0, 1), nil)

	resp, err := uc.Execute(ctx, &Request{CompanyID: 1, BranchID: branchID, Date: day, Density: ptr.Ptr(2.0)})
	require.NoError(t, err)

	assert.Equal(t, domain.LayoutClustered, resp.LayoutMode)
	assert.Equal(t, 2.0, resp.Density)
	assert.False(t, resp.IsToday)
	assert.Nil(t, resp.Now)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, 240.0, resp.Events[0].Placement.Offset)
	assert.Equal(t, 60.0, resp.Events[0].Placement.Extent)
}

func TestExecute_Errors(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)

	t.Run("invalid input", func(t *testing.T) {
		cases := []*Request{
			{CompanyID: 0, Date: day},
			{CompanyID: 1},
			{CompanyID: 1, Date: day, BranchID: ptr.Ptr(int64(0))},
			{CompanyID: 1, Date: day, ProfessionalID: ptr.Ptr(int64(-1))},
			{CompanyID: 1, Date: day, Density: ptr.Ptr(0.0)},
		}
		uc := newUseCase(&MockSettings{}, &MockBookings{}, day, nil)
		for _, req := range cases {
			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})

	t.Run("settings failure", func(t *testing.T) {
		settings := &MockSettings{}
		settings.On("Resolve", ctx, int64(1), (*int64)(nil)).Return(nil, errors.New("db down"))

		_, err := newUseCase(settings, &MockBookings{}, day, nil).Execute(ctx, &Request{CompanyID: 1, Date: day})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("company not found", func(t *testing.T) {
		settings := &MockSettings{}
		settings.On("Resolve", ctx, int64(1), (*int64)(nil)).Return(effective(domain.LayoutPerEvent), nil)
		bookings := &MockBookings{}
		bookings.On("GetBookings", ctx, mock.Anything).Return(nil, bookingClient.ErrCompanyNotFound)

		_, err := newUseCase(settings, bookings, day, nil).Execute(ctx, &Request{CompanyID: 1, Date: day})
		assert.ErrorIs(t, err, ErrCompanyNotFound)
	})

	t.Run("bookings unavailable", func(t *testing.T) {
		settings := &MockSettings{}
		settings.On("Resolve", ctx, int64(1), (*int64)(nil)).Return(effective(domain.LayoutPerEvent), nil)
		bookings := &MockBookings{}
		bookings.On("GetBookings", ctx, mock.Anything).Return(nil, bookingClient.ErrInternal)

		_, err := newUseCase(settings, bookings, day, nil).Execute(ctx, &Request{CompanyID: 1, Date: day})
		assert.ErrorIs(t, err, ErrBookingsUnavailable)
	})
}
