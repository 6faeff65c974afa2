package track_now

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
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

type fakeTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }

func (f *fakeTicker) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeTicker) isStopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

type syncClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *syncClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *syncClock) set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func effective() *domain.EffectiveSettings {
	return &domain.EffectiveSettings{
		Settings: domain.CalendarSettings{CompanyID: 1, StartHour: 8, EndHour: 20, SlotInterval: 30, DensityFactor: 1},
		Level:    domain.SettingsLevelDefault,
		Config:   domain.DefaultCalendarConfig(),
	}
}

type stream struct {
	uc      *UseCase
	ticker  *fakeTicker
	clock   *syncClock
	metrics *metrics.Metrics
	updates chan Update
	cancel  context.CancelFunc
	done    chan error
}

func startStream(t *testing.T, req *Request, now time.Time) *stream {
	t.Helper()

	settings := &MockSettings{}
	settings.On("Resolve", mock.Anything, int64(1), (*int64)(nil)).Return(effective(), nil)

	s := &stream{
		ticker:  &fakeTicker{ch: make(chan time.Time)},
		clock:   &syncClock{now: now},
		metrics: metrics.New("test", prometheus.NewRegistry()),
		updates: make(chan Update, 8),
		done:    make(chan error, 1),
	}
	s.uc = NewUseCase(settings, calendar.NewWeekResolver(s.clock), time.Minute, s.metrics, logger.Nop())
	s.uc.tickers = func(time.Duration) calendar.Ticker { return s.ticker }

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	go func() {
		s.done <- s.uc.Execute(ctx, req, func(u Update) { s.updates <- u })
	}()
	return s
}

func (s *stream) next(t *testing.T) Update {
	t.Helper()
	select {
	case u := <-s.updates:
		return u
	case <-time.After(time.Second):
		t.Fatal("no update")
		return Update{}
	}
}

func (s *stream) stop(t *testing.T) {
	t.Helper()
	s.cancel()
	select {
	case err := <-s.done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("stream did not stop")
	}
	assert.True(t, s.ticker.isStopped())
	assert.Equal(t, 0.0, testutil.ToFloat64(s.metrics.ActiveNowStreams))
}

func TestExecute_DayScope(t *testing.T) {
	now := time.Date(2025, 12, 3, 10, 0, 0, 0, time.UTC)
	s := startStream(t, &Request{CompanyID: 1, Date: ptr.Ptr(now)}, now)

	first := s.next(t)
	assert.Equal(t, now, first.Time)
	assert.Equal(t, calendar.NowState{Visible: true, Offset: 120}, first.State)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.ActiveNowStreams))

	s.clock.set(now.Add(5 * time.Minute))
	s.ticker.ch <- now
	assert.Equal(t, calendar.NowState{Visible: true, Offset: 125}, s.next(t).State)

	// Полночь: отображаемый день больше не сегодняшний
	s.clock.set(now.Add(24 * time.Hour))
	s.ticker.ch <- now
	assert.Equal(t, calendar.Hidden, s.next(t).State)

	s.stop(t)
}

func TestExecute_WeekScope(t *testing.T) {
	now := time.Date(2025, 12, 3, 10, 0, 0, 0, time.UTC)
	s := startStream(t, &Request{CompanyID: 1, Date: ptr.Ptr(now), Scope: ScopeWeek, Density: ptr.Ptr(2.0)}, now)

	assert.Equal(t, calendar.NowState{Visible: true, Offset: 240}, s.next(t).State)

	s.clock.set(time.Date(2025, 12, 7, 9, 0, 0, 0, time.UTC))
	s.ticker.ch <- now
	assert.Equal(t, calendar.NowState{Visible: true, Offset: 120}, s.next(t).State)

	s.clock.set(time.Date(2025, 12, 8, 9, 0, 0, 0, time.UTC))
	s.ticker.ch <- now
	assert.Equal(t, calendar.Hidden, s.next(t).State)

	s.stop(t)
}

func TestExecute_NoDateFollowsNow(t *testing.T) {
	now := time.Date(2025, 12, 3, 7, 30, 0, 0, time.UTC)
	s := startStream(t, &Request{CompanyID: 1}, now)

	assert.Equal(t, calendar.Hidden, s.next(t).State)

	s.clock.set(now.Add(24*time.Hour + time.Hour))
	s.ticker.ch <- now
	assert.Equal(t, calendar.NowState{Visible: true, Offset: 30}, s.next(t).State)

	s.stop(t)
}

func TestExecute_Errors(t *testing.T) {
	ctx := context.Background()
	weeks := calendar.NewWeekResolver(&syncClock{})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewUseCase(&MockSettings{}, weeks, 0, nil, logger.Nop())
		for _, req := range []*Request{
			{CompanyID: 0},
			{CompanyID: 1, Scope: "month"},
			{CompanyID: 1, Density: ptr.Ptr(-1.0)},
		} {
			assert.ErrorIs(t, uc.Execute(ctx, req, func(Update) {}), ErrInvalidInput)
		}
	})

	t.Run("settings failure", func(t *testing.T) {
		settings := &MockSettings{}
		settings.On("Resolve", ctx, int64(1), (*int64)(nil)).Return(nil, errors.New("db down"))

		uc := NewUseCase(settings, weeks, 0, nil, logger.Nop())
		assert.ErrorIs(t, uc.Execute(ctx, &Request{CompanyID: 1}, func(Update) {}), ErrInternal)
	})
}
