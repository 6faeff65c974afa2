package calendar

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// NowState is the position of the current time on the grid.
// Offset is meaningful only when Visible is true.
type NowState struct {
	Visible bool
	Offset  float64
}

// Hidden is the state of a tracker whose "now" is outside the grid
var Hidden = NowState{}

// ComputeNowState places now on the grid at minute granularity.
// Seconds are dropped. The state is Hidden before StartHour and also
// past the last grid hour (after the EndHour hour).
func ComputeNowState(now time.Time, cfg domain.CalendarConfig, density float64) NowState {
	hour := now.Hour()
	if hour < cfg.StartHour || hour > cfg.EndHour {
		return Hidden
	}

	minutesFromStart := (hour-cfg.StartHour)*domain.MinutesPerHour + now.Minute()
	return NowState{
		Visible: true,
		Offset:  float64(minutesFromStart) * density,
	}
}

// Ticker delivers recurring ticks until stopped
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker with the given interval
type TickerFactory func(interval time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// NewRealTicker wraps time.NewTicker
func NewRealTicker(interval time.Duration) Ticker {
	return realTicker{t: time.NewTicker(interval)}
}

// TrackerOption configures a Tracker
type TrackerOption func(*Tracker)

// WithClock overrides the clock used on every tick
func WithClock(clock Clock) TrackerOption {
	return func(t *Tracker) {
		t.clock = clock
	}
}

// WithTicker overrides how the recurring timer is created
func WithTicker(factory TickerFactory) TrackerOption {
	return func(t *Tracker) {
		t.newTicker = factory
	}
}

// WithInterval overrides the tick interval
func WithInterval(interval time.Duration) TrackerOption {
	return func(t *Tracker) {
		if interval > 0 {
			t.interval = interval
		}
	}
}

// Tracker owns the current "now" state of one calendar view.
// State changes only on Refresh: once at the start of Run and then once per tick.
type Tracker struct {
	cfg       domain.CalendarConfig
	density   float64
	clock     Clock
	newTicker TickerFactory
	interval  time.Duration

	mu    sync.RWMutex
	state NowState
}

// NewTracker creates a tracker in the Hidden state
func NewTracker(cfg domain.CalendarConfig, density float64, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		cfg:       cfg,
		density:   density,
		clock:     SystemClock{},
		newTicker: NewRealTicker,
		interval:  domain.DefaultTickInterval,
		state:     Hidden,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the last computed state
func (t *Tracker) State() NowState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Refresh recomputes the state from the clock
func (t *Tracker) Refresh() NowState {
	state := ComputeNowState(t.clock.Now(), t.cfg, t.density)

	t.mu.Lock()
	t.state = state
	t.mu.Unlock()

	return state
}

// Run refreshes immediately, then on every tick, passing each state to onTick.
// It blocks until ctx is done; the timer is always stopped on return.
func (t *Tracker) Run(ctx context.Context, onTick func(NowState)) error {
	ticker := t.newTicker(t.interval)
	defer ticker.Stop()

	if onTick == nil {
		onTick = func(NowState) {}
	}
	onTick(t.Refresh())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			onTick(t.Refresh())
		}
	}
}
