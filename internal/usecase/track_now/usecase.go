package track_now

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// UseCase use case для потока индикатора текущего времени
type UseCase struct {
	settings SettingsResolver
	weeks    WeekResolver
	interval time.Duration
	tickers  calendar.TickerFactory
	observer StreamObserver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
// interval <= 0 заменяется на domain.DefaultTickInterval
func NewUseCase(
	settings SettingsResolver,
	weeks WeekResolver,
	interval time.Duration,
	observer StreamObserver,
	logger Logger,
) *UseCase {
	if interval <= 0 {
		interval = domain.DefaultTickInterval
	}
	return &UseCase{
		settings: settings,
		weeks:    weeks,
		interval: interval,
		tickers:  calendar.NewRealTicker,
		observer: observer,
		logger:   logger,
	}
}

// Execute отправляет состояние индикатора сразу и затем на каждом тике, пока не завершится ctx.
// Завершение ctx не считается ошибкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request, emit func(Update)) error {
	uc.logger.Info("TrackNow: company=%d, branch=%v, scope=%s", req.CompanyID, req.BranchID, req.Scope)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TrackNow: validation failed: %v", err)
		return err
	}

	effective, err := uc.settings.Resolve(ctx, req.CompanyID, req.BranchID)
	if err != nil {
		uc.logger.Error("TrackNow: failed to resolve settings for company=%d: %v", req.CompanyID, err)
		return fmt.Errorf("%w: failed to resolve settings: %v", ErrInternal, err)
	}

	density := effective.Settings.DensityFactor
	if req.Density != nil {
		density = *req.Density
	}

	tracker := calendar.NewTracker(effective.Config, density,
		calendar.WithClock(uc.weeks),
		calendar.WithTicker(uc.tickers),
		calendar.WithInterval(uc.interval),
	)

	if uc.observer != nil {
		uc.observer.StreamOpened()
		defer uc.observer.StreamClosed()
	}

	err = tracker.Run(ctx, func(state calendar.NowState) {
		// Дата могла перестать быть текущей после полуночи
		if !uc.isCurrent(req) {
			state = calendar.Hidden
		}
		emit(Update{Time: uc.weeks.Now(), State: state})
	})

	uc.logger.Info("TrackNow: stream for company=%d closed: %v", req.CompanyID, err)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// isCurrent проверяет, что отображаемый день или неделя совпадают с текущими
func (uc *UseCase) isCurrent(req *Request) bool {
	if req.Date == nil {
		return true
	}
	if req.Scope == ScopeWeek {
		return uc.weeks.IsCurrentWeek(uc.weeks.Week(*req.Date))
	}
	return uc.weeks.IsToday(*req.Date)
}
