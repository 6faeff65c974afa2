package get_week_view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	bookingClient "github.com/m04kA/SMC-CalendarService/internal/integrations/bookingapi"
)

const viewName = "week"

// UseCase use case для получения недели календаря
type UseCase struct {
	settings SettingsResolver
	bookings BookingClient
	grid     SlotGrid
	weeks    WeekResolver
	location *time.Location
	observer LayoutObserver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settings SettingsResolver,
	bookings BookingClient,
	grid SlotGrid,
	weeks WeekResolver,
	location *time.Location,
	observer LayoutObserver,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		settings: settings,
		bookings: bookings,
		grid:     grid,
		weeks:    weeks,
		location: location,
		observer: observer,
		logger:   logger,
	}
}

// Execute выполняет use case получения недели календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeekView: company=%d, branch=%v, professional=%v, date=%s",
		req.CompanyID, req.BranchID, req.ProfessionalID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekView: validation failed: %v", err)
		return nil, err
	}

	effective, err := uc.settings.Resolve(ctx, req.CompanyID, req.BranchID)
	if err != nil {
		uc.logger.Error("GetWeekView: failed to resolve settings for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to resolve settings: %v", ErrInternal, err)
	}

	density := effective.Settings.DensityFactor
	if req.Density != nil {
		density = *req.Density
	}
	mode, _ := domain.ParseLayoutMode(string(effective.Settings.LayoutMode))

	// Неделя с понедельника по воскресенье в часовом поясе календаря
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	week := uc.weeks.Week(date)

	bookings, err := uc.bookings.GetBookings(ctx, domain.BookingsFilter{
		CompanyID:      req.CompanyID,
		BranchID:       req.BranchID,
		ProfessionalID: req.ProfessionalID,
		From:           week[0],
		To:             week[len(week)-1],
	})
	if err != nil {
		if errors.Is(err, bookingClient.ErrCompanyNotFound) {
			uc.logger.Warn("GetWeekView: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("GetWeekView: failed to get bookings for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingsUnavailable, err)
	}

	// Группируем события по дням, раскладка считается для каждого дня отдельно
	events := calendar.EventsFromBookings(bookings, uc.location)
	byDay := calendar.GroupByDay(events)

	resp := &Response{
		CompanyID:     req.CompanyID,
		SettingsLevel: effective.Level,
		Config:        effective.Config,
		LayoutMode:    mode,
		Density:       density,
		Slots:         uc.grid.Slots(effective.Config),
		Days:          make([]Day, 0, len(week)),
		IsCurrentWeek: uc.weeks.IsCurrentWeek(week),
	}

	placedTotal := 0
	maxColumns := 0
	for _, day := range week {
		placed := calendar.Arrange(byDay[calendar.DayKey(day)], effective.Config, mode, density)
		placedTotal += len(placed)
		maxColumns = max(maxColumns, calendar.MaxColumns(placed))

		resp.Days = append(resp.Days, Day{
			Date:    day,
			IsToday: uc.weeks.IsToday(day),
			Events:  placed,
		})
	}

	resp.Skipped = len(events) - placedTotal
	if resp.Skipped > 0 {
		uc.logger.Warn("GetWeekView: skipped %d bookings outside week %s or with malformed date/time",
			resp.Skipped, calendar.DayKey(week[0]))
	}

	if resp.IsCurrentWeek {
		state := calendar.ComputeNowState(uc.weeks.Now(), effective.Config, density)
		resp.Now = &state
	}

	if uc.observer != nil {
		uc.observer.ObserveLayout(viewName, string(mode), placedTotal, maxColumns)
	}

	uc.logger.Info("GetWeekView: company=%d, week=%s, events=%d", req.CompanyID, calendar.DayKey(week[0]), placedTotal)
	return resp, nil
}
