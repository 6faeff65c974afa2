package get_day_view

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/calendar"
	"github.com/m04kA/SMC-CalendarService/internal/domain"
	bookingClient "github.com/m04kA/SMC-CalendarService/internal/integrations/bookingapi"
)

const viewName = "day"

// UseCase use case для получения дня календаря
type UseCase struct {
	settings SettingsResolver
	bookings BookingClient
	grid     SlotGrid
	days     DayResolver
	location *time.Location
	observer LayoutObserver
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
// observer может быть nil
func NewUseCase(
	settings SettingsResolver,
	bookings BookingClient,
	grid SlotGrid,
	days DayResolver,
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
		days:     days,
		location: location,
		observer: observer,
		logger:   logger,
	}
}

// Execute выполняет use case получения дня календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayView: company=%d, branch=%v, professional=%v, date=%s",
		req.CompanyID, req.BranchID, req.ProfessionalID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayView: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем действующие настройки календаря
	effective, err := uc.settings.Resolve(ctx, req.CompanyID, req.BranchID)
	if err != nil {
		uc.logger.Error("GetDayView: failed to resolve settings for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: failed to resolve settings: %v", ErrInternal, err)
	}

	density := effective.Settings.DensityFactor
	if req.Density != nil {
		density = *req.Density
	}
	mode, _ := domain.ParseLayoutMode(string(effective.Settings.LayoutMode))

	// 3. Приводим дату к полуночи в часовом поясе календаря
	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)

	// 4. Получаем бронирования на день
	bookings, err := uc.bookings.GetBookings(ctx, domain.BookingsFilter{
		CompanyID:      req.CompanyID,
		BranchID:       req.BranchID,
		ProfessionalID: req.ProfessionalID,
		From:           day,
		To:             day,
	})
	if err != nil {
		if errors.Is(err, bookingClient.ErrCompanyNotFound) {
			uc.logger.Warn("GetDayView: company id=%d not found", req.CompanyID)
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("GetDayView: failed to get bookings for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: %v", ErrBookingsUnavailable, err)
	}

	// 5. Преобразуем бронирования в события, оставляя только события этого дня
	dayKey := calendar.DayKey(day)
	events := make([]domain.CalendarEvent, 0, len(bookings))
	skipped := 0
	for _, event := range calendar.EventsFromBookings(bookings, uc.location) {
		if event.DayKey() != dayKey {
			skipped++
			continue
		}
		events = append(events, event)
	}
	if skipped > 0 {
		uc.logger.Warn("GetDayView: skipped %d bookings outside %s or with malformed date/time", skipped, dayKey)
	}

	// 6. Раскладка пересечений и позиционирование
	placed := calendar.Arrange(events, effective.Config, mode, density)
	if uc.observer != nil {
		uc.observer.ObserveLayout(viewName, string(mode), len(placed), calendar.MaxColumns(placed))
	}

	// 7. Индикатор текущего времени показывается только для сегодняшнего дня
	resp := &Response{
		Date:          day,
		CompanyID:     req.CompanyID,
		SettingsLevel: effective.Level,
		Config:        effective.Config,
		LayoutMode:    mode,
		Density:       density,
		Slots:         uc.grid.Slots(effective.Config),
		Events:        placed,
		IsToday:       uc.days.IsToday(day),
		Skipped:       skipped,
	}
	if resp.IsToday {
		state := calendar.ComputeNowState(uc.days.Now(), effective.Config, density)
		resp.Now = &state
	}

	uc.logger.Info("GetDayView: company=%d, date=%s, events=%d, maxColumns=%d",
		req.CompanyID, dayKey, len(placed), calendar.MaxColumns(placed))
	return resp, nil
}
