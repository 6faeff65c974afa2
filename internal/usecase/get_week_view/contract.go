package get_week_view

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// SettingsResolver интерфейс сервиса настроек календаря
type SettingsResolver interface {
	Resolve(ctx context.Context, companyID int64, branchID *int64) (*domain.EffectiveSettings, error)
}

// BookingClient интерфейс клиента сервиса бронирований
type BookingClient interface {
	GetBookings(ctx context.Context, filter domain.BookingsFilter) ([]domain.Booking, error)
}

// SlotGrid интерфейс генератора сетки слотов
type SlotGrid interface {
	Slots(cfg domain.CalendarConfig) []domain.TimeSlot
}

// WeekResolver интерфейс для вычисления недели и текущего дня
type WeekResolver interface {
	Week(date time.Time) []time.Time
	Now() time.Time
	IsToday(date time.Time) bool
	IsCurrentWeek(week []time.Time) bool
}

// LayoutObserver интерфейс для метрик раскладки
type LayoutObserver interface {
	ObserveLayout(view, mode string, events, maxColumns int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
