package get_day_view

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// SettingsResolver интерфейс сервиса настроек календаря
type SettingsResolver interface {
	// Resolve возвращает действующие настройки с учетом иерархии branch > company > defaults
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

// DayResolver интерфейс для проверки "сегодня" по текущему времени
type DayResolver interface {
	Now() time.Time
	IsToday(date time.Time) bool
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
