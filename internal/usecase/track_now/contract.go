package track_now

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// SettingsResolver интерфейс сервиса настроек календаря
type SettingsResolver interface {
	Resolve(ctx context.Context, companyID int64, branchID *int64) (*domain.EffectiveSettings, error)
}

// WeekResolver интерфейс для проверки текущего дня и недели
type WeekResolver interface {
	Week(date time.Time) []time.Time
	Now() time.Time
	IsToday(date time.Time) bool
	IsCurrentWeek(week []time.Time) bool
}

// StreamObserver интерфейс для метрик открытых потоков
type StreamObserver interface {
	StreamOpened()
	StreamClosed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
