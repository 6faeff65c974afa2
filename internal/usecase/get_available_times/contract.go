package get_available_times

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

// AvailabilityClient интерфейс клиента сервиса доступности
type AvailabilityClient interface {
	GetAvailableTimes(ctx context.Context, date time.Time, professionalID, serviceID int64) (*domain.AvailabilityResult, error)
}

// AvailabilityCache интерфейс кеша доступных времен
type AvailabilityCache interface {
	// Get возвращает nil, nil при промахе
	Get(ctx context.Context, date time.Time, professionalID, serviceID int64) (*domain.AvailabilityResult, error)
	Set(ctx context.Context, date time.Time, result *domain.AvailabilityResult) error
}

// CacheObserver интерфейс для метрик кеша
type CacheObserver interface {
	CacheResult(cache, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
