package get_available_times

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	availabilityClient "github.com/m04kA/SMC-CalendarService/internal/integrations/availabilityservice"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
)

const cacheName = "availability"

// UseCase use case для получения доступных времен записи
type UseCase struct {
	client       AvailabilityClient
	cache        AvailabilityCache
	observer     CacheObserver
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// cache и observer могут быть nil, тогда кеш не используется
func NewUseCase(
	client AvailabilityClient,
	cache AvailabilityCache,
	observer CacheObserver,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		client:       client,
		cache:        cache,
		observer:     observer,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных времен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTimes: professional=%d, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не может быть в прошлом
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetAvailableTimes: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Пробуем кеш, ошибки кеша не прерывают запрос
	if result := uc.fromCache(ctx, req); result != nil {
		return newResponse(req.Date, result, true), nil
	}

	// 4. Запрашиваем сервис доступности
	result, err := uc.client.GetAvailableTimes(ctx, req.Date, req.ProfessionalID, req.ServiceID)
	if err != nil {
		if errors.Is(err, availabilityClient.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableTimes: professional=%d or service=%d not found", req.ProfessionalID, req.ServiceID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableTimes: failed to get available times: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnavailable, err)
	}

	// 5. Сохраняем в кеш
	if uc.cache != nil {
		if err := uc.cache.Set(ctx, req.Date, result); err != nil {
			uc.logger.Warn("GetAvailableTimes: failed to cache result: %v", err)
		}
	}

	resp := newResponse(req.Date, result, false)
	uc.logger.Info("GetAvailableTimes: professional=%d, date=%s, times=%d",
		req.ProfessionalID, req.Date.Format(domain.DateFormat), resp.Times.Total())
	return resp, nil
}

func (uc *UseCase) fromCache(ctx context.Context, req *Request) *domain.AvailabilityResult {
	if uc.cache == nil {
		return nil
	}

	result, err := uc.cache.Get(ctx, req.Date, req.ProfessionalID, req.ServiceID)
	switch {
	case err != nil:
		uc.logger.Warn("GetAvailableTimes: cache get failed: %v", err)
		uc.observe(metrics.CacheError)
		return nil
	case result == nil:
		uc.observe(metrics.CacheMiss)
		return nil
	default:
		uc.observe(metrics.CacheHit)
		return result
	}
}

func (uc *UseCase) observe(result string) {
	if uc.observer != nil {
		uc.observer.CacheResult(cacheName, result)
	}
}

func newResponse(date time.Time, result *domain.AvailabilityResult, cached bool) *Response {
	return &Response{
		Date:            date,
		ProfessionalID:  result.ProfessionalID,
		ServiceID:       result.ServiceID,
		DurationMinutes: result.DurationMinutes,
		Times:           domain.GroupByPeriod(result.AvailableTimes),
		Cached:          cached,
	}
}
