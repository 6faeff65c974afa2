package availability

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

const keyPrefix = "calendar:available_times"

// Cache кэш свободного времени специалистов в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// Options настройки подключения к Redis
type Options struct {
	Address  string
	Password string
	DB       int
}

// NewRedisClient создает клиент Redis
func NewRedisClient(opts Options) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})
}

// NewCache создает кэш с указанным временем жизни записей
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Key формирует ключ записи для даты, специалиста и услуги
func Key(date time.Time, professionalID, serviceID int64) string {
	return fmt.Sprintf("%s:%s:%d:%d", keyPrefix, date.Format(domain.DateFormat), professionalID, serviceID)
}

// Get возвращает запись из кэша
// Отсутствие записи не является ошибкой: возвращается (nil, nil)
func (c *Cache) Get(ctx context.Context, date time.Time, professionalID, serviceID int64) (*domain.AvailabilityResult, error) {
	val, err := c.client.Get(ctx, Key(date, professionalID, serviceID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", ErrCacheUnavailable, err)
	}

	var result domain.AvailabilityResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptedEntry, err)
	}

	return &result, nil
}

// Set сохраняет запись в кэш
func (c *Cache) Set(ctx context.Context, date time.Time, result *domain.AvailabilityResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal availability: %w", err)
	}

	key := Key(date, result.ProfessionalID, result.ServiceID)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set: %v", ErrCacheUnavailable, err)
	}

	return nil
}

// Invalidate удаляет запись из кэша
func (c *Cache) Invalidate(ctx context.Context, date time.Time, professionalID, serviceID int64) error {
	if err := c.client.Del(ctx, Key(date, professionalID, serviceID)).Err(); err != nil {
		return fmt.Errorf("%w: del: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// Ping проверяет соединение с Redis
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: ping: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
