package availability

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

var testDate = time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC)

func newTestCache(t *testing.T, ttl time.Duration) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	cache := NewCache(NewRedisClient(Options{Address: s.Addr()}), ttl)
	t.Cleanup(func() { cache.Close() })

	return cache, s
}

func TestCache(t *testing.T) {
	ctx := context.Background()
	cache, s := newTestCache(t, time.Minute)

	result := &domain.AvailabilityResult{
		Date:            "2025-12-03",
		ProfessionalID:  7,
		ServiceID:       4,
		DurationMinutes: 45,
		AvailableTimes:  []string{"09:00", "13:30"},
	}

	t.Run("Miss", func(t *testing.T) {
		got, err := cache.Get(ctx, testDate, 7, 4)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, testDate, result))

		got, err := cache.Get(ctx, testDate, 7, 4)
		require.NoError(t, err)
		assert.Equal(t, result, got)
		assert.True(t, s.Exists(Key(testDate, 7, 4)))
	})

	t.Run("Expires", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, testDate, result))
		s.FastForward(2 * time.Minute)

		got, err := cache.Get(ctx, testDate, 7, 4)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Invalidate", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, testDate, result))
		require.NoError(t, cache.Invalidate(ctx, testDate, 7, 4))

		got, err := cache.Get(ctx, testDate, 7, 4)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Corrupted", func(t *testing.T) {
		require.NoError(t, s.Set(Key(testDate, 1, 1), "{not json"))

		_, err := cache.Get(ctx, testDate, 1, 1)
		assert.ErrorIs(t, err, ErrCorruptedEntry)
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, cache.Ping(ctx))
	})
}

func TestCache_Unavailable(t *testing.T) {
	ctx := context.Background()
	cache, s := newTestCache(t, time.Minute)
	s.Close()

	_, err := cache.Get(ctx, testDate, 7, 4)
	assert.ErrorIs(t, err, ErrCacheUnavailable)

	err = cache.Set(ctx, testDate, &domain.AvailabilityResult{ProfessionalID: 7, ServiceID: 4})
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "calendar:available_times:2025-12-03:7:4", Key(testDate, 7, 4))
}
