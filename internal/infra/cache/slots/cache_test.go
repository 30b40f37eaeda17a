package slots

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, time.Minute, nopLogger{}), mr
}

var cacheDate = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

func sampleSlots() []domain.AvailableSlot {
	return []domain.AvailableSlot{
		{StartTime: types.TimeString("09:00"), DurationMinutes: 60},
		{StartTime: types.TimeString("11:00"), DurationMinutes: 60},
	}
}

func TestCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, 1, 10, cacheDate, sampleSlots())

	got, ok := cache.Get(ctx, 1, 10, cacheDate)
	require.True(t, ok)
	assert.Equal(t, sampleSlots(), got)
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	cache, _ := newTestCache(t)

	_, ok := cache.Get(context.Background(), 1, 10, cacheDate)

	assert.False(t, ok)
}

func TestCache_EmptySlotsAreCacheable(t *testing.T) {
	// Пустой день - валидный результат расчёта, он тоже кешируется
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, 1, 10, cacheDate, []domain.AvailableSlot{})

	got, ok := cache.Get(ctx, 1, 10, cacheDate)
	require.True(t, ok)
	assert.Empty(t, got)
}

func TestCache_KeysAreScopedByServiceAndDate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, 1, 10, cacheDate, sampleSlots())

	_, ok := cache.Get(ctx, 1, 20, cacheDate)
	assert.False(t, ok, "another service must have its own entry")

	_, ok = cache.Get(ctx, 1, 10, cacheDate.AddDate(0, 0, 1))
	assert.False(t, ok, "another date must have its own entry")

	_, ok = cache.Get(ctx, 2, 10, cacheDate)
	assert.False(t, ok, "another professional must have its own entry")
}

func TestCache_InvalidateDayDropsAllServicesForDate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, 1, 10, cacheDate, sampleSlots())
	cache.Set(ctx, 1, 20, cacheDate, sampleSlots())
	cache.Set(ctx, 1, 10, cacheDate.AddDate(0, 0, 1), sampleSlots())
	cache.Set(ctx, 2, 10, cacheDate, sampleSlots())

	cache.InvalidateDay(ctx, 1, cacheDate)

	_, ok := cache.Get(ctx, 1, 10, cacheDate)
	assert.False(t, ok)
	_, ok = cache.Get(ctx, 1, 20, cacheDate)
	assert.False(t, ok)

	// Другой день и другой профессионал не затронуты
	_, ok = cache.Get(ctx, 1, 10, cacheDate.AddDate(0, 0, 1))
	assert.True(t, ok)
	_, ok = cache.Get(ctx, 2, 10, cacheDate)
	assert.True(t, ok)
}

func TestCache_EntriesExpire(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, 1, 10, cacheDate, sampleSlots())

	mr.FastForward(2 * time.Minute)

	_, ok := cache.Get(ctx, 1, 10, cacheDate)
	assert.False(t, ok)
}

func TestCache_RedisDownIsMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.Set(ctx, 1, 10, cacheDate, sampleSlots())
	mr.Close()

	_, ok := cache.Get(ctx, 1, 10, cacheDate)
	assert.False(t, ok, "redis errors are treated as cache miss")
}
