package slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Cache кеш рассчитанных слотов на день.
// Ключ - (профессионал, услуга, дата); инвалидация - по (профессионал, дата),
// потому что новая запись меняет доступность для всех услуг этого дня.
// Кеш best-effort: любая ошибка Redis трактуется как промах.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    Logger
}

// New создает кеш слотов поверх подключения к Redis
func New(client *redis.Client, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func slotsKey(professionalID, serviceID int64, date time.Time) string {
	return fmt.Sprintf("slots:%d:%s:%d", professionalID, date.Format(domain.DateFormat), serviceID)
}

func invalidationPattern(professionalID int64, date time.Time) string {
	return fmt.Sprintf("slots:%d:%s:*", professionalID, date.Format(domain.DateFormat))
}

// Get возвращает закешированные слоты и признак попадания
func (c *Cache) Get(ctx context.Context, professionalID, serviceID int64, date time.Time) ([]domain.AvailableSlot, bool) {
	key := slotsKey(professionalID, serviceID, date)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("slots cache: get %s failed: %v", key, err)
		}
		return nil, false
	}

	var cached []domain.AvailableSlot
	if err := json.Unmarshal(payload, &cached); err != nil {
		c.log.Warn("slots cache: decode %s failed: %v", key, err)
		return nil, false
	}

	c.log.Debug("slots cache: hit %s (%d slots)", key, len(cached))
	return cached, true
}

// Set сохраняет слоты с TTL
func (c *Cache) Set(ctx context.Context, professionalID, serviceID int64, date time.Time, available []domain.AvailableSlot) {
	key := slotsKey(professionalID, serviceID, date)

	payload, err := json.Marshal(available)
	if err != nil {
		c.log.Warn("slots cache: encode %s failed: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("slots cache: set %s failed: %v", key, err)
	}
}

// InvalidateDay удаляет закешированные слоты профессионала на дату.
// Вызывается после создания и отмены записей.
func (c *Cache) InvalidateDay(ctx context.Context, professionalID int64, date time.Time) {
	pattern := invalidationPattern(professionalID, date)

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warn("slots cache: delete %s failed: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warn("slots cache: scan %s failed: %v", pattern, err)
	}
}
