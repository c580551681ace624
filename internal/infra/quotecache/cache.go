package quotecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TravelService/internal/domain"
)

// ErrCacheMiss возвращается, когда котировка отсутствует в кэше
var ErrCacheMiss = errors.New("quotecache: cache miss")

// Cache redis-кэш серверных котировок. Котировка — чистая функция от
// состояния справочника, поэтому кэшируется по ключу
// пакет/дата/конфигурация комнат с коротким TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает новый кэш котировок
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// Key собирает ключ кэша для тройки пакет/дата/конфигурация
func Key(packageID, departureDate, roomConfig string) string {
	return fmt.Sprintf("quote:%s:%s:%s", packageID, departureDate, roomConfig)
}

// Get возвращает закэшированную котировку или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, packageID, departureDate, roomConfig string) (*domain.Quote, error) {
	data, err := c.client.Get(ctx, Key(packageID, departureDate, roomConfig)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("quotecache: get failed: %w", err)
	}

	var quote domain.Quote
	if err := json.Unmarshal(data, &quote); err != nil {
		return nil, fmt.Errorf("quotecache: decode failed: %w", err)
	}
	return &quote, nil
}

// Set сохраняет котировку с настроенным TTL
func (c *Cache) Set(ctx context.Context, packageID, departureDate, roomConfig string, quote *domain.Quote) error {
	data, err := json.Marshal(quote)
	if err != nil {
		return fmt.Errorf("quotecache: encode failed: %w", err)
	}

	if err := c.client.Set(ctx, Key(packageID, departureDate, roomConfig), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("quotecache: set failed: %w", err)
	}
	return nil
}
