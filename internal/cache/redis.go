package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/flights/config"
	"github.com/Domenick1991/flights/internal/domain"
	pkgerrors "github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const flightsKey = "cache:flights"

// RedisCache holds the full flight listing under a single key.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	return newRedisCache(client, flightsTTL)
}

func newRedisCache(client *redis.Client, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, flightsTTL: flightsTTL}
}

// GetFlights returns nil, nil when the listing is not cached.
func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	raw, err := c.client.Get(ctx, flightsKey).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		return nil, pkgerrors.Wrap(err, "read cached flights")
	}

	cached := make([]domain.Flight, 0)
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, pkgerrors.Wrap(err, "decode cached flights")
	}
	return cached, nil
}

// SetFlights caches the listing for the configured TTL.
func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	raw, err := json.Marshal(flights)
	if err != nil {
		return pkgerrors.Wrap(err, "encode flights")
	}
	return pkgerrors.Wrap(c.client.Set(ctx, flightsKey, raw, c.flightsTTL).Err(), "cache flights")
}

func (c *RedisCache) InvalidateFlights(ctx context.Context) error {
	return pkgerrors.Wrap(c.client.Del(ctx, flightsKey).Err(), "invalidate cached flights")
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
