package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"route-optimization-service/internal/domain"
)

const redisKeyPrefix = "geocode:"

// Redis is a geocode cache backed by Redis, for deployments where multiple
// instances should reuse each other's rate-limited lookups.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis wraps an existing client. A zero ttl stores entries without
// expiration.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (c *Redis) Get(ctx context.Context, key string) (domain.Coordinate, bool, error) {
	val, err := c.client.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinate{}, false, nil
	}
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("redis geocode cache: get %q: %w", key, err)
	}

	var coord domain.Coordinate
	if err := json.Unmarshal([]byte(val), &coord); err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("redis geocode cache: decode %q: %w", key, err)
	}

	return coord, true, nil
}

func (c *Redis) Put(ctx context.Context, key string, coord domain.Coordinate) error {
	payload, err := json.Marshal(coord)
	if err != nil {
		return fmt.Errorf("redis geocode cache: encode %q: %w", key, err)
	}

	if err := c.client.Set(ctx, redisKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis geocode cache: put %q: %w", key, err)
	}

	return nil
}
