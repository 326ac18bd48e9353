package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RestaurantListKey holds the cached full restaurant listing.
const RestaurantListKey = "foodserver:restaurants:all"

// Cache is a small TTL JSON cache on redis. A nil *Cache is a valid
// pass-through: every lookup misses and every store is a no-op, so
// callers never need to branch on whether caching is configured.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

func New(addr string, db int, ttl time.Duration) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: addr, DB: db}),
		ttl: ttl,
	}
}

// GetJSON unmarshals the cached value into dest. Returns false on miss.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
