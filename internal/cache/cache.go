package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

type RedisCache struct {
	RDB    *redis.Client
	Prefix string
}

func NewRedis(addr, prefix string) *RedisCache {
	return &RedisCache{
		RDB:    redis.NewClient(&redis.Options{Addr: addr}),
		Prefix: prefix,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string, dest any) bool {
	val, err := c.RDB.Get(ctx, c.Prefix+key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(val, dest) == nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.RDB.Set(ctx, c.Prefix+key, data, ttl).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.RDB.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.RDB.Close()
}

// Noop never hits.
type Noop struct{}

func (Noop) Get(context.Context, string, any) bool { return false }

func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }
