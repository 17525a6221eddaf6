package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// sweepCacheTTL bounds how long a cached sweep survives; the engine is
// deterministic, the TTL only keeps the keyspace from growing without bound.
const sweepCacheTTL = 24 * time.Hour

type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisCache connects to the Redis instance at addr.
func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, sweepCacheTTL).Err()
}
