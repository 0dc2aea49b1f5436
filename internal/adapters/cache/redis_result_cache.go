package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"route-optimization-service/internal/domain"
	"route-optimization-service/internal/platform/obs"
)

const resultKeyPrefix = "routeopt:result:"

// Redis-backed cache for optimization results. The engine is
// deterministic, so identical requests can be answered from cache
// without recomputation. Entries are JSON-encoded and expire after TTL.
type RedisResultCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisResultCache{Client: client, TTL: ttl}
}

// Fetch the cached result for key; ok=false on a miss.
func (c *RedisResultCache) Get(ctx context.Context, key string) (_ *domain.OptimizationResult, _ bool, err error) {
	defer obs.Time(ctx, "result.cache.Get")(&err)

	if c.Client == nil {
		return nil, false, errors.New("result cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("get result cache: key must not be empty")
	}

	raw, err := c.Client.Get(ctx, resultKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get result cache: redis get: %w", err)
	}

	var res domain.OptimizationResult
	if err := json.Unmarshal(raw, &res); err != nil {
		// An undecodable entry (stale format) counts as a miss rather
		// than failing the optimization call.
		return nil, false, nil
	}

	return &res, true, nil
}

// Store a result under key with the configured TTL.
func (c *RedisResultCache) Put(ctx context.Context, key string, result *domain.OptimizationResult) (err error) {
	defer obs.Time(ctx, "result.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("result cache: client is nil")
	}
	if key == "" {
		return errors.New("put result cache: key must not be empty")
	}
	if result == nil {
		return errors.New("put result cache: result must not be nil")
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("put result cache: encode result: %w", err)
	}

	if err := c.Client.Set(ctx, resultKeyPrefix+key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put result cache: redis set: %w", err)
	}

	return nil
}
