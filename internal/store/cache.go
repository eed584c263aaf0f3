package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// genKey versions every cache entry. Ingest bumps the generation instead of
// enumerating and deleting keys; stale entries simply age out through TTL.
const genKey = "deadshot:cache:gen"

// Cache is a generation-versioned JSON cache over Redis for computed
// aggregates (leaderboards, overview, recent activity). A cache miss or any
// Redis error falls through to recomputation; the cache is never load-bearing.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewCache(rdb *redis.Client, ttl time.Duration, logger *zap.SugaredLogger) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{rdb: rdb, ttl: ttl, logger: logger}
}

func (c *Cache) versioned(ctx context.Context, key string) string {
	gen, err := c.rdb.Get(ctx, genKey).Int64()
	if err != nil && err != redis.Nil {
		c.logger.Debugw("cache generation lookup failed", "error", err)
	}
	return fmt.Sprintf("deadshot:v%d:%s", gen, key)
}

// Get unmarshals a cached entry into dest; false means recompute.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, c.versioned(ctx, key)).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.Warnw("cache entry corrupt, ignoring", "key", key, "error", err)
		return false
	}
	return true
}

// Set stores a computed value. Failures are logged and swallowed.
func (c *Cache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.rdb == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warnw("cache marshal failed", "key", key, "error", err)
		return
	}
	if err := c.rdb.Set(ctx, c.versioned(ctx, key), data, c.ttl).Err(); err != nil {
		c.logger.Debugw("cache set failed", "key", key, "error", err)
	}
}

// Invalidate bumps the generation so every existing entry becomes
// unreachable. Called after each accepted ingest batch.
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Incr(ctx, genKey).Err(); err != nil {
		c.logger.Warnw("cache invalidation failed", "error", err)
	}
}

func (c *Cache) Ping(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("redis not configured")
	}
	return c.rdb.Ping(ctx).Err()
}
