package marketdata

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisFixingCache caches fixings from a slower source feed in Redis.
// Misses fall through to the source and populate the cache with a TTL.
type RedisFixingCache struct {
	client *redis.Client
	source FixingFeed
	ttl    time.Duration
	ctx    context.Context
}

// RedisOption configures a RedisFixingCache.
type RedisOption func(*RedisFixingCache)

// WithTTL sets the cache entry lifetime. Defaults to 24h.
func WithTTL(ttl time.Duration) RedisOption {
	return func(c *RedisFixingCache) {
		c.ttl = ttl
	}
}

// WithContext sets the context for cache operations.
func WithContext(ctx context.Context) RedisOption {
	return func(c *RedisFixingCache) {
		c.ctx = ctx
	}
}

// NewRedisFixingCache connects to Redis at addr and layers the cache over
// source.
func NewRedisFixingCache(addr string, source FixingFeed, options ...RedisOption) (*RedisFixingCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	cache := &RedisFixingCache{
		client: client,
		source: source,
		ttl:    24 * time.Hour,
		ctx:    ctx,
	}
	for _, option := range options {
		option(cache)
	}
	return cache, nil
}

func fixingKey(index string, date time.Time) string {
	return "fixing:" + index + ":" + date.Format("2006-01-02")
}

func (c *RedisFixingCache) FixingOn(index string, date time.Time) (float64, bool) {
	val, err := c.client.Get(c.ctx, fixingKey(index, date)).Result()
	if err == nil {
		rate, perr := strconv.ParseFloat(val, 64)
		if perr == nil {
			return rate, true
		}
		// Unreadable entry: drop it and re-fetch.
		c.client.Del(c.ctx, fixingKey(index, date))
	} else if err != redis.Nil {
		// Redis unavailable: serve straight from the source.
		return c.source.FixingOn(index, date)
	}

	rate, ok := c.source.FixingOn(index, date)
	if !ok {
		return 0, false
	}
	c.client.Set(c.ctx, fixingKey(index, date), strconv.FormatFloat(rate, 'g', -1, 64), c.ttl)
	return rate, true
}

// Close releases the Redis connection.
func (c *RedisFixingCache) Close() error {
	return c.client.Close()
}
