package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// IdempotencyCache is a best-effort fast path in front of the durable
// idempotency records in Postgres. It only ever holds final results, written
// after a successful commit, so a stale or unavailable cache degrades to a
// table lookup and never changes the outcome of a request.
type IdempotencyCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewIdempotencyCache creates a new IdempotencyCache.
func NewIdempotencyCache(client *redis.Client, ttl time.Duration) *IdempotencyCache {
	return &IdempotencyCache{
		client: client,
		prefix: "idempotency:",
		ttl:    ttl,
	}
}

// Get returns the cached movement id for key. Any redis failure reads as a
// miss.
func (c *IdempotencyCache) Get(ctx context.Context, key string) (string, bool) {
	result, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		return "", false
	}

	return result, true
}

// Set stores the movement id for key. Failures are ignored; the durable
// record already exists.
func (c *IdempotencyCache) Set(ctx context.Context, key, result string) {
	c.client.Set(ctx, c.prefix+key, result, c.ttl)
}
