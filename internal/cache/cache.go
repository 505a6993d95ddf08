package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrExpireLua atomically increments a counter and refreshes its expiry.
// KEYS[1] = counter key
// ARGV[1] = ttl in milliseconds
//
// The single call avoids the window where a concurrently expiring key could
// drop an increment between a plain INCR and a follow-up EXPIRE.
var incrExpireLua = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
redis.call('PEXPIRE', KEYS[1], ARGV[1])
return count
`)

// Cache exposes the TTL key-value operations used by the rate limiter and
// the status store. All methods are safe for concurrent use.
type Cache struct {
	manager *Manager
}

// New creates a Cache over the given connection Manager.
func New(manager *Manager) *Cache {
	return &Cache{manager: manager}
}

// Set stores value under key with the given expiry.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.manager.Client().Set(ctx, key, value, ttl).Err(); err != nil {
		return wrapStoreErr(err)
	}
	return nil
}

// Get returns the value stored under key. Absent keys return ErrMiss.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.manager.Client().Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrMiss
		}
		return "", wrapStoreErr(err)
	}
	return value, nil
}

// SetGet atomically stores value under key with the given expiry and returns
// the prior value. existed reports whether the key held a value before the
// write.
func (c *Cache) SetGet(ctx context.Context, key, value string, ttl time.Duration) (prev string, existed bool, err error) {
	prev, err = c.manager.Client().SetArgs(ctx, key, value, redis.SetArgs{
		TTL: ttl,
		Get: true,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, wrapStoreErr(err)
	}
	return prev, true, nil
}

// TTL returns the remaining expiry of key. Keys that are absent or carry no
// expiry return ErrMiss.
func (c *Cache) TTL(ctx context.Context, key string) (time.Duration, error) {
	remaining, err := c.manager.Client().PTTL(ctx, key).Result()
	if err != nil {
		return 0, wrapStoreErr(err)
	}
	if remaining < 0 {
		return 0, ErrMiss
	}
	return remaining, nil
}

// IncrementWithExpiry atomically increments the counter at key (creating it
// at 1) and refreshes its expiry to ttl, returning the post-increment value.
func (c *Cache) IncrementWithExpiry(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	count, err := incrExpireLua.Run(ctx, c.manager.Client(), []string{key}, ttl.Milliseconds()).Int64()
	if err != nil {
		return 0, wrapStoreErr(err)
	}
	return count, nil
}

func wrapStoreErr(err error) error {
	// Context errors pass through so callers can tell cancellation apart
	// from a store failure.
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
