package rate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nicholsonjon/authcore/internal/cache"
)

// cooldownSentinel marks an active cooldown window. The value itself carries
// no meaning beyond equality.
const cooldownSentinel = "1"

// CooldownStatus reports whether a rate-limited action is currently blocked
// and when the block lifts.
type CooldownStatus struct {
	ExpireTime time.Time
	OnCooldown bool
	TimeToLive time.Duration
}

// Limiter enforces cooldown windows and attempt counters on top of the
// shared TTL cache.
type Limiter struct {
	cache *cache.Cache
}

// New creates a Limiter over the given cache.
func New(c *cache.Cache) *Limiter {
	return &Limiter{cache: c}
}

// CooldownStatus atomically establishes or extends the cooldown window at
// key and reports whether the window was already active. now anchors the
// returned ExpireTime.
func (l *Limiter) CooldownStatus(ctx context.Context, key string, ttl time.Duration, now time.Time) (CooldownStatus, error) {
	prev, existed, err := l.cache.SetGet(ctx, key, cooldownSentinel, ttl)
	if err != nil {
		return CooldownStatus{}, err
	}
	onCooldown := existed && prev == cooldownSentinel

	// The window is already written; a cancellation here must not look like
	// a clean completion.
	if err := ctx.Err(); err != nil {
		return CooldownStatus{}, fmt.Errorf("cooldown window written, status read aborted: %w", err)
	}

	remaining, err := l.cache.TTL(ctx, key)
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			// Expired between the two round-trips; the window we just wrote
			// was the freshest information available.
			remaining = ttl
		} else {
			return CooldownStatus{}, err
		}
	}

	return CooldownStatus{
		ExpireTime: now.Add(remaining),
		OnCooldown: onCooldown,
		TimeToLive: remaining,
	}, nil
}

// IncrementCounter atomically increments the counter at key and refreshes
// its expiry to ttl, returning the post-increment value.
func (l *Limiter) IncrementCounter(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	return l.cache.IncrementWithExpiry(ctx, key, ttl)
}
