package authcore

import (
	"context"
	"time"
)

// GetCooldownStatus atomically establishes or extends the cooldown window at
// key and reports whether the window was already active. A non-positive ttl
// falls back to the configured cooldown default.
//
// The check takes two store round-trips; the first writes the window, the
// second reads its remaining life. A cancellation surfacing from this method
// leaves the window written; treat a cancelled check as on-cooldown.
func (e *Engine) GetCooldownStatus(ctx context.Context, key string, ttl time.Duration) (CooldownStatus, error) {
	if e == nil || e.rateLimiter == nil {
		return CooldownStatus{}, ErrEngineNotReady
	}
	if ttl <= 0 {
		ttl = e.config.RateLimit.CooldownTTL
	}

	result, err := e.rateLimiter.CooldownStatus(ctx, key, ttl, e.clock())
	if err != nil {
		return CooldownStatus{}, translateStoreErr(err)
	}

	if result.OnCooldown {
		e.metricInc(MetricCooldownBlocked)
		e.emitAudit(ctx, auditEventCooldownBlocked, false, "", nil, func() map[string]string {
			return map[string]string{
				"key": key,
			}
		})
	} else {
		e.metricInc(MetricCooldownStarted)
	}

	return CooldownStatus{
		ExpireTime: result.ExpireTime,
		OnCooldown: result.OnCooldown,
		TimeToLive: result.TimeToLive,
	}, nil
}

// IncrementCounter atomically increments the counter at key, refreshes its
// expiry to ttl, and returns the post-increment value. A non-positive ttl
// falls back to the configured counter default.
//
// A cancellation surfacing from this method leaves the increment state
// unknown; treat it as not yet confirmed and fail closed.
func (e *Engine) IncrementCounter(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	if e == nil || e.rateLimiter == nil {
		return 0, ErrEngineNotReady
	}
	if ttl <= 0 {
		ttl = e.config.RateLimit.CounterTTL
	}

	count, err := e.rateLimiter.IncrementCounter(ctx, key, ttl)
	if err != nil {
		return 0, translateStoreErr(err)
	}

	e.metricInc(MetricCounterIncremented)
	return count, nil
}
