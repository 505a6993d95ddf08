package authcore

import (
	"context"
	"errors"

	"github.com/nicholsonjon/authcore/internal/cache"
	"github.com/nicholsonjon/authcore/internal/rate"
	"github.com/nicholsonjon/authcore/internal/status"
	"github.com/nicholsonjon/authcore/jwt"
	"github.com/nicholsonjon/authcore/password"
	"github.com/nicholsonjon/authcore/vtoken"
)

// Engine defines a public type used by authcore APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config       Config
	cacheManager *cache.Manager
	rateLimiter  *rate.Limiter
	statusStore  *status.Store
	codec        *vtoken.Codec
	validator    *password.Validator
	hasher       *password.Hasher
	jwtManager   *jwt.Manager
	persistent   PersistentTokenStore
	clock        Clock
	audit        *auditDispatcher
	metrics      *Metrics
}

// Close flushes the audit dispatcher and releases the managed store
// connection. Injected Redis clients are left open.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
	if e.cacheManager != nil {
		e.cacheManager.Close()
	}
}

// InvalidateConnection drops the managed store connection so the next
// operation reconstructs it. Used on configuration-change notifications.
func (e *Engine) InvalidateConnection() {
	if e == nil || e.cacheManager == nil {
		return
	}
	e.cacheManager.Invalidate()
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters: map[MetricID]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// translateStoreErr maps internal cache failures onto the public sentinel
// while letting context errors pass through untouched, so callers can tell
// "cancelled, side-effect state unknown" from "failed cleanly".
func translateStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, cache.ErrUnavailable) {
		return errors.Join(ErrCacheUnavailable, err)
	}
	return err
}

// providerAdapter bridges the public UserProvider onto the integer-code
// contract of the internal status store.
type providerAdapter struct {
	provider UserProvider
}

func (a providerAdapter) StatusByUserID(ctx context.Context, userID string) (int, error) {
	record, err := a.provider.GetUserByID(ctx, userID)
	if err != nil {
		return 0, err
	}
	return int(record.Status), nil
}

func (a providerAdapter) UpdateStatus(ctx context.Context, userID string, code int) error {
	resolved, ok := statusFromCode(code)
	if !ok {
		return ErrUnknownStatus
	}
	return a.provider.UpdateAccountStatus(ctx, userID, resolved)
}
