package authcore

import (
	"context"
)

// GetAccountStatus returns the account status for userID, answering from
// the cache when possible and falling back to the system of record on miss
// or unparsable value. The resolved status is written back to the cache
// before returning. A user absent from the system of record surfaces
// ErrUserNotFound; a failed lookup is never coerced into a default status.
func (e *Engine) GetAccountStatus(ctx context.Context, userID string) (AccountStatus, error) {
	if e == nil || e.statusStore == nil {
		return 0, ErrEngineNotReady
	}

	code, fromCache, err := e.statusStore.Get(ctx, userID)
	if err != nil {
		err = translateStoreErr(err)
		e.emitAudit(ctx, auditEventStatusLookupFailed, false, userID, err, nil)
		return 0, err
	}

	resolved, ok := statusFromCode(code)
	if !ok {
		// The store only returns validated cache values; an out-of-range
		// code can only come from the system of record.
		return 0, ErrUnknownStatus
	}

	if fromCache {
		e.metricInc(MetricStatusCacheHit)
	} else {
		e.metricInc(MetricStatusCacheMiss)
	}

	return resolved, nil
}

// SetAccountStatus writes the new status through to both the cache and the
// system of record. Caller cancellation is deliberately not honored between
// the two writes so the pair cannot be split.
func (e *Engine) SetAccountStatus(ctx context.Context, userID string, accountStatus AccountStatus) error {
	if e == nil || e.statusStore == nil {
		return ErrEngineNotReady
	}
	if _, ok := statusFromCode(int(accountStatus)); !ok {
		return ErrUnknownStatus
	}

	err := translateStoreErr(e.statusStore.Set(ctx, userID, int(accountStatus)))
	if err == nil {
		e.metricInc(MetricStatusWritten)
	}
	e.emitAudit(ctx, auditEventStatusChange, err == nil, userID, err, func() map[string]string {
		return map[string]string{
			"status": accountStatus.String(),
		}
	})
	return err
}
