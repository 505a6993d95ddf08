package authcore

import (
	"context"
	"errors"
)

const (
	auditEventCooldownBlocked    = "cooldown_blocked"
	auditEventStatusChange       = "account_status_change"
	auditEventStatusLookupFailed = "account_status_lookup_failed"
	auditEventSessionIssued      = "session_credential_issued"
	auditEventPersistentIssued   = "persistent_credential_issued"
	auditEventPasswordRejected   = "password_rejected"
	auditEventTokenDecodeFailed  = "verification_token_decode_failed"
)

// AuditErrorCode defines a public type used by authcore APIs.
//
// AuditErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditErrorCode string

const (
	auditErrInvalidToken AuditErrorCode = "invalid_token"
	auditErrUserNotFound AuditErrorCode = "user_not_found"
	auditErrCancelled    AuditErrorCode = "cancelled"
	auditErrUnavailable  AuditErrorCode = "backend_unavailable"
	auditErrInternal     AuditErrorCode = "internal_error"
)

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	userID string,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp: e.clock().UTC(),
		EventType: eventType,
		UserID:    userID,
		Success:   success,
		Metadata:  metadata,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	e.audit.Emit(ctx, event)
}

func auditErrorCode(err error) AuditErrorCode {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidToken):
		return auditErrInvalidToken
	case errors.Is(err, ErrUserNotFound):
		return auditErrUserNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return auditErrCancelled
	case errors.Is(err, ErrCacheUnavailable), errors.Is(err, ErrPersistentStoreUnavailable):
		return auditErrUnavailable
	default:
		return auditErrInternal
	}
}
