package authcore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nicholsonjon/authcore/internal"
)

// IssueSessionToken builds and signs a session credential for the given
// identity. A nil validTo uses the configured expiry; expiry is absolute,
// not sliding. The operation is pure given the engine clock; no I/O.
func (e *Engine) IssueSessionToken(userID, displayName, username string, validTo *time.Time) (SessionCredential, error) {
	if e == nil || e.jwtManager == nil {
		return SessionCredential{}, ErrEngineNotReady
	}

	now := e.clock()
	expiresAt := now.Add(e.jwtManager.Expiry())
	if validTo != nil {
		expiresAt = *validTo
	}

	token, err := e.jwtManager.Issue(userID, displayName, username, now, expiresAt)
	if err != nil {
		return SessionCredential{}, err
	}

	e.metricInc(MetricSessionIssued)
	e.emitAudit(context.Background(), auditEventSessionIssued, true, userID, nil, nil)

	return SessionCredential{
		Token:       token,
		UserID:      userID,
		Username:    username,
		DisplayName: displayName,
		IssuedAt:    now,
		ExpiresAt:   expiresAt,
	}, nil
}

// ParseSessionToken verifies a session credential and returns its identity
// claims: the user id, the display name, and the username carried as the
// subject.
func (e *Engine) ParseSessionToken(token string) (userID, displayName, username string, err error) {
	if e == nil || e.jwtManager == nil {
		return "", "", "", ErrEngineNotReady
	}

	claims, err := e.jwtManager.Parse(token)
	if err != nil {
		return "", "", "", err
	}
	return claims.UserID, claims.Name, claims.Subject, nil
}

// IssuePersistentToken generates a persistent (remember-me) credential: a
// generated client id paired with a fresh random secret, persisted through
// the PersistentTokenStore collaborator, which owns the expiration date.
// The secret appears only in the returned credential, never in audit events
// or errors.
func (e *Engine) IssuePersistentToken(ctx context.Context, userID string) (PersistentCredential, error) {
	if e == nil || e.persistent == nil {
		return PersistentCredential{}, ErrEngineNotReady
	}

	clientID := uuid.New().String()
	clientToken, err := internal.NewClientSecret(e.config.Persistent.SecretLength)
	if err != nil {
		return PersistentCredential{}, err
	}

	expirationDate, err := e.persistent.Save(ctx, userID, clientID, clientToken)
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			err = errors.Join(ErrPersistentStoreUnavailable, err)
		}
		e.emitAudit(ctx, auditEventPersistentIssued, false, userID, err, nil)
		return PersistentCredential{}, err
	}

	e.metricInc(MetricPersistentIssued)
	e.emitAudit(ctx, auditEventPersistentIssued, true, userID, nil, func() map[string]string {
		return map[string]string{
			"client_id": clientID,
		}
	})

	return PersistentCredential{
		ClientID:       clientID,
		ClientToken:    clientToken,
		UserID:         userID,
		ExpirationDate: expirationDate,
	}, nil
}
