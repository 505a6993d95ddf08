package authcore

import (
	"context"
	"time"
)

// AccountStatus defines a public type used by authcore APIs.
//
// AccountStatus instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AccountStatus uint8

const (
	// StatusEmailNotVerified is an exported constant or variable used by the account-security core.
	StatusEmailNotVerified AccountStatus = iota
	// StatusPasswordChangeRequired is an exported constant or variable used by the account-security core.
	StatusPasswordChangeRequired
	// StatusEmailNotVerifiedAndPasswordChangeRequired is an exported constant or variable used by the account-security core.
	StatusEmailNotVerifiedAndPasswordChangeRequired
	// StatusOK is an exported constant or variable used by the account-security core.
	StatusOK
	// StatusSuspended is an exported constant or variable used by the account-security core.
	StatusSuspended

	maxAccountStatus = StatusSuspended
)

// String describes the string operation and its observable behavior.
func (s AccountStatus) String() string {
	switch s {
	case StatusEmailNotVerified:
		return "email not verified"
	case StatusPasswordChangeRequired:
		return "password change required"
	case StatusEmailNotVerifiedAndPasswordChangeRequired:
		return "email not verified and password change required"
	case StatusOK:
		return "ok"
	case StatusSuspended:
		return "suspended"
	default:
		return "unknown"
	}
}

func statusFromCode(code int) (AccountStatus, bool) {
	if code < 0 || code > int(maxAccountStatus) {
		return 0, false
	}
	return AccountStatus(code), true
}

// UserRecord is the account view of the system of record consumed by this
// core.
//
// UserRecord instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type UserRecord struct {
	UserID      string
	Username    string
	DisplayName string
	Status      AccountStatus
}

// UserProvider is the system-of-record collaborator. GetUserByID returns
// ErrUserNotFound (possibly wrapped) when no such user exists.
type UserProvider interface {
	GetUserByID(ctx context.Context, userID string) (UserRecord, error)
	UpdateAccountStatus(ctx context.Context, userID string, status AccountStatus) error
}

// PersistentTokenStore durably persists persistent credentials keyed by
// client id and returns the credential's expiration date.
type PersistentTokenStore interface {
	Save(ctx context.Context, userID, clientID, clientToken string) (time.Time, error)
}

// Clock supplies the current time. Injectable for tests; defaults to
// time.Now.
type Clock func() time.Time

// CooldownStatus reports whether a rate-limited action is currently blocked
// and when the block lifts. Produced fresh on every check; never mutated.
//
// CooldownStatus instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CooldownStatus struct {
	ExpireTime time.Time
	OnCooldown bool
	TimeToLive time.Duration
}

// VerificationToken is the decoded form of the opaque token exchanged with
// clients over email links. Pepper and Token are base64-encoded; Username
// is UTF-8 text.
//
// VerificationToken instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type VerificationToken struct {
	Pepper   string
	Token    string
	Username string
}

// SessionCredential is a short-lived signed token asserting identity claims.
// Expiry is absolute, not sliding.
//
// SessionCredential instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionCredential struct {
	Token       string
	UserID      string
	Username    string
	DisplayName string
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// PersistentCredential is a long-lived opaque credential enabling silent
// session renewal. ClientToken is the only copy of the secret; it is never
// logged or audited.
//
// PersistentCredential instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PersistentCredential struct {
	ClientID       string
	ClientToken    string
	UserID         string
	ExpirationDate time.Time
}
