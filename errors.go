package authcore

import "errors"

var (
	// ErrEngineNotReady is an exported constant or variable used by the account-security core.
	ErrEngineNotReady = errors.New("engine not ready")
	// ErrInvalidToken is an exported constant or variable used by the account-security core.
	ErrInvalidToken = errors.New("invalid verification token")
	// ErrUserNotFound is an exported constant or variable used by the account-security core.
	ErrUserNotFound = errors.New("user not found")
	// ErrUnknownStatus is an exported constant or variable used by the account-security core.
	ErrUnknownStatus = errors.New("unknown account status")
	// ErrCacheUnavailable is an exported constant or variable used by the account-security core.
	ErrCacheUnavailable = errors.New("cache unavailable")
	// ErrPersistentStoreUnavailable is an exported constant or variable used by the account-security core.
	ErrPersistentStoreUnavailable = errors.New("persistent token store unavailable")
	// ErrInvalidConfig is an exported constant or variable used by the account-security core.
	ErrInvalidConfig = errors.New("invalid configuration")
)
