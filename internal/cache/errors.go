package cache

import "errors"

var (
	// ErrUnavailable wraps transport-level failures from the shared store.
	ErrUnavailable = errors.New("cache unavailable")
	// ErrMiss reports an absent key, distinct from a transport failure.
	ErrMiss = errors.New("cache miss")
)
