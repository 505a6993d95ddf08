package status

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/nicholsonjon/authcore/internal/cache"
)

// Provider is the system of record consulted on cache miss. Implementations
// return their not-found sentinel unwrapped so it survives to the caller.
type Provider interface {
	StatusByUserID(ctx context.Context, userID string) (int, error)
	UpdateStatus(ctx context.Context, userID string, code int) error
}

// Config tunes the status cache.
type Config struct {
	KeyPrefix string
	ValueTTL  time.Duration
	// MaxCode bounds the known status codes; cached values outside
	// [0, MaxCode] are treated as a miss.
	MaxCode int
}

// Store maps a user identifier to an account-status code through the shared
// cache, falling back to the Provider.
type Store struct {
	cache    *cache.Cache
	provider Provider
	config   Config
}

// New creates a status Store.
func New(c *cache.Cache, provider Provider, cfg Config) *Store {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "status:"
	}
	return &Store{cache: c, provider: provider, config: cfg}
}

// Get returns the status code for userID. fromCache reports whether the
// cache answered; on fallback the resolved code is written back before
// returning.
func (s *Store) Get(ctx context.Context, userID string) (code int, fromCache bool, err error) {
	raw, err := s.cache.Get(ctx, s.key(userID))
	if err == nil {
		if code, ok := s.parse(raw); ok {
			return code, true, nil
		}
		// Unparsable value: repopulate below.
	} else if !errors.Is(err, cache.ErrMiss) {
		return 0, false, err
	}

	code, err = s.provider.StatusByUserID(ctx, userID)
	if err != nil {
		return 0, false, err
	}

	if err := s.cache.Set(ctx, s.key(userID), strconv.Itoa(code), s.config.ValueTTL); err != nil {
		return 0, false, err
	}
	return code, false, nil
}

// Set writes the status code to the cache and then to the system of record.
// Caller cancellation is deliberately not honored between the two writes.
func (s *Store) Set(ctx context.Context, userID string, code int) error {
	ctx = context.WithoutCancel(ctx)

	if err := s.cache.Set(ctx, s.key(userID), strconv.Itoa(code), s.config.ValueTTL); err != nil {
		return err
	}
	return s.provider.UpdateStatus(ctx, userID, code)
}

func (s *Store) key(userID string) string {
	return s.config.KeyPrefix + userID
}

func (s *Store) parse(raw string) (int, bool) {
	code, err := strconv.Atoi(raw)
	if err != nil || code < 0 || code > s.config.MaxCode {
		return 0, false
	}
	return code, true
}
