package authcore

import (
	"fmt"
	"time"
)

// Config defines a public type used by authcore APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Cache        CacheConfig
	RateLimit    RateLimitConfig
	Status       StatusConfig
	Verification VerificationConfig
	Password     PasswordConfig
	Session      SessionConfig
	Persistent   PersistentConfig
	Audit        AuditConfig
	Metrics      MetricsConfig
}

/*
====================================
CACHE CONFIG
====================================
*/

// CacheConfig defines a public type used by authcore APIs.
//
// CacheConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CacheConfig struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
	OpTimeout   time.Duration
}

/*
====================================
RATE LIMIT CONFIG
====================================
*/

// RateLimitConfig defines a public type used by authcore APIs.
//
// RateLimitConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RateLimitConfig struct {
	// CooldownTTL and CounterTTL are the defaults applied when a caller
	// passes a non-positive ttl.
	CooldownTTL time.Duration
	CounterTTL  time.Duration
}

/*
====================================
STATUS CONFIG
====================================
*/

// StatusConfig defines a public type used by authcore APIs.
//
// StatusConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type StatusConfig struct {
	KeyPrefix string
	ValueTTL  time.Duration
}

/*
====================================
VERIFICATION CONFIG
====================================
*/

// VerificationConfig defines a public type used by authcore APIs.
//
// VerificationConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type VerificationConfig struct {
	PepperLength int
	// HashName selects the digest that sizes the token field: MD5, SHA1,
	// SHA256, SHA384, or SHA512.
	HashName string
}

/*
====================================
PASSWORD CONFIG
====================================
*/

// PasswordConfig defines a public type used by authcore APIs.
//
// PasswordConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PasswordConfig struct {
	MinEntropyBits float64
	MaxLength      int
	BlacklistPath  string

	// Argon2id cost parameters for hashing accepted passwords.
	HashMemory      uint32
	HashTime        uint32
	HashParallelism uint8
	HashSaltLength  uint32
	HashKeyLength   uint32
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by authcore APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	Issuer        string
	Audience      string
	Expiry        time.Duration
	Secret        []byte
	SigningMethod string // "hs256" (default), "hs384", "hs512"
}

/*
====================================
PERSISTENT CONFIG
====================================
*/

// PersistentConfig defines a public type used by authcore APIs.
//
// PersistentConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type PersistentConfig struct {
	SecretLength int
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig defines a public type used by authcore APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig defines a public type used by authcore APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			Addr:        "localhost:6379",
			DialTimeout: 5 * time.Second,
			OpTimeout:   3 * time.Second,
		},
		RateLimit: RateLimitConfig{
			CooldownTTL: 5 * time.Minute,
			CounterTTL:  15 * time.Minute,
		},
		Status: StatusConfig{
			KeyPrefix: "status:",
			ValueTTL:  30 * time.Minute,
		},
		Verification: VerificationConfig{
			PepperLength: 32,
			HashName:     "SHA512",
		},
		Password: PasswordConfig{
			MinEntropyBits:  40,
			MaxLength:       128,
			HashMemory:      65536,
			HashTime:        3,
			HashParallelism: 2,
			HashSaltLength:  16,
			HashKeyLength:   32,
		},
		Session: SessionConfig{
			Expiry:        30 * time.Minute,
			SigningMethod: "hs256",
		},
		Persistent: PersistentConfig{
			SecretLength: 32,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: false,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	if cfg.Session.Secret != nil {
		out.Session.Secret = append([]byte(nil), cfg.Session.Secret...)
	}
	return out
}

// validateConfig checks the fields the engine consumes directly. Component
// constructors (codec, validator, hasher, jwt manager) enforce their own
// invariants at Build.
func validateConfig(cfg Config) error {
	if cfg.RateLimit.CooldownTTL <= 0 || cfg.RateLimit.CounterTTL <= 0 {
		return fmt.Errorf("%w: rate limit TTLs must be positive", ErrInvalidConfig)
	}
	if cfg.Status.ValueTTL <= 0 {
		return fmt.Errorf("%w: status value TTL must be positive", ErrInvalidConfig)
	}
	if cfg.Persistent.SecretLength < 16 {
		return fmt.Errorf("%w: persistent secret length must be at least 16 bytes", ErrInvalidConfig)
	}
	if cfg.Audit.Enabled && cfg.Audit.BufferSize <= 0 {
		return fmt.Errorf("%w: audit buffer size must be positive", ErrInvalidConfig)
	}
	return nil
}
