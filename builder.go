package authcore

import (
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nicholsonjon/authcore/internal/cache"
	"github.com/nicholsonjon/authcore/internal/rate"
	"github.com/nicholsonjon/authcore/internal/status"
	"github.com/nicholsonjon/authcore/jwt"
	"github.com/nicholsonjon/authcore/password"
	"github.com/nicholsonjon/authcore/vtoken"
)

// Builder defines a public type used by authcore APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  redis.UniversalClient

	userProvider    UserProvider
	persistentStore PersistentTokenStore
	auditSink       AuditSink
	clock           Clock

	built bool
}

// New describes the new operation and its observable behavior.
//
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis injects an existing Redis client. The engine never closes an
// injected client; without one, Build wires a lazily dialed connection from
// the cache configuration.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithUserProvider describes the withuserprovider operation and its observable behavior.
//
// WithUserProvider does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithUserProvider(up UserProvider) *Builder {
	b.userProvider = up
	return b
}

// WithPersistentTokenStore describes the withpersistenttokenstore operation and its observable behavior.
//
// WithPersistentTokenStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithPersistentTokenStore(store PersistentTokenStore) *Builder {
	b.persistentStore = store
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithClock describes the withclock operation and its observable behavior.
//
// WithClock does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithClock(clock Clock) *Builder {
	b.clock = clock
	return b
}

// Build validates the configuration, resolves the hash-dependent codec, and
// wires the engine. Configuration failures surface here, never per call.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	b.built = true

	cfg := b.config
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	codec, err := vtoken.NewCodec(cfg.Verification.PepperLength, cfg.Verification.HashName)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	validator, err := password.NewValidator(password.Config{
		MinEntropyBits: cfg.Password.MinEntropyBits,
		MaxLength:      cfg.Password.MaxLength,
		BlacklistPath:  cfg.Password.BlacklistPath,
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	hasher, err := password.NewHasher(password.Params{
		Memory:      cfg.Password.HashMemory,
		Time:        cfg.Password.HashTime,
		Parallelism: cfg.Password.HashParallelism,
		SaltLength:  cfg.Password.HashSaltLength,
		KeyLength:   cfg.Password.HashKeyLength,
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	clock := b.clock
	if clock == nil {
		clock = time.Now
	}

	jwtManager, err := jwt.NewManager(jwt.Config{
		Issuer:        cfg.Session.Issuer,
		Audience:      cfg.Session.Audience,
		Expiry:        cfg.Session.Expiry,
		Secret:        cfg.Session.Secret,
		SigningMethod: jwt.SigningMethod(cfg.Session.SigningMethod),
		Now:           clock,
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	var cacheManager *cache.Manager
	if b.redis != nil {
		cacheManager = cache.NewManagerWithClient(b.redis)
	} else {
		cacheManager = cache.NewManager(cache.Config{
			Addr:        cfg.Cache.Addr,
			Password:    cfg.Cache.Password,
			DB:          cfg.Cache.DB,
			DialTimeout: cfg.Cache.DialTimeout,
			OpTimeout:   cfg.Cache.OpTimeout,
		})
	}
	ttlCache := cache.New(cacheManager)

	engine := &Engine{
		config:       cfg,
		cacheManager: cacheManager,
		rateLimiter:  rate.New(ttlCache),
		codec:        codec,
		validator:    validator,
		hasher:       hasher,
		jwtManager:   jwtManager,
		persistent:   b.persistentStore,
		clock:        clock,
		audit:        newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics:      NewMetrics(cfg.Metrics),
	}

	if b.userProvider != nil {
		engine.statusStore = status.New(ttlCache, providerAdapter{provider: b.userProvider}, status.Config{
			KeyPrefix: cfg.Status.KeyPrefix,
			ValueTTL:  cfg.Status.ValueTTL,
			MaxCode:   int(maxAccountStatus),
		})
	}

	return engine, nil
}
