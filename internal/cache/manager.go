package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the connection parameters for the shared store.
type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
	OpTimeout   time.Duration
}

// Manager owns the shared Redis client. The client is constructed on first
// use and reused until Invalidate, Reconfigure, or Close.
type Manager struct {
	mu       sync.Mutex
	config   Config
	client   atomic.Pointer[redis.Client]
	external redis.UniversalClient
}

// NewManager creates a Manager that lazily dials Redis from cfg.
func NewManager(cfg Config) *Manager {
	return &Manager{config: cfg}
}

// NewManagerWithClient creates a passthrough Manager around an injected
// client. The Manager never closes an injected client.
func NewManagerWithClient(client redis.UniversalClient) *Manager {
	return &Manager{external: client}
}

// Client returns the shared client, constructing it if needed.
func (m *Manager) Client() redis.UniversalClient {
	if m.external != nil {
		return m.external
	}
	if c := m.client.Load(); c != nil {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if c := m.client.Load(); c != nil {
		return c
	}

	c := redis.NewClient(&redis.Options{
		Addr:         m.config.Addr,
		Password:     m.config.Password,
		DB:           m.config.DB,
		DialTimeout:  m.config.DialTimeout,
		ReadTimeout:  m.config.OpTimeout,
		WriteTimeout: m.config.OpTimeout,
	})
	m.client.Store(c)
	return c
}

// Invalidate closes and drops the managed client so the next operation
// reconstructs it. Injected clients are left untouched.
func (m *Manager) Invalidate() {
	if m.external != nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if c := m.client.Swap(nil); c != nil {
		_ = c.Close()
	}
}

// Reconfigure swaps the connection parameters and invalidates the managed
// client so the next operation dials with the new configuration.
func (m *Manager) Reconfigure(cfg Config) {
	if m.external != nil {
		return
	}

	m.mu.Lock()
	m.config = cfg
	if c := m.client.Swap(nil); c != nil {
		_ = c.Close()
	}
	m.mu.Unlock()
}

// Close releases the managed client. The Manager remains usable; a later
// operation reconstructs the client.
func (m *Manager) Close() {
	m.Invalidate()
}
