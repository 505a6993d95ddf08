package authcore

import "sync/atomic"

// MetricID defines a public type used by authcore APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID uint16

const (
	// MetricCooldownStarted is an exported constant or variable used by the account-security core.
	MetricCooldownStarted MetricID = iota
	// MetricCooldownBlocked is an exported constant or variable used by the account-security core.
	MetricCooldownBlocked
	// MetricCounterIncremented is an exported constant or variable used by the account-security core.
	MetricCounterIncremented
	// MetricStatusCacheHit is an exported constant or variable used by the account-security core.
	MetricStatusCacheHit
	// MetricStatusCacheMiss is an exported constant or variable used by the account-security core.
	MetricStatusCacheMiss
	// MetricStatusWritten is an exported constant or variable used by the account-security core.
	MetricStatusWritten
	// MetricSessionIssued is an exported constant or variable used by the account-security core.
	MetricSessionIssued
	// MetricPersistentIssued is an exported constant or variable used by the account-security core.
	MetricPersistentIssued
	// MetricPasswordRejected is an exported constant or variable used by the account-security core.
	MetricPasswordRejected
	// MetricTokenDecodeFailed is an exported constant or variable used by the account-security core.
	MetricTokenDecodeFailed
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics defines a public type used by authcore APIs.
//
// Metrics instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot defines a public type used by authcore APIs.
//
// MetricsSnapshot instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics describes the newmetrics operation and its observable behavior.
//
// NewMetrics does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled describes the enabled operation and its observable behavior.
//
// Enabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc describes the inc operation and its observable behavior.
//
// Inc does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Snapshot describes the snapshot operation and its observable behavior.
//
// Snapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snapshot := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, metricIDCount),
	}
	if m == nil || !m.enabled {
		return snapshot
	}

	for id := MetricID(0); id < metricIDCount; id++ {
		snapshot.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return snapshot
}
