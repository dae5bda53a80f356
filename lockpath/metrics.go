package lockpath

import (
	"sync/atomic"
	"time"
)

// Metrics defines the interface for recording lock traversal metrics.
// All methods must be safe for concurrent use.
type Metrics interface {
	// IncrAcquire increments counters for lock acquisition attempts.
	// `success` indicates whether the attempt succeeded.
	// `exclusive` indicates whether write access was requested.
	IncrAcquire(success bool, exclusive bool)

	// ObserveAcquireLatency records the time taken to acquire a lock.
	ObserveAcquireLatency(latency time.Duration, exclusive bool)

	// ObserveHoldDuration records how long a lock was held across one
	// traversal, from acquisition to release.
	ObserveHoldDuration(holdTime time.Duration, exclusive bool)

	// Reset clears all metrics.
	Reset()
}

// No-op metrics implementation
type noOpMetrics struct{}

// NewNoOpMetrics creates a metrics implementation that does nothing.
func NewNoOpMetrics() Metrics {
	return &noOpMetrics{}
}

func (m *noOpMetrics) IncrAcquire(success bool, exclusive bool)                      {}
func (m *noOpMetrics) ObserveAcquireLatency(latency time.Duration, exclusive bool)   {}
func (m *noOpMetrics) ObserveHoldDuration(holdTime time.Duration, exclusive bool)    {}
func (m *noOpMetrics) Reset()                                                        {}

// StdMetrics is an in-memory Metrics implementation backed by atomic
// counters. Latencies are accumulated as running totals; callers derive
// averages from the matching counters.
type StdMetrics struct {
	acquireSuccess  atomic.Uint64
	acquireFailure  atomic.Uint64
	exclusiveCount  atomic.Uint64
	acquireLatencyNs atomic.Int64
	holdDurationNs   atomic.Int64
}

// NewStdMetrics returns an empty StdMetrics.
func NewStdMetrics() *StdMetrics {
	return &StdMetrics{}
}

func (m *StdMetrics) IncrAcquire(success bool, exclusive bool) {
	if success {
		m.acquireSuccess.Add(1)
	} else {
		m.acquireFailure.Add(1)
	}
	if exclusive {
		m.exclusiveCount.Add(1)
	}
}

func (m *StdMetrics) ObserveAcquireLatency(latency time.Duration, exclusive bool) {
	m.acquireLatencyNs.Add(int64(latency))
}

func (m *StdMetrics) ObserveHoldDuration(holdTime time.Duration, exclusive bool) {
	m.holdDurationNs.Add(int64(holdTime))
}

func (m *StdMetrics) Reset() {
	m.acquireSuccess.Store(0)
	m.acquireFailure.Store(0)
	m.exclusiveCount.Store(0)
	m.acquireLatencyNs.Store(0)
	m.holdDurationNs.Store(0)
}

// AcquireSuccesses returns the number of successful acquisitions recorded.
func (m *StdMetrics) AcquireSuccesses() uint64 { return m.acquireSuccess.Load() }

// AcquireFailures returns the number of failed acquisitions recorded.
func (m *StdMetrics) AcquireFailures() uint64 { return m.acquireFailure.Load() }

// ExclusiveAcquires returns the number of write-access attempts recorded.
func (m *StdMetrics) ExclusiveAcquires() uint64 { return m.exclusiveCount.Load() }

// TotalAcquireLatency returns the accumulated acquisition latency.
func (m *StdMetrics) TotalAcquireLatency() time.Duration {
	return time.Duration(m.acquireLatencyNs.Load())
}

// TotalHoldDuration returns the accumulated lock hold time.
func (m *StdMetrics) TotalHoldDuration() time.Duration {
	return time.Duration(m.holdDurationNs.Load())
}
