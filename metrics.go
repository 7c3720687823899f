package sigsched

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by a scheduler to report queueing and
// execution activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {

	// IncScheduled increments the scheduled actions counter.
	IncScheduled()

	// IncExecuted increments the executed actions counter.
	IncExecuted()

	// IncSkipped increments the counter of actions skipped because
	// their token was disposed before execution.
	IncSkipped()

	// IncFailed increments the counter of actions that exhausted their
	// attempts or panicked.
	IncFailed()

	// IncWorkerSpawn increments the worker spawn counter.
	//
	// Only the background variant reports spawns; each idle-to-busy
	// transition counts once.
	IncWorkerSpawn()
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	scheduled atomic.Uint64

	_ [56]byte // padding to avoid false sharing

	executed atomic.Uint64
	skipped  atomic.Uint64
	failed   atomic.Uint64
	spawns   atomic.Uint64
}

// Scheduled returns the total number of scheduled actions.
func (m *AtomicMetrics) Scheduled() uint64 {
	return m.scheduled.Load()
}

// Executed returns the total number of actions run to completion.
func (m *AtomicMetrics) Executed() uint64 {
	return m.executed.Load()
}

// Skipped returns the number of actions cancelled before execution.
func (m *AtomicMetrics) Skipped() uint64 {
	return m.skipped.Load()
}

// Failed returns the number of actions that failed permanently.
func (m *AtomicMetrics) Failed() uint64 {
	return m.failed.Load()
}

// WorkerSpawns returns the number of workers started.
func (m *AtomicMetrics) WorkerSpawns() uint64 {
	return m.spawns.Load()
}

func (m *AtomicMetrics) IncScheduled()   { m.scheduled.Add(1) }
func (m *AtomicMetrics) IncExecuted()    { m.executed.Add(1) }
func (m *AtomicMetrics) IncSkipped()     { m.skipped.Add(1) }
func (m *AtomicMetrics) IncFailed()      { m.failed.Add(1) }
func (m *AtomicMetrics) IncWorkerSpawn() { m.spawns.Add(1) }

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
//
// It can be used when metrics collection is disabled and
// zero overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncScheduled()   {}
func (m *NoopMetrics) IncExecuted()    {}
func (m *NoopMetrics) IncSkipped()     {}
func (m *NoopMetrics) IncFailed()      {}
func (m *NoopMetrics) IncWorkerSpawn() {}
