package lockmgr

import (
	"github.com/VictoriaMetrics/metrics"
	"time"
)

// Metric names exported by the instrumented lock manager
const (
	metricAcquireOK     = `lockey_acquire_total{result="ok"}`
	metricAcquireLocked = `lockey_acquire_total{result="already_locked"}`
	metricReleaseOK     = `lockey_release_total{result="ok"}`
	metricReleaseNotLck = `lockey_release_total{result="not_locked"}`
	metricAcquireDur    = `lockey_operation_duration_seconds{op="acquire"}`
	metricReleaseDur    = `lockey_operation_duration_seconds{op="release"}`
	metricHeld          = `lockey_locks_held`
)

type instrumentedLockMgr struct {
	ILockManager

	acquireOK     *metrics.Counter
	acquireLocked *metrics.Counter
	releaseOK     *metrics.Counter
	releaseNotLck *metrics.Counter
	acquireDur    *metrics.Histogram
	releaseDur    *metrics.Histogram
}

// NewInstrumentedLockManager wraps the given lock manager and records
// counters and latency histograms for every Acquire and Release into set.
// The semantics of the wrapped manager are unchanged.
// A set should only be used to instrument a single manager.
func NewInstrumentedLockManager(inner ILockManager, set *metrics.Set) ILockManager {
	m := &instrumentedLockMgr{
		ILockManager:  inner,
		acquireOK:     set.GetOrCreateCounter(metricAcquireOK),
		acquireLocked: set.GetOrCreateCounter(metricAcquireLocked),
		releaseOK:     set.GetOrCreateCounter(metricReleaseOK),
		releaseNotLck: set.GetOrCreateCounter(metricReleaseNotLck),
		acquireDur:    set.GetOrCreateHistogram(metricAcquireDur),
		releaseDur:    set.GetOrCreateHistogram(metricReleaseDur),
	}

	set.GetOrCreateGauge(metricHeld, func() float64 {
		return float64(inner.Len())
	})

	return m
}

func (m *instrumentedLockMgr) Acquire(desc Descriptor) error {
	start := time.Now()
	err := m.ILockManager.Acquire(desc)
	m.acquireDur.UpdateDuration(start)

	if err != nil {
		m.acquireLocked.Inc()
	} else {
		m.acquireOK.Inc()
	}
	return err
}

func (m *instrumentedLockMgr) Release(desc Descriptor) error {
	start := time.Now()
	err := m.ILockManager.Release(desc)
	m.releaseDur.UpdateDuration(start)

	if err != nil {
		m.releaseNotLck.Inc()
	} else {
		m.releaseOK.Inc()
	}
	return err
}
