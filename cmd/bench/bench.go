package bench

import (
	"errors"
	"fmt"
	"github.com/ValentinKolb/lockey/lib/common"
	"github.com/ValentinKolb/lockey/lib/lockmgr"
	"github.com/google/uuid"
	gometrics "github.com/rcrowley/go-metrics"
	"sync"
	"time"
)

// Result is the outcome of a benchmark run
type Result struct {
	Threads    int
	Requesters int
	Operations int64         // total number of Acquire and Release calls
	Duration   time.Duration // wall clock time of the run

	Acquire OpResult
	Release OpResult

	// Stats of the lock manager after the run
	Stats lockmgr.Stats
}

// OpResult holds the latency measurements of one operation type
type OpResult struct {
	Count    int64
	Rejected int64
	Mean     time.Duration
	P50      time.Duration
	P99      time.Duration
	Max      time.Duration
}

// Consistent reports whether the counters of the lock manager match a serial
// execution of the recorded operations
func (r *Result) Consistent() bool {
	return r.Stats.Acquired == r.Acquire.Count-r.Acquire.Rejected &&
		r.Stats.Released == r.Release.Count-r.Release.Rejected &&
		int64(r.Stats.Held) == r.Stats.Acquired-r.Stats.Released
}

// OpsPerSec returns the throughput of the run
func (r *Result) OpsPerSec() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Operations) / r.Duration.Seconds()
}

// Run executes conf.Iterations acquire/release rounds spread over conf.Threads
// goroutines and conf.Requesters random requester ids against locks
func Run(locks lockmgr.ILockManager, conf common.Config) (*Result, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	// prepare requester ids
	requesters := make([]string, conf.Requesters)
	for i := range requesters {
		requesters[i] = uuid.NewString()
	}

	registry := gometrics.NewRegistry()
	acquireTimer := gometrics.GetOrRegisterTimer("acquire", registry)
	releaseTimer := gometrics.GetOrRegisterTimer("release", registry)
	acquireRejected := gometrics.GetOrRegisterCounter("acquire.rejected", registry)
	releaseRejected := gometrics.GetOrRegisterCounter("release.rejected", registry)
	defer acquireTimer.Stop()
	defer releaseTimer.Stop()

	var wg sync.WaitGroup
	errCh := make(chan error, conf.Threads)
	start := time.Now()

	for w := 0; w < conf.Threads; w++ {
		// distribute the remainder over the first threads
		n := conf.Iterations / conf.Threads
		if w < conf.Iterations%conf.Threads {
			n++
		}

		wg.Add(1)
		go func(w, n int) {
			defer wg.Done()
			for i := 0; i < n; i++ {
				desc := lockmgr.NewDescriptor(requesters[(w+i*conf.Threads)%len(requesters)], fmt.Sprintf("resource-%d", i))

				t := time.Now()
				err := locks.Acquire(desc)
				acquireTimer.UpdateSince(t)
				if err != nil {
					if !errors.Is(err, lockmgr.ErrObjectAlreadyLocked) {
						errCh <- err
						return
					}
					acquireRejected.Inc(1)
				}

				t = time.Now()
				err = locks.Release(desc)
				releaseTimer.UpdateSince(t)
				if err != nil {
					if !errors.Is(err, lockmgr.ErrObjectNotLocked) {
						errCh <- err
						return
					}
					releaseRejected.Inc(1)
				}
			}
		}(w, n)
	}

	wg.Wait()
	duration := time.Since(start)
	close(errCh)

	if err := <-errCh; err != nil {
		return nil, fmt.Errorf("unexpected lock manager error: %w", err)
	}

	acq := acquireTimer.Snapshot()
	rel := releaseTimer.Snapshot()

	return &Result{
		Threads:    conf.Threads,
		Requesters: conf.Requesters,
		Operations: acq.Count() + rel.Count(),
		Duration:   duration,
		Acquire:    toOpResult(acq, acquireRejected.Count()),
		Release:    toOpResult(rel, releaseRejected.Count()),
		Stats:      locks.Stats(),
	}, nil
}

// toOpResult converts a timer snapshot into an OpResult
func toOpResult(t gometrics.Timer, rejected int64) OpResult {
	ps := t.Percentiles([]float64{0.5, 0.99})
	return OpResult{
		Count:    t.Count(),
		Rejected: rejected,
		Mean:     time.Duration(t.Mean()),
		P50:      time.Duration(ps[0]),
		P99:      time.Duration(ps[1]),
		Max:      time.Duration(t.Max()),
	}
}
