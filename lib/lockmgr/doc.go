// Package lockmgr implements an in-process advisory lock manager. It grants
// and revokes exclusive ownership of named resources to named requesters,
// guarded by a single point of serialization.
//
// Core Functionality:
//   - Lock acquisition that fails immediately if the requester already holds a lock
//   - Lock release by requester identity (the resource is not verified)
//   - Per manager statistics about successful and rejected operations
//
// Implementation Approach:
//
//	The manager keeps a lock table mapping every requester to the single
//	resource it currently holds. A requester is LOCKED if and only if it is
//	present in the table. Both Acquire and Release perform their complete
//	check-then-mutate sequence while holding one sync.Mutex, so no
//	intermediate state is ever visible to other callers.
//
//	Note that the table is keyed by requester, not by resource. Two
//	different requesters can therefore hold the same resource identifier at
//	the same time.
//
// Thread Safety:
//
//	All methods are safe for concurrent use. Every operation, including the
//	read-only ones, takes the same exclusive lock, which imposes a total
//	order on all operations of a manager.
//
// Errors:
//
//	Acquire only ever fails with an *AcquireError (errors.Is(err,
//	ErrObjectAlreadyLocked) holds), Release only ever fails with a
//	*ReleaseError (errors.Is(err, ErrObjectNotLocked) holds). Both are
//	ordinary contention outcomes, the manager never logs or retries them.
//
// Usage Example:
//
//	locks := lockmgr.NewLockManager()
//
//	desc := lockmgr.NewDescriptor("user-1", "resource:123")
//	if err := locks.Acquire(desc); errors.Is(err, lockmgr.ErrObjectAlreadyLocked) {
//	    // the requester already holds a lock
//	}
//
//	// Use the resource safely
//	// ...
//
//	if err := locks.Release(desc); err != nil {
//	    // the requester did not hold a lock
//	}
//
// Metrics:
//
//	NewInstrumentedLockManager wraps any ILockManager and exports operation
//	counters and latencies to a VictoriaMetrics metrics.Set.
package lockmgr
