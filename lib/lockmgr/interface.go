package lockmgr

// ILockManager defines the interface for a lock manager.
type ILockManager interface {
	// Acquire locks the descriptor's resource for the descriptor's requester.
	// It fails with an *AcquireError if the requester already holds a lock,
	// in which case the lock table is not modified.
	Acquire(desc Descriptor) (err error)

	// Release releases the lock currently held by the descriptor's requester.
	// Only the requester ID is consulted, the resource ID is ignored.
	// It fails with a *ReleaseError if the requester holds no lock.
	Release(desc Descriptor) (err error)

	// IsLocked reports whether the requester currently holds a lock.
	IsLocked(requesterID string) bool

	// Holding returns the resource currently held by the requester.
	// The boolean return value indicates whether the requester holds a lock.
	Holding(requesterID string) (resourceID string, ok bool)

	// Len returns the number of requesters currently holding a lock.
	Len() int

	// Stats returns a snapshot of the operation counters of the manager.
	Stats() Stats
}

// Stats contains the operation counters of a lock manager.
type Stats struct {
	Acquired        int64 // successful Acquire calls
	Released        int64 // successful Release calls
	AcquireRejected int64 // Acquire calls that failed with ErrObjectAlreadyLocked
	ReleaseRejected int64 // Release calls that failed with ErrObjectNotLocked
	Held            int   // current number of entries in the lock table
}
