package lockmgr

import (
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	"sync"
)

var Logger = logger.GetLogger("lockmgr")

type lockMgrImpl struct {
	// mu guards table. Every operation holds it for its whole
	// check-then-mutate sequence.
	mu    sync.Mutex
	table map[string]string // requester -> held resource

	acquired        *xsync.Counter
	released        *xsync.Counter
	acquireRejected *xsync.Counter
	releaseRejected *xsync.Counter
}

// NewLockManager creates a new lock manager with an empty lock table.
func NewLockManager() ILockManager {
	return &lockMgrImpl{
		table:           make(map[string]string),
		acquired:        xsync.NewCounter(),
		released:        xsync.NewCounter(),
		acquireRejected: xsync.NewCounter(),
		releaseRejected: xsync.NewCounter(),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see lockmgr/interface.go)
// --------------------------------------------------------------------------

func (m *lockMgrImpl) Acquire(desc Descriptor) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// A requester holds at most one resource
	if held, ok := m.table[desc.RequesterID]; ok {
		m.acquireRejected.Inc()
		return &AcquireError{Descriptor: desc, Held: held}
	}

	m.table[desc.RequesterID] = desc.ResourceID
	m.acquired.Inc()

	Logger.Debugf("acquired %s (%d locks held)", desc, len(m.table))
	return nil
}

func (m *lockMgrImpl) Release(desc Descriptor) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	held, ok := m.table[desc.RequesterID]
	if !ok {
		m.releaseRejected.Inc()
		return &ReleaseError{Descriptor: desc}
	}

	// Only the requester is checked, desc.ResourceID may differ from held
	delete(m.table, desc.RequesterID)
	m.released.Inc()

	Logger.Debugf("released %s -> %s (%d locks held)", desc.RequesterID, held, len(m.table))
	return nil
}

func (m *lockMgrImpl) IsLocked(requesterID string) bool {
	_, ok := m.Holding(requesterID)
	return ok
}

func (m *lockMgrImpl) Holding(requesterID string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	resourceID, ok := m.table[requesterID]
	return resourceID, ok
}

func (m *lockMgrImpl) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.table)
}

func (m *lockMgrImpl) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Counters are only written while mu is held, so this snapshot is consistent
	return Stats{
		Acquired:        m.acquired.Value(),
		Released:        m.released.Value(),
		AcquireRejected: m.acquireRejected.Value(),
		ReleaseRejected: m.releaseRejected.Value(),
		Held:            len(m.table),
	}
}
