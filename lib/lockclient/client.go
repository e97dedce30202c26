// Package lockclient is the calling layer on top of a lockmgr.ILockManager.
// It turns plain requester and resource identifiers into lock descriptors,
// forwards them to the manager and translates the results for its callers.
//
// The Client type is the programmatic entry point, Session exposes a Client
// through a line based command protocol (used by the lockey CLI).
package lockclient

import (
	"github.com/ValentinKolb/lockey/lib/lockmgr"
)

// Client forwards requests to a lock manager.
type Client struct {
	locks lockmgr.ILockManager
}

// NewClient creates a new client for the given lock manager.
func NewClient(locks lockmgr.ILockManager) *Client {
	return &Client{locks: locks}
}

// Acquire acquires the resource for the requester.
// The returned error is nil or an *lockmgr.AcquireError.
func (c *Client) Acquire(requesterID, resourceID string) error {
	return c.locks.Acquire(lockmgr.NewDescriptor(requesterID, resourceID))
}

// Release releases the lock held by the requester.
// The returned error is nil or an *lockmgr.ReleaseError.
func (c *Client) Release(requesterID, resourceID string) error {
	return c.locks.Release(lockmgr.NewDescriptor(requesterID, resourceID))
}

// Holding returns the resource held by the requester, if any.
func (c *Client) Holding(requesterID string) (string, bool) {
	return c.locks.Holding(requesterID)
}

// Stats returns the statistics of the underlying lock manager.
func (c *Client) Stats() lockmgr.Stats {
	return c.locks.Stats()
}
