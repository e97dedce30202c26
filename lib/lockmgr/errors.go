package lockmgr

import (
	"errors"
	"fmt"
)

// --------------------------------------------------------------------------
// Sentinel Errors
// --------------------------------------------------------------------------

var (
	// ErrObjectAlreadyLocked is returned (wrapped in an *AcquireError) by
	// Acquire when the requester already holds a lock.
	ErrObjectAlreadyLocked = errors.New("this object has already been locked")

	// ErrObjectNotLocked is returned (wrapped in a *ReleaseError) by
	// Release when the requester holds no lock.
	ErrObjectNotLocked = errors.New("this object was not locked before")
)

// --------------------------------------------------------------------------
// Operation Error Types
// --------------------------------------------------------------------------

// AcquireError is the only error type returned by Acquire.
type AcquireError struct {
	Descriptor Descriptor // The rejected request
	Held       string     // The resource the requester already holds
}

// Error implements the error interface.
func (e *AcquireError) Error() string {
	return fmt.Sprintf("acquire %s: %s (holding %s)", e.Descriptor, ErrObjectAlreadyLocked, e.Held)
}

// Unwrap returns ErrObjectAlreadyLocked.
func (e *AcquireError) Unwrap() error {
	return ErrObjectAlreadyLocked
}

// ReleaseError is the only error type returned by Release.
type ReleaseError struct {
	Descriptor Descriptor // The rejected request
}

// Error implements the error interface.
func (e *ReleaseError) Error() string {
	return fmt.Sprintf("release %s: %s", e.Descriptor, ErrObjectNotLocked)
}

// Unwrap returns ErrObjectNotLocked.
func (e *ReleaseError) Unwrap() error {
	return ErrObjectNotLocked
}
