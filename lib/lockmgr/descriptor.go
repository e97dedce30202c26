package lockmgr

// Descriptor identifies a (requester, resource) pair submitted with every
// lock request. It is a plain value: comparable with == and never retained
// by the manager beyond the call it was passed to.
//
// No validation is performed, empty identifiers are accepted as-is.
type Descriptor struct {
	RequesterID string
	ResourceID  string
}

// NewDescriptor creates a new descriptor for the given requester and resource.
func NewDescriptor(requesterID, resourceID string) Descriptor {
	return Descriptor{
		RequesterID: requesterID,
		ResourceID:  resourceID,
	}
}

// String returns a human readable representation used in log messages.
func (d Descriptor) String() string {
	return d.RequesterID + " -> " + d.ResourceID
}
