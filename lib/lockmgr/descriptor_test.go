package lockmgr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptor(t *testing.T) {
	d := NewDescriptor("u1", "o1")
	assert.Equal(t, "u1", d.RequesterID)
	assert.Equal(t, "o1", d.ResourceID)
	assert.Equal(t, "u1 -> o1", d.String())

	// structural equality
	assert.True(t, d == NewDescriptor("u1", "o1"))
	assert.False(t, d == NewDescriptor("u1", "o2"))
}

func TestErrorMessages(t *testing.T) {
	acq := &AcquireError{Descriptor: NewDescriptor("u1", "o2"), Held: "o1"}
	assert.Equal(t, "acquire u1 -> o2: this object has already been locked (holding o1)", acq.Error())
	assert.True(t, errors.Is(acq, ErrObjectAlreadyLocked))

	rel := &ReleaseError{Descriptor: NewDescriptor("u1", "o1")}
	assert.Equal(t, "release u1 -> o1: this object was not locked before", rel.Error())
	assert.True(t, errors.Is(rel, ErrObjectNotLocked))
}
