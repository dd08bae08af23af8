// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error values for the circbuf library. Overflow and underflow are
// not errors here (push evicts, pop on empty is a no-op); these values
// name the few genuine precondition violations, and reach callers only
// through panics.

package api

import "fmt"

// Common errors used across the library.
var (
	// ErrInvalidCapacity reports a requested capacity below 1.
	ErrInvalidCapacity = fmt.Errorf("capacity must be at least 1")
	// ErrInvalidBlock reports a caller-supplied block too small to hold
	// one element plus the sentinel slot.
	ErrInvalidBlock = fmt.Errorf("block must hold at least 2 slots")
	// ErrNilStorage reports construction over a nil storage backend.
	ErrNilStorage = fmt.Errorf("storage must not be nil")
	// ErrEmptyBuffer reports Front/Back on an empty buffer.
	ErrEmptyBuffer = fmt.Errorf("buffer is empty")
)
