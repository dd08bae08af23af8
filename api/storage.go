// File: api/storage.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Storage backend contract for the ring buffer core. A backend owns one
// contiguous block of capacity+1 slots, sized once and never resized.

package api

// Storage is the contract for a contiguous block of capacity+1 slots of T.
// The extra slot is the sentinel that keeps the head/tail cursors
// unambiguous: they can only coincide when the buffer is empty.
type Storage[T any] interface {
	// Slots returns the whole block, sentinel included. The returned slice
	// header is stable for the backend's lifetime; len(Slots()) == Cap()+1.
	Slots() []T
	// Cap returns the logical capacity.
	Cap() int
	// Clone returns an independent zero-valued block of the same capacity.
	Clone() Storage[T]
	// Relocatable reports whether the block may be handed off as a unit
	// when the owning buffer is moved. Backends embedded by value in a
	// caller aggregate return false, forcing element-wise transfer.
	Relocatable() bool
}
