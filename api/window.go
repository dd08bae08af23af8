// File: api/window.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Read-side contract satisfied by the ring buffer core.

package api

import "iter"

// Window is the read-side view of a circular buffer: the live elements
// ordered oldest to newest, independent of physical slot layout.
type Window[T any] interface {
	// Len returns the number of live elements.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
	// Empty reports whether the window holds no elements.
	Empty() bool
	// All yields the live elements oldest to newest.
	All() iter.Seq[T]
	// MostRecent yields the min(n, Len()) newest elements, oldest to
	// newest. Out-of-range counts clamp.
	MostRecent(n int) iter.Seq[T]
}
