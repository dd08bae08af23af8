// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for the circbuf library: the storage backend consumed
// by the ring buffer core, the read-side window contract, and the shared
// error values used for precondition panics.
package api
