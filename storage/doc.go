// Package storage
// Author: momentics <momentics@gmail.com>
//
// Storage backends for the ring buffer core. Both variants expose the same
// api.Storage contract over a block of capacity+1 slots: Dynamic allocates
// its block on the heap once at construction, Fixed wraps a caller-owned
// block whose size was decided at compile time.
package storage
