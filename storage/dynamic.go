// File: storage/dynamic.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package storage

import "github.com/momentics/circbuf/api"

// Ensure compile-time interface compliance.
var _ api.Storage[any] = (*Dynamic[any])(nil)

// Dynamic is a heap-backed storage block with its capacity chosen at
// construction. It allocates exactly once and never reallocates.
type Dynamic[T any] struct {
	block []T
}

// New allocates a block of capacity+1 slots (one sentinel).
// Panics with api.ErrInvalidCapacity if capacity < 1.
func New[T any](capacity int) *Dynamic[T] {
	if capacity < 1 {
		panic(api.ErrInvalidCapacity)
	}
	return &Dynamic[T]{block: make([]T, capacity+1)}
}

// Slots returns the block, sentinel included.
func (d *Dynamic[T]) Slots() []T { return d.block }

// Cap returns the logical capacity.
func (d *Dynamic[T]) Cap() int { return len(d.block) - 1 }

// Clone returns an independent zero-valued block of the same capacity.
func (d *Dynamic[T]) Clone() api.Storage[T] {
	return &Dynamic[T]{block: make([]T, len(d.block))}
}

// Relocatable is true: the backend is the block's sole owner, so a moving
// buffer may adopt the block wholesale.
func (d *Dynamic[T]) Relocatable() bool { return true }
