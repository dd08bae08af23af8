// File: storage/fixed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package storage

import "github.com/momentics/circbuf/api"

// Ensure compile-time interface compliance.
var _ api.Storage[any] = (*Fixed[any])(nil)

// Fixed wraps a caller-owned block, typically an array embedded by value
// in a larger aggregate:
//
//	var slots [9]Sample // capacity 8
//	buf := circular.NewWith[Sample](storage.Wrap(slots[:]))
//
// The capacity is len(block)-1 and cannot change. Because the bytes may
// live inside a caller aggregate, the block is never handed off on move;
// the buffer core falls back to element-wise transfer.
type Fixed[T any] struct {
	block []T
}

// Wrap adopts block as storage. The block must hold at least 2 slots (one
// element plus the sentinel); panics with api.ErrInvalidBlock otherwise.
func Wrap[T any](block []T) *Fixed[T] {
	if len(block) < 2 {
		panic(api.ErrInvalidBlock)
	}
	return &Fixed[T]{block: block}
}

// Slots returns the wrapped block, sentinel included.
func (f *Fixed[T]) Slots() []T { return f.block }

// Cap returns the logical capacity.
func (f *Fixed[T]) Cap() int { return len(f.block) - 1 }

// Clone returns an independent zero-valued heap block of the same
// capacity. A fixed backend cannot mint another caller-owned array.
func (f *Fixed[T]) Clone() api.Storage[T] {
	return &Dynamic[T]{block: make([]T, len(f.block))}
}

// Relocatable is false.
func (f *Fixed[T]) Relocatable() bool { return false }
