// File: circular/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring buffer core: a storage block of capacity+1 slots plus two cursor
// offsets. head names the oldest live element, tail the slot one past the
// newest; the spare sentinel slot guarantees head == tail only when the
// buffer is empty, so no separate counter is needed.

package circular

import (
	"github.com/momentics/circbuf/api"
	"github.com/momentics/circbuf/storage"
)

// Ensure compile-time interface compliance.
var _ api.Window[any] = (*Buffer[any])(nil)

// Buffer is a fixed-capacity ring buffer over an api.Storage block.
// The zero value is not usable; construct with New or NewWith.
type Buffer[T any] struct {
	store api.Storage[T]
	head  int // offset of the oldest element
	tail  int // offset one past the newest element; next slot to write
}

// New returns a buffer over a heap-backed block holding up to capacity
// elements. Panics with api.ErrInvalidCapacity if capacity < 1.
func New[T any](capacity int) *Buffer[T] {
	return NewWith[T](storage.New[T](capacity))
}

// NewWith returns an empty buffer over s. The buffer becomes the block's
// sole user; the caller must not touch the slots afterwards.
func NewWith[T any](s api.Storage[T]) *Buffer[T] {
	if s == nil {
		panic(api.ErrNilStorage)
	}
	return &Buffer[T]{store: s}
}

func (b *Buffer[T]) slots() []T { return b.store.Slots() }

// step advances pos one slot, wrapping at the block end.
func (b *Buffer[T]) step(pos int) int {
	if pos++; pos == len(b.slots()) {
		return 0
	}
	return pos
}

// Len returns the number of live elements.
func (b *Buffer[T]) Len() int {
	if b.tail >= b.head {
		return b.tail - b.head
	}
	return (len(b.slots()) - b.head) + b.tail
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int { return b.store.Cap() }

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool { return b.head == b.tail }

// PushBack writes v into the slot at tail and returns a pointer to the
// inserted element. On a full buffer the oldest element is evicted; a push
// never fails, blocks or allocates.
func (b *Buffer[T]) PushBack(v T) *T {
	slots := b.slots()
	slots[b.tail] = v
	inserted := &slots[b.tail]

	b.tail = b.step(b.tail)
	if b.tail == b.head {
		// Sentinel consumed: drop the oldest to keep head==tail meaning empty.
		b.head = b.step(b.head)
	}
	return inserted
}

// PopFront discards the oldest element. No-op on an empty buffer.
func (b *Buffer[T]) PopFront() {
	if b.Empty() {
		return
	}
	b.head = b.step(b.head)
}

// Front returns a pointer to the oldest element.
// Panics with api.ErrEmptyBuffer on an empty buffer; check Empty first.
func (b *Buffer[T]) Front() *T {
	if b.Empty() {
		panic(api.ErrEmptyBuffer)
	}
	return &b.slots()[b.head]
}

// Back returns a pointer to the newest element.
// Panics with api.ErrEmptyBuffer on an empty buffer; check Empty first.
func (b *Buffer[T]) Back() *T {
	if b.Empty() {
		panic(api.ErrEmptyBuffer)
	}
	pos := b.tail - 1
	if pos < 0 {
		pos = len(b.slots()) - 1
	}
	return &b.slots()[pos]
}

// Reset drops all content without touching the allocation.
// All prior iterators are invalid afterwards.
func (b *Buffer[T]) Reset() {
	b.head, b.tail = 0, 0
}

// Clone returns a buffer with independent storage holding the same
// logical content. Cursors carry over unchanged: they are block offsets,
// and both blocks have identical length. Cloning a Fixed-backed buffer
// yields a heap-backed clone.
func (b *Buffer[T]) Clone() *Buffer[T] {
	dst := b.store.Clone()
	copy(dst.Slots(), b.slots())
	return &Buffer[T]{store: dst, head: b.head, tail: b.tail}
}

// CopyFrom replaces b's content with src's logical content, keeping b's
// own storage. When capacities differ the elements are replayed through
// PushBack, so a smaller destination keeps only the newest. Self-copy is a
// no-op. All prior iterators over b are invalid afterwards.
func (b *Buffer[T]) CopyFrom(src *Buffer[T]) {
	if b == src {
		return
	}
	if len(b.slots()) == len(src.slots()) {
		copy(b.slots(), src.slots())
		b.head, b.tail = src.head, src.tail
		return
	}
	b.Reset()
	for v := range src.All() {
		b.PushBack(v)
	}
}

// MoveTo transfers b's content into dst and leaves b empty. When both
// backends are relocatable and capacities match, the blocks are swapped in
// O(1); otherwise elements transfer one by one through dst's own block
// (a smaller destination keeps only the newest). Self-move is a no-op.
// All prior iterators over either buffer are invalid afterwards.
func (b *Buffer[T]) MoveTo(dst *Buffer[T]) {
	if b == dst {
		return
	}
	if b.store.Relocatable() && dst.store.Relocatable() && b.Cap() == dst.Cap() {
		b.store, dst.store = dst.store, b.store
		dst.head, dst.tail = b.head, b.tail
		b.Reset()
		return
	}
	dst.Reset()
	for v := range b.All() {
		dst.PushBack(v)
	}
	b.Reset()
}
