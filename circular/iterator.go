// File: circular/iterator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bidirectional cursors over one storage block. A cursor captures the
// block bounds when minted and wraps at both edges, so walking from
// Begin to End traverses the logical window regardless of where it sits
// physically. Iterators are invalidated by Reset, CopyFrom and MoveTo of
// the owning buffer; equality is position-only and meaningless across
// buffers.

package circular

import "github.com/momentics/circbuf/internal/assert"

// cursor is the representation shared by both iterator flavors.
type cursor[T any] struct {
	block []T
	pos   int
}

func (c *cursor[T]) next() {
	assert.That(c.block != nil, "step of a zero-value iterator")
	if c.pos++; c.pos == len(c.block) {
		c.pos = 0
	}
}

func (c *cursor[T]) prev() {
	assert.That(c.block != nil, "step of a zero-value iterator")
	if c.pos--; c.pos < 0 {
		c.pos = len(c.block) - 1
	}
}

func (c *cursor[T]) ref() *T {
	assert.That(c.block != nil, "dereference of a zero-value iterator")
	return &c.block[c.pos]
}

// Iterator is a mutable bidirectional cursor. The zero value is invalid;
// mint one with Begin, End or FindNthRecent.
type Iterator[T any] struct {
	cursor[T]
}

// Next advances one slot, wrapping at the block end.
func (it *Iterator[T]) Next() { it.next() }

// Prev retreats one slot, wrapping to the last block slot.
func (it *Iterator[T]) Prev() { it.prev() }

// Value returns the element at the cursor.
func (it Iterator[T]) Value() T { return *it.cursor.ref() }

// Ref returns a pointer to the element at the cursor.
func (it Iterator[T]) Ref() *T { return it.cursor.ref() }

// Set overwrites the element at the cursor.
func (it Iterator[T]) Set(v T) { *it.cursor.ref() = v }

// Equal reports whether both cursors sit at the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.pos == other.pos }

// Const narrows to the read-only flavor. There is no widening conversion.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T]{it.cursor} }

// ConstIterator is the read-only cursor flavor.
type ConstIterator[T any] struct {
	cursor[T]
}

// Next advances one slot, wrapping at the block end.
func (it *ConstIterator[T]) Next() { it.next() }

// Prev retreats one slot, wrapping to the last block slot.
func (it *ConstIterator[T]) Prev() { it.prev() }

// Value returns the element at the cursor.
func (it ConstIterator[T]) Value() T { return *it.cursor.ref() }

// Equal reports whether both cursors sit at the same position.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool { return it.pos == other.pos }

// Begin returns a mutable iterator at the oldest element.
func (b *Buffer[T]) Begin() Iterator[T] {
	return Iterator[T]{cursor[T]{block: b.slots(), pos: b.head}}
}

// End returns a mutable iterator one past the newest element. It is the
// physical block end only when tail happens to sit there.
func (b *Buffer[T]) End() Iterator[T] {
	return Iterator[T]{cursor[T]{block: b.slots(), pos: b.tail}}
}

// ConstBegin returns a read-only iterator at the oldest element.
func (b *Buffer[T]) ConstBegin() ConstIterator[T] { return b.Begin().Const() }

// ConstEnd returns a read-only iterator one past the newest element.
func (b *Buffer[T]) ConstEnd() ConstIterator[T] { return b.End().Const() }

// FindNthRecent returns an iterator positioned min(n, Len()) elements
// before End, so [FindNthRecent(n), End()) is the window of the n newest
// elements in oldest-to-newest order. Out-of-range n clamps to 0..Len();
// it is never an error.
func (b *Buffer[T]) FindNthRecent(n int) Iterator[T] {
	if n < 0 {
		n = 0
	}
	if l := b.Len(); n > l {
		n = l
	}
	pos := b.tail - n
	if pos < 0 {
		pos += len(b.slots())
	}
	return Iterator[T]{cursor[T]{block: b.slots(), pos: pos}}
}
