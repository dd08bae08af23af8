// File: circular/window.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range-over-func views of the logical window. The sequences read the
// buffer lazily: they must only be ranged while the buffer is alive and
// unmodified, and each fresh range observes the current content.

package circular

import "iter"

// All yields the live elements oldest to newest.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it, end := b.Begin(), b.End()
		for !it.Equal(end) {
			if !yield(it.Value()) {
				return
			}
			it.Next()
		}
	}
}

// Backward yields the live elements newest to oldest.
func (b *Buffer[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		it, begin := b.End(), b.Begin()
		for !it.Equal(begin) {
			it.Prev()
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// MostRecent yields the min(n, Len()) newest elements, oldest to newest.
// MostRecent(0) is empty; n beyond Len() clamps to the whole content.
func (b *Buffer[T]) MostRecent(n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		it, end := b.FindNthRecent(n), b.End()
		for !it.Equal(end) {
			if !yield(it.Value()) {
				return
			}
			it.Next()
		}
	}
}
