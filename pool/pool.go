// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync"

	"github.com/momentics/circbuf/api"
	"github.com/momentics/circbuf/circular"
)

// Pool recycles buffers of one fixed capacity via sync.Pool.
type Pool[T any] struct {
	inner *sync.Pool
}

// NewPool creates a pool of buffers holding up to capacity elements.
// Panics with api.ErrInvalidCapacity if capacity < 1.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 1 {
		panic(api.ErrInvalidCapacity)
	}
	return &Pool[T]{
		inner: &sync.Pool{New: func() any { return circular.New[T](capacity) }},
	}
}

// Get returns an empty buffer owned by the caller until Put.
func (p *Pool[T]) Get() *circular.Buffer[T] {
	return p.inner.Get().(*circular.Buffer[T])
}

// Put resets buf and returns it to the pool. Nil is ignored.
// The caller must not use buf afterwards; its iterators are invalid.
func (p *Pool[T]) Put(buf *circular.Buffer[T]) {
	if buf == nil {
		return
	}
	buf.Reset()
	p.inner.Put(buf)
}
