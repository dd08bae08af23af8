// Package circular
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity overwriting ring buffer. Pushing into a full buffer
// silently evicts the oldest element; popping an empty buffer is a no-op.
// Every operation is O(1), allocation happens once at construction, and
// the container is single-owner: it performs no synchronization.
//
// The core is generic over the api.Storage backend (heap-backed or
// caller-owned fixed block) and keeps its head/tail cursors as offsets
// into the block, so retargeting content to another block on clone, copy
// or move is plain arithmetic. See buffer.go for the container,
// iterator.go for the bidirectional cursors, and window.go for the
// range-over-func views.
package circular
