// Package pool
// Author: momentics <momentics@gmail.com>
//
// Recycling of ring buffers. A Pool hands out empty buffers of one fixed
// capacity and takes them back for reuse, so hot paths that need a
// short-lived rolling window avoid reallocating the storage block.
// Each checked-out buffer remains single-owner; only Get and Put are safe
// for concurrent use.
package pool
