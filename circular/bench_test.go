// File: circular/bench_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Steady-state rolling-window benchmarks. The eapache/queue baseline has
// to pop explicitly to hold the window size, where the ring overwrites in
// place; the comparison shows what the eviction policy buys.

package circular_test

import (
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/circbuf/circular"
)

const benchWindow = 1024

func BenchmarkPushBackSteadyState(b *testing.B) {
	buf := circular.New[int](benchWindow)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PushBack(i)
	}
}

func BenchmarkPushPop(b *testing.B) {
	buf := circular.New[int](benchWindow)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PushBack(i)
		if i%2 == 0 {
			buf.PopFront()
		}
	}
}

func BenchmarkIterateFull(b *testing.B) {
	buf := circular.New[int](benchWindow)
	for i := 0; i < benchWindow*2; i++ {
		buf.PushBack(i)
	}
	b.ResetTimer()

	sink := 0
	for i := 0; i < b.N; i++ {
		for v := range buf.All() {
			sink += v
		}
	}
	_ = sink
}

func BenchmarkQueueBaselineSteadyState(b *testing.B) {
	q := queue.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Add(i)
		if q.Length() > benchWindow {
			q.Remove()
		}
	}
}
