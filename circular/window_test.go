// File: circular/window_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package circular_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/momentics/circbuf/circular"
)

func seqLen[T any](s iter.Seq[T]) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// TestMostRecentClampLaw checks that any requested count, including
// negative and far-out-of-range ones, clamps to 0..Len() — before and
// after every push across a wrapping window.
func TestMostRecentClampLaw(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}
	buf := circular.New[int](len(values) / 2)

	clamp := func(n int) int {
		return max(0, min(n, buf.Len()))
	}

	for i, v := range values {
		require.Equal(t, clamp(i), seqLen(buf.MostRecent(2*buf.Len()+1)))
		require.Equal(t, clamp(i), seqLen(buf.MostRecent(i)))
		require.Equal(t, clamp(i), seqLen(buf.MostRecent(i+1)))
		require.Equal(t, clamp(i-1), seqLen(buf.MostRecent(i-1)))

		buf.PushBack(v)

		size := buf.Len()
		require.Equal(t, size, seqLen(buf.MostRecent(size)))
		require.Equal(t, size, seqLen(buf.MostRecent(size*2)))
		require.Equal(t, size/2, seqLen(buf.MostRecent(size/2)))
	}
}

func TestMostRecentContent(t *testing.T) {
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}
	const keep = 3
	buf := circular.New[int](len(values) / 2)

	for i, v := range values {
		buf.PushBack(v)
		if buf.Len() < keep {
			continue
		}
		want := values[i+1-keep : i+1]
		require.Equal(t, want, slices.Collect(buf.MostRecent(keep)))
	}
}

func TestMostRecentWholeAndZero(t *testing.T) {
	buf := circular.New[int](4)
	for i := 0; i < 6; i++ {
		buf.PushBack(i)
	}

	require.Equal(t, slices.Collect(buf.All()), slices.Collect(buf.MostRecent(buf.Len())))
	require.Empty(t, slices.Collect(buf.MostRecent(0)))
	require.Empty(t, slices.Collect(buf.MostRecent(-5)))
}

func TestFindNthRecentScenario(t *testing.T) {
	buf := circular.New[int](3)
	for _, v := range []int{0, 1, 2, 3} { // overflow by one
		buf.PushBack(v)
	}

	var got []int
	for it, end := buf.FindNthRecent(2), buf.End(); !it.Equal(end); it.Next() {
		got = append(got, it.Value())
	}
	require.Equal(t, []int{2, 3}, got)
}

func TestFindNthRecentWrapsBackward(t *testing.T) {
	buf := circular.New[int](4)
	for i := 1; i <= 6; i++ { // tail sits near the block start
		buf.PushBack(i)
	}

	it := buf.FindNthRecent(4)
	require.True(t, it.Equal(buf.Begin()))
	require.Equal(t, *buf.Front(), it.Value())
}
