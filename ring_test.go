package msgalloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFifoPushPopOrder(t *testing.T) {
	f := newFifo[int](3)
	require.True(t, f.Empty())
	f.PushBack(1)
	f.PushBack(2)
	f.PushBack(3)
	require.True(t, f.Full())

	v, ok := f.Front()
	require.True(t, ok)
	require.Equal(t, 1, v)

	v, ok = f.PopFront()
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 2, f.Len())

	f.PushBack(4)
	require.True(t, f.Full())

	for _, want := range []int{2, 3, 4} {
		v, ok := f.PopFront()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	require.True(t, f.Empty())
	_, ok = f.PopFront()
	require.False(t, ok)
}

func TestFifoPushBackPanicsWhenFull(t *testing.T) {
	f := newFifo[int](1)
	f.PushBack(1)
	require.Panics(t, func() { f.PushBack(2) })
}

func TestFifoRemoveAtShiftsAndZeroesTail(t *testing.T) {
	f := newFifo[int](4)
	f.PushBack(10)
	f.PushBack(20)
	f.PushBack(30)

	v, ok := f.RemoveAt(1)
	require.True(t, ok)
	require.Equal(t, 20, v)
	require.Equal(t, 2, f.Len())

	got0, _ := f.Get(0)
	got1, _ := f.Get(1)
	require.Equal(t, 10, got0)
	require.Equal(t, 30, got1)

	_, ok = f.Get(2)
	require.False(t, ok)
}

func TestFifoEachStopsOnFalse(t *testing.T) {
	f := newFifo[int](5)
	for i := 0; i < 5; i++ {
		f.PushBack(i)
	}
	var seen []int
	f.Each(func(i int, v int) bool {
		seen = append(seen, v)
		return v != 2
	})
	require.Equal(t, []int{0, 1, 2}, seen)
}

func TestFifoRemoveAtOutOfRange(t *testing.T) {
	f := newFifo[int](2)
	f.PushBack(1)
	_, ok := f.RemoveAt(5)
	require.False(t, ok)
	_, ok = f.RemoveAt(-1)
	require.False(t, ok)
}
