package msgalloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The eviction sweep in clearSpace only ever inspects the head of rxReady
// and dispatch before deciding to stop — that is only sound if each queue's
// write cursor never regresses, i.e. entries are appended in a strictly
// non-decreasing sequence over the queue's lifetime. This test samples the
// write cursor across a mixed push/pop/evict workload and checks it with
// the shared nonDecreasing helper (invariants.go).
func TestFifoWriteCursorNeverRegresses(t *testing.T) {
	f := newFifo[int](4)
	var cursors []uint32

	push := func(v int) {
		if f.Full() {
			_, _ = f.PopFront()
		}
		f.PushBack(v)
		cursors = append(cursors, f.w)
	}

	for i := 0; i < 20; i++ {
		push(i)
		if i%3 == 0 {
			_, _ = f.PopFront()
		}
	}

	require.True(t, nonDecreasing(cursors))
}
