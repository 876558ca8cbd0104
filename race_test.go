package msgalloc

import (
	"sync"
	"testing"
)

// TestRaceReceptionAgainstMainLoop drives the ISR-callable surface from one
// goroutine and the main-loop surface from another, synchronized only
// through the HAL critical section — the concurrency model spec §5
// describes. Run with -race.
func TestRaceReceptionAgainstMainLoop(t *testing.T) {
	a := newTestAllocator(t)

	const iterations = 500
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for n := 0; n < iterations; n++ {
			a.hal.DisableIRQ()
			base := byte(n)
			for i := byte(0); i < testH; i++ {
				a.SetData(base + i)
			}
			a.ValidHeader(true, 2)
			for i := byte(0); i < 4; i++ {
				a.SetData(base + i)
			}
			a.EndMsg()
			a.hal.EnableIRQ()
		}
	}()

	go func() {
		defer wg.Done()
		for n := 0; n < iterations; n++ {
			a.Loop()
			a.PullMsgToInterpret()
			a.GetCurrentMsg()
			a.IsEmpty()
		}
	}()

	wg.Wait()
}

// TestRaceDispatchAgainstTx exercises the dispatch and TX surfaces from two
// goroutines concurrently, all through their own masked entry points.
func TestRaceDispatchAgainstTx(t *testing.T) {
	a := newTestAllocator(t)
	const iterations = 300
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for n := 0; n < iterations; n++ {
			a.LuosTaskAlloc(Container(n%7+1), Offset(n%testN))
			a.PullMsg(Container(n%7 + 1))
		}
	}()

	go func() {
		defer wg.Done()
		data := make([]byte, 10)
		for n := 0; n < iterations; n++ {
			a.GetTxTask()
			a.PullMsgFromTxTask()
			a.LuosTaskAlloc(Container(1), Offset(n%testN))
			_ = data
		}
	}()

	wg.Wait()
}
