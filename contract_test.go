package msgalloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestContractISRMethodsDoNotMask asserts the ISR-callable surface never
// takes the HAL critical section itself — spec §5's rule that these methods
// assume the caller already holds it. A MutexHAL would deadlock on the
// second DisableIRQ if any of these called it internally, so calling them
// back-to-back without ever unlocking proves the point.
func TestContractISRMethodsDoNotMask(t *testing.T) {
	a := newTestAllocator(t)
	a.hal.DisableIRQ()
	defer a.hal.EnableIRQ()

	a.SetData(1)
	a.ValidHeader(true, 1)
	a.SetData(2)
	a.EndMsg()
	a.InvalidMsg()
}

// TestContractMainLoopMethodsReleaseTheirLock asserts every main-loop
// destructive method that masks also unmasks before returning — calling
// each of them twice in a row from the same goroutine would deadlock on a
// MutexHAL otherwise.
func TestContractMainLoopMethodsReleaseTheirLock(t *testing.T) {
	a := newTestAllocator(t)

	a.Loop()
	a.Loop()

	a.PullMsgToInterpret()
	a.PullMsgToInterpret()

	a.LuosTaskAlloc(Container(1), Offset(0))
	a.LuosTaskAlloc(Container(1), Offset(1))

	a.PullMsg(Container(1))
	a.PullMsg(Container(1))

	a.UsedMsgEnd()
	a.UsedMsgEnd()

	a.PullMsgFromTxTask()
	a.PullMsgFromTxTask()

	data := make([]byte, 10)
	a.SetTxTask(data, 10)
	a.SetTxTask(data, 10)
}

// TestContractReadOnlyMethodsNeverMask asserts the non-destructive surface
// can be called while the caller already holds the HAL, without deadlock —
// spec §5: "read-only queries ... do not mask".
func TestContractReadOnlyMethodsNeverMask(t *testing.T) {
	a := newTestAllocator(t)
	a.hal.DisableIRQ()
	defer a.hal.EnableIRQ()

	a.GetCurrentMsg()
	a.IsEmpty()
	a.GetTxTask()
	a.LookAtLuosTask(0)
	a.GetLuosTaskCmd(0)
	a.GetLuosTaskSourceId(0)
	a.GetLuosTaskSize(0)
	a.LuosTasksNbr()
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)

	cfg := NewConfig(testN, testH, testM)
	cfg.HAL = nil
	_, err = New(cfg)
	require.Error(t, err)
}
