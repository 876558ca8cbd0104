package msgalloc

// dispatchEntry is a message routed to a specific local consumer.
type dispatchEntry struct {
	Msg       Offset
	Container Container
}

// LuosTaskAlloc appends a dispatch entry. If the queue is already full, the
// oldest entry is evicted unconditionally and without counting a drop —
// this is consumer-side backpressure, not an arena overwrite (spec §4.4,
// §9 "drop-count semantics"). Main-loop callable, destructive.
func (a *Allocator) LuosTaskAlloc(container Container, msg Offset) bool {
	if container == InvalidContainer {
		a.hal.Halt("msgalloc: LuosTaskAlloc called with the invalid container")
	}
	a.hal.DisableIRQ()
	defer a.hal.EnableIRQ()
	if a.dispatch.Full() {
		a.dispatch.PopFront()
	}
	a.dispatch.PushBack(dispatchEntry{Msg: msg, Container: container})
	a.updateLuosStackRatio()
	return true
}

// PullMsg removes and returns the oldest dispatch entry targeting
// container, setting the in-use handle to its message. Main-loop callable,
// destructive.
func (a *Allocator) PullMsg(container Container) (Offset, bool) {
	a.hal.DisableIRQ()
	defer a.hal.EnableIRQ()
	idx := -1
	a.dispatch.Each(func(i int, v dispatchEntry) bool {
		if v.Container == container {
			idx = i
			return false
		}
		return true
	})
	if idx < 0 {
		return 0, false
	}
	e, _ := a.dispatch.RemoveAt(idx)
	a.inUse = e.Msg
	a.inUseValid = true
	return e.Msg, true
}

// PullMsgFromLuosTask removes and returns the dispatch entry at index,
// setting the in-use handle. Main-loop callable, destructive.
func (a *Allocator) PullMsgFromLuosTask(index int) (Offset, bool) {
	a.hal.DisableIRQ()
	defer a.hal.EnableIRQ()
	e, ok := a.dispatch.RemoveAt(index)
	if !ok {
		return 0, false
	}
	a.inUse = e.Msg
	a.inUseValid = true
	return e.Msg, true
}

// ClearMsgFromLuosTasks removes every dispatch entry referring to msg. It
// is idempotent: calling it again once the entries are gone is a no-op.
// Main-loop callable, destructive.
func (a *Allocator) ClearMsgFromLuosTasks(msg Offset) {
	a.hal.DisableIRQ()
	defer a.hal.EnableIRQ()
	for i := 0; i < a.dispatch.Len(); {
		v, _ := a.dispatch.Get(i)
		if v.Msg == msg {
			a.dispatch.RemoveAt(i)
			continue
		}
		i++
	}
}

// UsedMsgEnd clears the in-use handle. Main-loop callable, destructive.
func (a *Allocator) UsedMsgEnd() {
	a.hal.DisableIRQ()
	defer a.hal.EnableIRQ()
	a.inUseValid = false
}

// LookAtLuosTask returns the target container of the dispatch entry at
// index, without removing it. Main-loop callable, non-destructive.
func (a *Allocator) LookAtLuosTask(index int) (Container, bool) {
	e, ok := a.dispatch.Get(index)
	if !ok {
		return InvalidContainer, false
	}
	return e.Container, true
}

// GetLuosTaskCmd returns the command byte of the dispatch entry at index,
// read back out of the arena via the configured HeaderCodec. Main-loop
// callable, non-destructive.
func (a *Allocator) GetLuosTaskCmd(index int) (uint8, bool) {
	e, ok := a.dispatch.Get(index)
	if !ok {
		return 0, false
	}
	return a.codec.Cmd(a.headerOf(e.Msg)), true
}

// GetLuosTaskSourceId returns the source id of the dispatch entry at index.
// Main-loop callable, non-destructive.
func (a *Allocator) GetLuosTaskSourceId(index int) (uint16, bool) {
	e, ok := a.dispatch.Get(index)
	if !ok {
		return 0, false
	}
	return a.codec.SourceID(a.headerOf(e.Msg)), true
}

// GetLuosTaskSize returns the decoded payload size of the dispatch entry at
// index. Main-loop callable, non-destructive.
func (a *Allocator) GetLuosTaskSize(index int) (int, bool) {
	e, ok := a.dispatch.Get(index)
	if !ok {
		return 0, false
	}
	return a.codec.DecodeLength(a.headerOf(e.Msg))
}

// LuosTasksNbr returns the current dispatch queue depth. Main-loop
// callable, non-destructive.
func (a *Allocator) LuosTasksNbr() int { return a.dispatch.Len() }

func (a *Allocator) headerOf(msg Offset) []byte {
	return a.arena.slice(msg, msg+Offset(a.codec.HeaderSize()))
}
