package msgalloc

// PullMsgToInterpret pops the oldest completed-but-not-yet-interpreted
// record. Main-loop callable, destructive: masks interrupts, since EndMsg
// (ISR-callable) pushes onto this same queue.
func (a *Allocator) PullMsgToInterpret() (Offset, bool) {
	a.hal.DisableIRQ()
	defer a.hal.EnableIRQ()
	return a.rxReady.PopFront()
}
