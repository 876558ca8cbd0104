package msgalloc

// txEntry is an outbound frame queued for transmission.
type txEntry struct {
	Data Offset
	Size int
}

const (
	txCaseA = iota // TX frame alone doesn't fit before end of arena.
	txCaseB        // TX frame fits, but the RX continuation behind it wouldn't.
	txCaseC        // Both fit in place.
)

// SetTxTask injects an outbound frame into the arena at the current write
// cursor, then repositions the in-progress reception so it continues
// uninterrupted behind the newly inserted frame. Main-loop callable,
// destructive. Unlike the RX-ready and dispatch queues, the TX queue
// evicts after the push, as soon as the push has filled it — pushing is
// always safe here because the queue is never left at capacity between
// calls.
func (a *Allocator) SetTxTask(data []byte, size int) (Offset, bool) {
	if size < 3 || size > len(data) {
		a.hal.Halt("msgalloc: SetTxTask size out of range for data")
	}

	a.hal.DisableIRQ()

	progression := int(a.dataPtr) - int(a.currentMsg)
	estimated := int(a.dataEndEstimation) - int(a.currentMsg)
	rxBackup := a.currentMsg

	var txMsg Offset
	var txCase int

	switch {
	case !a.hasSpace(Offset(int(a.currentMsg) + size)):
		txCase = txCaseA
		txMsg = 0
		a.currentMsg = Offset(size)
		a.dataPtr = Offset(int(a.currentMsg) + progression)
		a.dataEndEstimation = Offset(int(a.currentMsg) + estimated)
		a.clearSpace(txMsg, a.dataEndEstimation)

	case !a.hasSpace(Offset(int(a.currentMsg) + size + estimated)):
		txCase = txCaseB
		txMsg = a.currentMsg
		a.clearSpace(txMsg, Offset(int(txMsg)+size))
		a.currentMsg = 0
		a.dataEndEstimation = Offset(int(a.currentMsg) + estimated)
		a.clearSpace(a.currentMsg, a.dataEndEstimation)
		a.dataPtr = Offset(int(a.currentMsg) + progression)

	default:
		txCase = txCaseC
		txMsg = a.currentMsg
		a.currentMsg = Offset(int(a.currentMsg) + size)
		a.dataEndEstimation = Offset(int(a.currentMsg) + estimated)
		a.clearSpace(txMsg, a.dataEndEstimation)
		a.dataPtr = Offset(int(a.currentMsg) + progression)
	}

	// Deliberate latency-reduction window: Case C only, and only when
	// Config.AllowCaseCWindow opts into it. The copy-back below writes
	// only into the region clearSpace just swept, so it is safe to let
	// the ISR run in between.
	reenabled := txCase == txCaseC && a.cfg.AllowCaseCWindow
	if reenabled {
		a.hal.EnableIRQ()
	}

	a.arena.copyWithin(a.currentMsg, rxBackup, progression)
	copy(a.arena.slice(txMsg, txMsg+3), data[:3])

	if reenabled {
		a.hal.DisableIRQ()
	}

	a.tx.PushBack(txEntry{Data: txMsg, Size: size})
	var dropped bool
	var evicted Offset
	if a.tx.Full() {
		e, _ := a.tx.PopFront()
		evicted = e.Data
		dropped = true
	}
	a.hal.EnableIRQ()
	if dropped {
		a.stats.RecordDrop()
		a.log.Log(LogEntry{Level: LevelDebug, Category: "drop", Message: "tx queue full", Offset: evicted})
	}

	copy(a.arena.slice(txMsg+3, txMsg+Offset(size)), data[3:size])

	a.log.Log(LogEntry{Level: LevelDebug, Category: "tx", Message: "tx task queued", Offset: txMsg})
	return txMsg, true
}

// GetTxTask peeks the head of the TX queue without consuming it. Main-loop
// callable, non-destructive.
func (a *Allocator) GetTxTask() (Offset, int, bool) {
	e, ok := a.tx.Front()
	if !ok {
		return 0, 0, false
	}
	return e.Data, e.Size, true
}

// PullMsgFromTxTask removes the head of the TX queue. Main-loop callable,
// destructive.
func (a *Allocator) PullMsgFromTxTask() bool {
	a.hal.DisableIRQ()
	defer a.hal.EnableIRQ()
	_, ok := a.tx.PopFront()
	return ok
}
