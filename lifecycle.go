package msgalloc

// ValidHeader is called from the reception context once the header's
// length field has been decoded. ISR-callable: the caller must already
// hold the critical section.
//
// If the projected record would run past the arena end, it arms the
// relocation token (Loop performs the deferred copy) and restarts the
// record at the arena origin.
func (a *Allocator) ValidHeader(valid bool, dataSize int) bool {
	if !valid {
		a.dataPtr = a.currentMsg
		return false
	}

	H := Offset(a.codec.HeaderSize())
	end := a.currentMsg + H + Offset(dataSize) + 2

	if !a.hasSpace(end) {
		a.relocation = relocationToken{armed: true, src: a.currentMsg}
		a.currentMsg = 0
		a.dataPtr = H
		end = a.currentMsg + H + Offset(dataSize) + 2
	}

	a.dataEndEstimation = end

	if a.inUseValid && offsetInRange(a.inUse, a.currentMsg, a.dataEndEstimation) {
		a.inUseValid = false
		a.stats.RecordDrop()
		a.log.Log(LogEntry{Level: LevelDebug, Category: "drop", Message: "in-use handle overlaps new header", Offset: a.inUse})
	}

	return true
}

// InvalidMsg discards the record currently being received. ISR-callable.
func (a *Allocator) InvalidMsg() bool {
	a.clearSpace(a.currentMsg, a.dataPtr)
	a.dataPtr = a.currentMsg
	a.dataEndEstimation = a.currentMsg + Offset(a.codec.HeaderSize()) + 2
	if a.currentMsg == 0 {
		a.relocation = relocationToken{}
	}
	return true
}

// EndMsg finalises the record currently being received: it sweeps the
// finished record's space, enqueues it to the RX-ready queue (evicting the
// oldest with a counted drop if full), prepares the cursors for the next
// record, and zeroes the trailing checksum placeholder once the alignment
// check has read it. ISR-callable.
func (a *Allocator) EndMsg() bool {
	a.clearSpace(a.currentMsg, a.dataPtr)

	if a.rxReady.Full() {
		a.rxReady.PopFront()
		a.stats.RecordDrop()
		a.log.Log(LogEntry{Level: LevelDebug, Category: "drop", Message: "rx-ready queue full"})
	}
	a.rxReady.PushBack(a.currentMsg)

	// data_ptr sits 2 bytes past the record's payload because of the
	// trailing checksum region; back it up to the start of the next
	// record.
	hasChecksum := a.dataPtr >= 2
	a.dataPtr -= 2
	checksum := a.dataPtr

	H := Offset(a.codec.HeaderSize())
	if !a.hasSpace(a.dataPtr + H + 2) {
		a.dataPtr = 0
	} else if a.arena.at(a.dataPtr)%2 != 1 {
		// The decoder aligns on odd addresses; the parity check reads
		// the byte value at data_ptr, not the address itself.
		a.dataPtr++
	}

	if hasChecksum {
		a.arena.zero(checksum, 2)
	}

	a.currentMsg = a.dataPtr
	a.dataEndEstimation = a.currentMsg + H + 2
	a.clearSpace(a.currentMsg, a.dataEndEstimation)

	return true
}

// SetMessage injects a locally produced record as if it had been received
// over the bus. Main-loop callable, destructive: masks interrupts around
// the cursor repositioning and the call to EndMsg, exactly as a concurrent
// reception would, then copies the record in afterward.
//
// record must be at least HeaderSize() bytes; its length field (decoded via
// the configured HeaderCodec) is clamped to Config.MaxPayloadSize.
func (a *Allocator) SetMessage(record []byte) bool {
	H := a.codec.HeaderSize()
	if len(record) < H {
		a.hal.Halt("msgalloc: SetMessage record shorter than the header size")
	}

	size, ok := a.codec.DecodeLength(record)
	if !ok {
		return false
	}
	if size > a.cfg.MaxPayloadSize {
		size = a.cfg.MaxPayloadSize
	}
	dataSize := size + H

	a.hal.DisableIRQ()

	if !a.hasSpace(Offset(int(a.currentMsg) + dataSize)) {
		a.currentMsg = 0
	}
	a.clearSpace(a.currentMsg, Offset(int(a.currentMsg)+dataSize))

	dst := a.currentMsg
	// Fake the data_ptr progression so a concurrent reception starting a
	// new record lands after the record being injected here.
	a.dataPtr = Offset(int(a.currentMsg) + dataSize + 2)
	a.EndMsg()

	a.hal.EnableIRQ()

	n := dataSize
	if n > len(record) {
		n = len(record)
	}
	copy(a.arena.slice(dst, dst+Offset(n)), record[:n])

	return true
}
