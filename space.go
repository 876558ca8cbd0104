package msgalloc

// hasSpace reports whether offset to lies inside the arena, i.e. whether a
// region ending at to can be written without running past the arena end.
func (a *Allocator) hasSpace(to Offset) bool {
	return to <= Offset(a.arena.len()-1)
}

// clearSpace is the eviction sweep (spec §4.2): it makes the closed byte
// range [from, to] safe to overwrite by evicting the in-use handle and the
// head of the dispatch and RX-ready queues, as long as they overlap the
// range, counting a drop for each eviction. It relies on monotonic enqueue
// order — entries are pushed in arena order modulo wrap, so if the head
// doesn't overlap, nothing behind it does either.
func (a *Allocator) clearSpace(from, to Offset) bool {
	if !a.hasSpace(to) {
		return false
	}

	if a.inUseValid && offsetInRange(a.inUse, from, to) {
		a.inUseValid = false
		a.stats.RecordDrop()
		a.log.Log(LogEntry{Level: LevelDebug, Category: "drop", Message: "in-use handle overwritten", Offset: a.inUse})
	}

	for {
		e, ok := a.dispatch.Front()
		if !ok || !offsetInRange(e.Msg, from, to) {
			break
		}
		a.dispatch.PopFront()
		a.stats.RecordDrop()
		a.log.Log(LogEntry{Level: LevelDebug, Category: "evict", Message: "dispatch entry overwritten", Offset: e.Msg})
	}

	for {
		p, ok := a.rxReady.Front()
		if !ok || !offsetInRange(p, from, to) {
			break
		}
		a.rxReady.PopFront()
		a.stats.RecordDrop()
		a.log.Log(LogEntry{Level: LevelDebug, Category: "evict", Message: "rx-ready entry overwritten", Offset: p})
	}

	return true
}

func offsetInRange(p, from, to Offset) bool {
	return p >= from && p <= to
}
