package msgalloc

import "sync/atomic"

// StatsSink is the monotonic memory-statistics collaborator consumed from
// outside. Implementations may fan values out to Prometheus, a ring log, or
// nowhere (NoopStats).
type StatsSink interface {
	// RecordMsgStackRatio reports a new RX-ready fill percentage [0,100].
	// Implementations should track the watermark (highest value seen).
	RecordMsgStackRatio(percent uint8)
	// RecordLuosStackRatio reports a new dispatch-queue fill percentage.
	RecordLuosStackRatio(percent uint8)
	// RecordDrop is called exactly once per task eviction and once per
	// overwritten in-use handle.
	RecordDrop()
}

// DefaultStats is the built-in StatsSink: saturating watermarks in [0,100]
// and a saturating 8-bit drop counter, backed by atomics so the read-only
// query methods never need the HAL critical section.
type DefaultStats struct {
	msgStackRatio  atomic.Uint32
	luosStackRatio atomic.Uint32
	dropNumber     atomic.Uint32
}

var _ StatsSink = (*DefaultStats)(nil)

func (s *DefaultStats) RecordMsgStackRatio(percent uint8) {
	watermarkBump(&s.msgStackRatio, uint32(percent))
}

func (s *DefaultStats) RecordLuosStackRatio(percent uint8) {
	watermarkBump(&s.luosStackRatio, uint32(percent))
}

func (s *DefaultStats) RecordDrop() {
	for {
		cur := s.dropNumber.Load()
		if cur >= 0xFF {
			return
		}
		if s.dropNumber.CompareAndSwap(cur, cur+1) {
			return
		}
	}
}

// MsgStackRatio returns the current RX-ready watermark, percent in [0,100].
func (s *DefaultStats) MsgStackRatio() uint8 { return uint8(s.msgStackRatio.Load()) }

// LuosStackRatio returns the current dispatch-queue watermark, percent in [0,100].
func (s *DefaultStats) LuosStackRatio() uint8 { return uint8(s.luosStackRatio.Load()) }

// DropNumber returns the saturating drop counter, in [0,0xFF].
func (s *DefaultStats) DropNumber() uint8 { return uint8(s.dropNumber.Load()) }

func watermarkBump(v *atomic.Uint32, next uint32) {
	if next > 100 {
		next = 100
	}
	for {
		cur := v.Load()
		if next <= cur {
			return
		}
		if v.CompareAndSwap(cur, next) {
			return
		}
	}
}

// NoopStats discards every observation. Useful when a caller does not care
// about watermarks or drop accounting.
type NoopStats struct{}

var _ StatsSink = NoopStats{}

func (NoopStats) RecordMsgStackRatio(uint8)  {}
func (NoopStats) RecordLuosStackRatio(uint8) {}
func (NoopStats) RecordDrop()                {}
