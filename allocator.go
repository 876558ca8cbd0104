package msgalloc

// Allocator is the message-allocation core: one fixed arena, three bounded
// task queues indexing into it, and the cursor state tracking the frame
// currently being received. It is safe for exactly two concurrent callers —
// one driving the ISR-callable surface, one driving the main-loop surface —
// coordinated solely through Config.HAL. It is never safe for more than one
// goroutine to drive either surface concurrently with itself.
type Allocator struct {
	cfg   Config
	arena *arena
	codec HeaderCodec
	hal   HAL
	stats StatsSink
	log   Logger

	currentMsg        Offset
	dataPtr           Offset
	dataEndEstimation Offset

	relocation relocationToken

	rxReady  *fifo[Offset]
	dispatch *fifo[dispatchEntry]
	tx       *fifo[txEntry]

	inUse      Offset
	inUseValid bool
}

// relocationToken is armed when a partially received header had to be
// moved to the arena origin mid-reception; Loop performs the deferred copy.
type relocationToken struct {
	armed bool
	src   Offset
}

// New validates cfg, applies opts, and returns a ready-to-use Allocator.
// Construction-time misconfiguration is the only case this package reports
// via a Go error — every runtime precondition violation after this point
// goes through Config.HAL.Halt instead (see HAL).
func New(cfg Config, opts ...Option) (*Allocator, error) {
	cfg, err := resolveOptions(cfg, opts)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	a := &Allocator{
		cfg:      cfg,
		arena:    newArena(cfg.ArenaSize),
		codec:    cfg.HeaderCodec,
		hal:      cfg.HAL,
		stats:    cfg.Stats,
		log:      cfg.Logger,
		rxReady:  newFifo[Offset](cfg.RxQueueCapacity),
		dispatch: newFifo[dispatchEntry](cfg.RxQueueCapacity),
		tx:       newFifo[txEntry](cfg.TxQueueCapacity),
	}
	a.reset()
	return a, nil
}

func (a *Allocator) reset() {
	a.currentMsg = 0
	a.dataPtr = 0
	a.dataEndEstimation = Offset(a.codec.HeaderSize() + 2)
	a.relocation = relocationToken{}
	a.inUseValid = false
}

// SetData appends one received byte at the write cursor and advances it.
// ISR-callable: the caller must already hold Config.HAL's critical section.
// It never touches a queue and never masks interrupts itself — this is the
// per-byte hot path and must stay O(1) with no branches beyond the bounds
// the caller is contractually responsible for.
func (a *Allocator) SetData(b byte) {
	a.arena.set(a.dataPtr, b)
	a.dataPtr++
}

// GetCurrentMsg returns the offset of the record currently being received.
// Main-loop callable, non-destructive: reads a single scalar, no masking.
func (a *Allocator) GetCurrentMsg() Offset { return a.currentMsg }

// IsEmpty reports whether the write cursor is at the arena origin. That
// holds from construction until the first SetData, and again whenever the
// cursor is rewound or wrapped back to the origin; it does not record
// whether anything was received before that.
func (a *Allocator) IsEmpty() bool { return a.dataPtr == 0 }

// Loop is the main-loop tick: it refreshes the RX-ready watermark and, if a
// wrap-around relocation is armed, performs the deferred header copy to the
// arena origin. Main-loop callable, destructive: both the RX-ready length
// read and the relocation token are shared with the ISR-callable surface
// (ValidHeader arms it, EndMsg/PullMsgToInterpret mutate rxReady), so this
// masks interrupts around both.
func (a *Allocator) Loop() {
	a.hal.DisableIRQ()
	a.updateMsgStackRatio()
	armed := a.relocation.armed
	src := a.relocation.src
	if armed {
		a.relocation = relocationToken{}
	}
	a.hal.EnableIRQ()

	if armed {
		a.arena.copyWithin(0, src, a.codec.HeaderSize())
		a.log.Log(LogEntry{Level: LevelDebug, Category: "relocate", Message: "header relocated to arena origin"})
	}
}

func (a *Allocator) updateMsgStackRatio() {
	a.stats.RecordMsgStackRatio(percentOf(a.rxReady.Len(), a.rxReady.Cap()))
}

func (a *Allocator) updateLuosStackRatio() {
	a.stats.RecordLuosStackRatio(percentOf(a.dispatch.Len(), a.dispatch.Cap()))
}

func percentOf(n, cap int) uint8 {
	if cap <= 0 {
		return 0
	}
	return uint8(n * 100 / cap)
}
