package msgalloc

// Offset is a byte index into an Arena, in [0, N). It replaces the raw
// pointers an embedded firmware allocator would use directly: a byte offset
// plus a borrowed view of the arena eliminates the "pointer escaped the
// arena" class of bug a raw pointer invites.
type Offset uint32

// arena is the single fixed-capacity byte region backing every live
// message, inbound or outbound. Allocated once at construction, never
// resized — no dynamic growth, no per-slot heap allocation.
type arena struct {
	buf []byte
}

func newArena(n int) *arena {
	return &arena{buf: make([]byte, n)}
}

// len returns N, the arena capacity in bytes.
func (a *arena) len() int { return len(a.buf) }

// slice returns the byte window [from, to). Valid only for the duration of
// the caller's critical section — the arena is written from both the ISR
// and main-loop contexts.
func (a *arena) slice(from, to Offset) []byte { return a.buf[from:to] }

func (a *arena) at(o Offset) byte { return a.buf[o] }

func (a *arena) set(o Offset, b byte) { a.buf[o] = b }

// copyWithin copies n bytes from src to dst inside the arena, used by the
// wrap-around relocator and the TX insertion protocol. The source and
// destination may overlap (the TX insertion moves a partial reception
// forward by the frame size); the built-in copy handles that.
func (a *arena) copyWithin(dst, src Offset, n int) {
	copy(a.buf[dst:int(dst)+n], a.buf[src:int(src)+n])
}

func (a *arena) zero(from Offset, n int) {
	clear(a.buf[from : int(from)+n])
}
