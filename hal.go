package msgalloc

import "sync"

// HAL is the platform contract this module consumes from the outside: an
// interrupt-masking primitive, and a fatal-halt primitive for precondition
// violations.
//
// DisableIRQ/EnableIRQ must nest correctly within a single context: a
// caller that is already inside a disabled window must never call a method
// that itself tries to re-disable (the real HAL this models does not
// support nested interrupt masking; neither does MutexHAL).
type HAL interface {
	// DisableIRQ begins a critical section, serializing against the
	// reception context.
	DisableIRQ()
	// EnableIRQ ends a critical section started by DisableIRQ.
	EnableIRQ()
	// Halt reports a violated precondition (index out of range, FIFO
	// underflow, pointer outside arena) and must not return.
	Halt(reason string)
}

// MutexHAL is the default HAL, suitable for a host build where "disabling
// interrupts" really means serializing the reception goroutine against the
// main-loop goroutine with an ordinary mutex. Halt panics with reason,
// which is the correct host-side analogue of a firmware abort: it unwinds
// to whatever recover the embedding process installs, rather than silently
// continuing on corrupted state.
type MutexHAL struct {
	mu sync.Mutex
}

// NewMutexHAL constructs a ready-to-use MutexHAL.
func NewMutexHAL() *MutexHAL {
	return &MutexHAL{}
}

func (h *MutexHAL) DisableIRQ() { h.mu.Lock() }

func (h *MutexHAL) EnableIRQ() { h.mu.Unlock() }

func (h *MutexHAL) Halt(reason string) {
	panic("msgalloc: fatal: " + reason)
}
