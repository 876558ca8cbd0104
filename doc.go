// Package msgalloc implements the message-allocation core of an embedded
// bus stack: a single fixed-capacity byte arena, written byte-by-byte from
// an interrupt (or other single-producer reception) context, and indexed by
// three bounded task lists — messages ready to interpret, messages
// dispatched to containers, and frames queued for transmission.
//
// The package never copies a message out of the arena. Reception never
// blocks on the consumer path; any arena region about to be overwritten is
// proactively evicted from every task list first, with a counted drop.
//
// Concurrency model: exactly two contexts ever call into an *Allocator — a
// single reception context (conventionally driven from an interrupt
// handler or a dedicated line-driver goroutine) and a single cooperative
// main-loop context. Methods are grouped in their doc comments the same way
// as the contexts that may call them: "ISR", "main-loop (destructive)", and
// "main-loop (read-only)". ISR methods assume the caller already holds the
// HAL critical section (see HAL); main-loop methods that mutate state
// shared with the ISR acquire it themselves.
package msgalloc
