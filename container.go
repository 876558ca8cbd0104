package msgalloc

// Container is an opaque handle identifying a local message consumer. The
// allocator never interprets it beyond equality comparison (glossary:
// "Container").
//
// Container zero is reserved and invalid. LuosTaskAlloc halts via the HAL
// if asked to allocate against the zero Container; the other dispatch
// methods do not check it.
type Container uint32

// InvalidContainer is the reserved zero value.
const InvalidContainer Container = 0
