package msgalloc

import "encoding/binary"

// HeaderCodec is the external frame-header contract: a message header/body
// layout treated as an opaque record with a known prefix giving total
// payload length. The allocator never interprets a header beyond this
// interface — routing, identity assignment, and the rest of the wire
// format belong to the collaborator that owns the codec.
type HeaderCodec interface {
	// HeaderSize returns H, the fixed prefix size in bytes.
	HeaderSize() int

	// DecodeLength reads the payload-size field out of a complete,
	// H-byte header. ok is false if header is too short or otherwise
	// structurally invalid.
	DecodeLength(header []byte) (size int, ok bool)

	// Cmd and SourceID read the remaining two fields the allocator's
	// accessor surface exposes (GetLuosTaskCmd/GetLuosTaskSourceId). They
	// are never used to make allocation decisions, only returned to callers.
	Cmd(header []byte) uint8
	SourceID(header []byte) uint16
}

// FixedHeaderCodec is the default HeaderCodec: a little-endian uint16 size
// field, a one-byte command, and a little-endian uint16 source id, packed
// at the front of an H-byte header — the layout of a header_t
// (size, cmd, source, ...).
type FixedHeaderCodec struct {
	// H is the total header size. Must be at least 5 (2 + 1 + 2).
	H int
}

var _ HeaderCodec = FixedHeaderCodec{}

const (
	fixedHeaderSizeOffset   = 0
	fixedHeaderCmdOffset    = 2
	fixedHeaderSourceOffset = 3
	fixedHeaderMinSize      = 5
)

func (c FixedHeaderCodec) HeaderSize() int { return c.H }

func (c FixedHeaderCodec) DecodeLength(header []byte) (int, bool) {
	if len(header) < fixedHeaderMinSize {
		return 0, false
	}
	return int(binary.LittleEndian.Uint16(header[fixedHeaderSizeOffset:])), true
}

func (c FixedHeaderCodec) Cmd(header []byte) uint8 {
	return header[fixedHeaderCmdOffset]
}

func (c FixedHeaderCodec) SourceID(header []byte) uint16 {
	return binary.LittleEndian.Uint16(header[fixedHeaderSourceOffset:])
}
