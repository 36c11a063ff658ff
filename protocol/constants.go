package protocol

// DeviceMagic is the fixed byte sequence that opens every host-to-brain
// frame. The brain scans for it to locate frame boundaries in the
// otherwise unstructured serial stream.
var DeviceMagic = []byte{0xC9, 0x36, 0xB8, 0x47}

// ReplyMarker is the fixed byte sequence that opens every brain-to-host
// reply frame.
var ReplyMarker = []byte{0xAA, 0x55}

// Length field encoding for extended frames.
const (
	// SingleByteLengthMax is the largest payload length that fits the
	// one-byte form of the extended length field.
	SingleByteLengthMax = 0x80

	// LengthContinuationBit marks the first byte of a two-byte length field.
	LengthContinuationBit = 0x80

	// MaxExtendedPayload is the largest payload length representable by
	// the extended length field: 15 bits once the continuation bit is
	// accounted for.
	MaxExtendedPayload = 0x7FFF

	// MaxReplyPayload is the largest payload length representable in a
	// non-extended reply frame, whose length field is a single byte.
	MaxReplyPayload = 0xFF
)
