package protocol

// EncodeSimple builds a host-to-brain simple frame: the device magic
// sequence, the command byte, then the payload verbatim. Simple frames
// carry no length field of their own; the payload extent is whatever
// the caller writes. Always succeeds.
func EncodeSimple(cmd Command, payload []byte) []byte {
	frame := make([]byte, 0, len(DeviceMagic)+1+len(payload))
	frame = append(frame, DeviceMagic...)
	frame = append(frame, cmd.Byte())
	frame = append(frame, payload...)
	return frame
}

// EncodeExtended builds the inner region of an extended frame: the
// inner command byte, a variable-width length field, the payload, and a
// trailing big-endian CRC-16. The returned bytes are intended to be
// sent as the payload of a simple frame whose command is
// CommandExtended; the CRC covers that entire outer frame (magic,
// Extended command byte, inner region) but not the CRC bytes themselves.
//
// The length field is one byte for payloads up to SingleByteLengthMax
// bytes, otherwise two bytes big-endian with LengthContinuationBit set
// on the first. Payloads longer than MaxExtendedPayload fail with
// PayloadTooLargeError.
func EncodeExtended(cmd Command, payload []byte) ([]byte, error) {
	if len(payload) > MaxExtendedPayload {
		return nil, &PayloadTooLargeError{Length: len(payload), Max: MaxExtendedPayload}
	}

	inner := make([]byte, 0, 3+len(payload)+2)
	inner = append(inner, cmd.Byte())
	if len(payload) <= SingleByteLengthMax {
		inner = append(inner, byte(len(payload)))
	} else {
		inner = append(inner, byte(len(payload)>>8)|LengthContinuationBit, byte(len(payload)))
	}
	inner = append(inner, payload...)

	// Checksum the frame exactly as it will appear on the wire.
	crc := CRC16(EncodeSimple(CommandExtended, inner))
	inner = append(inner, byte(crc>>8), byte(crc))

	return inner, nil
}

// EncodeReply builds a brain-to-host reply frame: the reply marker, the
// command byte, a length field, then the payload. Non-extended replies
// carry a single length byte, so their payload is capped at
// MaxReplyPayload bytes; extended replies carry a two-byte big-endian
// length. This is the producer side of DecodeFrame, used by loopback
// tests and device simulators.
func EncodeReply(cmd Command, payload []byte) ([]byte, error) {
	frame := make([]byte, 0, len(ReplyMarker)+3+len(payload))
	frame = append(frame, ReplyMarker...)
	frame = append(frame, cmd.Byte())

	if cmd == CommandExtended {
		if len(payload) > 0xFFFF {
			return nil, &PayloadTooLargeError{Length: len(payload), Max: 0xFFFF}
		}
		frame = append(frame, byte(len(payload)>>8), byte(len(payload)))
	} else {
		if len(payload) > MaxReplyPayload {
			return nil, &PayloadTooLargeError{Length: len(payload), Max: MaxReplyPayload}
		}
		frame = append(frame, byte(len(payload)))
	}

	frame = append(frame, payload...)
	return frame, nil
}
