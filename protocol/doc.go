// Package protocol implements the VEX V5 brain wire protocol.
//
// This package provides pure encode/decode of the frames exchanged with
// a V5 brain over a duplex byte stream, plus the checksum algorithms
// the protocol relies on. It performs no I/O scheduling of its own;
// see the device package for sending and receiving frames.
//
// # Frame Formats
//
// Host-to-brain frames open with a fixed four-byte magic sequence:
//
//	Simple:   [C9 36 B8 47][CMD][PAYLOAD...]
//	Extended: [C9 36 B8 47][56][INNER_CMD][LEN...][PAYLOAD...][CRC_H][CRC_L]
//
// An extended frame is a simple frame whose command is CommandExtended
// and whose payload is a nested sub-message: inner command, a
// variable-width length field (one byte up to 0x80, two bytes
// big-endian with the high bit of the first set beyond that), the inner
// payload, and a trailing CRC-16 computed over everything that precedes
// it, magic included.
//
// Brain-to-host replies open with a two-byte marker instead:
//
//	Reply: [AA 55][CMD][LEN...][PAYLOAD...]
//
// Replies always carry a length field: one byte, extended to sixteen
// bits by a second byte when the command is CommandExtended.
//
// # Encoding
//
//	frame := protocol.EncodeSimple(protocol.CommandExecuteFile, payload)
//	inner, err := protocol.EncodeExtended(protocol.CommandExecuteFile, payload)
//
// EncodeExtended returns the inner region with its CRC appended; wrap
// it with EncodeSimple(CommandExtended, inner) to produce the outer
// frame as transmitted.
//
// # Decoding
//
//	cmd, payload, err := protocol.DecodeFrame(stream, 100*time.Millisecond)
//
// DecodeFrame resynchronizes on the reply marker byte-by-byte, so it
// tolerates noise and partial frames preceding a valid reply.
//
// # Checksums
//
// Extended frames carry a CRC-16 (polynomial 0x1021, initial value
// 0xFFFF, unreflected, no final XOR). File uploads additionally embed a
// CRC-32 of the whole payload (polynomial 0x04C11DB7, zero initial
// value) in their transfer metadata; see CRC32.
//
// # Errors
//
// Decode failures are typed: SyncTimeoutError, TruncatedPayloadError,
// UnknownCommandError. Encode rejects oversized payloads with
// PayloadTooLargeError. Underlying stream errors are wrapped and can be
// recovered with errors.Unwrap.
package protocol
