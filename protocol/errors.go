package protocol

import (
	"fmt"
	"time"
)

// SyncTimeoutError indicates that no reply marker was found on the
// stream within the allotted time.
type SyncTimeoutError struct {
	// Waited is the timeout that elapsed while searching
	Waited time.Duration
}

func (e *SyncTimeoutError) Error() string {
	return fmt.Sprintf("no reply marker found within %v", e.Waited)
}

// Timeout reports that this error is a timeout, matching the net.Error
// convention.
func (e *SyncTimeoutError) Timeout() bool { return true }

// TruncatedPayloadError indicates that the stream ended, or stopped
// producing data, before a complete frame was read.
type TruncatedPayloadError struct {
	// Expected is the number of bytes the frame header declared
	Expected int

	// Got is the number of bytes actually read
	Got int
}

func (e *TruncatedPayloadError) Error() string {
	return fmt.Sprintf("truncated frame: expected %d bytes, got %d", e.Expected, e.Got)
}

// UnknownCommandError indicates a frame whose command byte does not map
// to any known Command.
type UnknownCommandError struct {
	// Byte is the unrecognized command byte
	Byte byte
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command 0x%02X", e.Byte)
}

// PayloadTooLargeError indicates a payload wider than the extended
// length field can represent.
type PayloadTooLargeError struct {
	// Length is the offending payload length
	Length int

	// Max is the largest representable length
	Max int
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("payload length %d exceeds maximum %d", e.Length, e.Max)
}
