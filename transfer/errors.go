package transfer

import "fmt"

// ChunkWriteError indicates that an addressed write failed mid-transfer.
// The transfer is aborted at the failing chunk; bytes before it were
// written, nothing after it was attempted.
type ChunkWriteError struct {
	// Address is the target address of the failed chunk
	Address uint32

	// Size is the failed chunk's size in bytes
	Size int

	// Err is the underlying write failure
	Err error
}

func (e *ChunkWriteError) Error() string {
	return fmt.Sprintf("write %d-byte chunk at 0x%08X: %v", e.Size, e.Address, e.Err)
}

func (e *ChunkWriteError) Unwrap() error {
	return e.Err
}

// InvalidPacketSizeError indicates that the negotiated maximum packet
// size leaves no room for chunk data once framing headroom is reserved.
type InvalidPacketSizeError struct {
	// MaxPacketSize is the offending negotiated size
	MaxPacketSize uint16
}

func (e *InvalidPacketSizeError) Error() string {
	return fmt.Sprintf("negotiated max packet size %d leaves no room for chunk data", e.MaxPacketSize)
}
