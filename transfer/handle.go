package transfer

// Metadata describes an open remote file as negotiated when the handle
// was opened. It is created once by the handle's owner and read-only
// from this package's perspective.
type Metadata struct {
	// MaxPacketSize is the negotiated maximum frame size in bytes
	MaxPacketSize uint16

	// FileSize is the total file length the brain expects, in bytes
	FileSize uint32

	// BaseAddress is the target memory address of the file's first byte
	BaseAddress uint32

	// FileType is the four-byte file type tag, e.g. "bin\x00"
	FileType [4]byte

	// Timestamp is the file timestamp in brain epoch seconds
	Timestamp uint32

	// Version is the file version word
	Version uint32

	// CRC is the CRC-32 of the entire file contents, computed once
	// before the transfer begins
	CRC uint32
}

// Handle is the remote file-handle contract this package consumes.
// Opening and closing a handle, including the metadata negotiation and
// checksum exchange behind it, belongs to the handle's implementation;
// the transfer engine only issues addressed writes against it.
type Handle interface {
	// Metadata returns the transfer metadata fixed at open time.
	Metadata() Metadata

	// WriteSome writes data to target memory at the given address and
	// returns the number of bytes accepted.
	WriteSome(addr uint32, data []byte) (int, error)
}
