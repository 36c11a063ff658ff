package transfer

import "github.com/v5tools/go-v5serial/protocol"

// Defaults for uploading a user program binary.
const (
	// DefaultBaseAddress is where user program binaries are loaded
	DefaultBaseAddress = 0x03800000

	// DefaultVersion is the version word stamped on uploaded binaries
	DefaultVersion = 0x01000000
)

// FileTypeBin is the type tag for raw program binaries.
var FileTypeBin = [4]byte{'b', 'i', 'n', 0}

// NewBinMetadata builds upload metadata for a raw program binary:
// default base address and version, "bin" type tag, declared size equal
// to the buffer length, and the whole-file CRC-32 precomputed over the
// buffer. The caller supplies the packet size negotiated with the brain.
func NewBinMetadata(data []byte, maxPacketSize uint16) Metadata {
	return Metadata{
		MaxPacketSize: maxPacketSize,
		FileSize:      uint32(len(data)),
		BaseAddress:   DefaultBaseAddress,
		FileType:      FileTypeBin,
		Version:       DefaultVersion,
		CRC:           protocol.CRC32(data),
	}
}
