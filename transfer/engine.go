package transfer

import (
	"time"

	"github.com/sirupsen/logrus"
)

// WriteChunked writes data to the remote file in packet-sized chunks
// and returns the total number of bytes written.
//
// The chunk limit is three quarters of the negotiated maximum packet
// size, reserving headroom so a full chunk plus framing never exceeds
// the hard maximum. The effective transfer size is the smaller of the
// buffer length and the declared file size: the engine never writes
// more than the brain said it expects and never reads past the end of
// the buffer. Every chunk except the last is exactly the chunk limit;
// the last carries the remainder.
//
// Chunks are written at consecutive addresses starting from the
// metadata's base address. The first failed write aborts the transfer
// immediately; there is no retry and no mid-stream resume.
func WriteChunked(h Handle, data []byte, opts ...Option) (int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	meta := h.Metadata()

	size := len(data)
	if uint64(size) > uint64(meta.FileSize) {
		size = int(meta.FileSize)
	}
	if size == 0 {
		return 0, nil
	}

	chunkLimit := int(meta.MaxPacketSize) * 3 / 4
	if chunkLimit <= 0 {
		return 0, &InvalidPacketSizeError{MaxPacketSize: meta.MaxPacketSize}
	}

	start := time.Now()
	written := 0

	for offset := 0; offset < size; offset += chunkLimit {
		n := chunkLimit
		if offset+n > size {
			n = size - offset
		}

		addr := meta.BaseAddress + uint32(offset)
		if _, err := h.WriteSome(addr, data[offset:offset+n]); err != nil {
			return written, &ChunkWriteError{Address: addr, Size: n, Err: err}
		}
		written += n

		if cfg.ProgressCallback != nil {
			cfg.ProgressCallback(Progress{
				BytesWritten: written,
				TotalBytes:   size,
				ChunkSize:    n,
				Percentage:   float64(written) / float64(size) * 100,
				ElapsedTime:  time.Since(start),
			})
		}
	}

	cfg.Logger.WithFields(logrus.Fields{
		"bytes":   written,
		"chunks":  (size + chunkLimit - 1) / chunkLimit,
		"elapsed": time.Since(start).String(),
	}).Info("chunked write complete")

	return written, nil
}
