package device

import "fmt"

// ShortWriteError indicates that the stream accepted fewer bytes than a
// full frame. The frame is not retried; the stream is in an unknown
// state and the caller decides whether to start over.
type ShortWriteError struct {
	// Wrote is the number of bytes the stream accepted
	Wrote int

	// Expected is the full frame length
	Expected int
}

func (e *ShortWriteError) Error() string {
	return fmt.Sprintf("short write: wrote %d of %d frame bytes", e.Wrote, e.Expected)
}
