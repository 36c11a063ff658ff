package transfer

import "time"

// Progress contains information about an in-flight chunked write.
// Passed to ProgressCallback after each chunk completes, so
// BytesWritten is monotonically increasing and its final value equals
// the effective transfer size.
type Progress struct {
	// BytesWritten is the total number of bytes written so far
	BytesWritten int

	// TotalBytes is the effective transfer size
	TotalBytes int

	// ChunkSize is the size of the chunk that just completed
	ChunkSize int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// ElapsedTime is the time elapsed since the transfer started
	ElapsedTime time.Duration
}

// ProgressCallback is called after each chunk during a chunked write.
// Implementations should return quickly to avoid stalling the transfer;
// rendering a progress bar or spinner belongs to the caller, never to
// this package.
type ProgressCallback func(Progress)
