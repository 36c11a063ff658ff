package protocol

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// DecodeFrame reads one reply frame from the stream. It scans
// byte-by-byte for the reply marker, tracking how many consecutive
// marker bytes have matched; any mismatch resets the match count to
// zero. Once the marker is found it reads the command byte and length
// byte, folds in a second length byte when the command is
// CommandExtended, then reads exactly the declared payload.
//
// The timeout bounds the whole decode. It is evaluated once per
// blocking read attempt: if the deadline has passed while the marker is
// still incomplete the decode fails with SyncTimeoutError, and a stream
// that stops producing data mid-frame fails with TruncatedPayloadError.
// A stream that blocks indefinitely inside a single Read cannot be
// preempted here; transports are expected to supply their own read
// timeouts or be closed by the caller.
//
// A payload shorter than the declared length is a hard error, never
// silently padded or truncated.
func DecodeFrame(r io.Reader, timeout time.Duration) (Command, []byte, error) {
	deadline := time.Now().Add(timeout)

	if err := scanMarker(r, deadline); err != nil {
		if errors.Is(err, errDeadline) {
			return 0, nil, &SyncTimeoutError{Waited: timeout}
		}
		return 0, nil, fmt.Errorf("read reply marker: %w", err)
	}

	var header [2]byte
	if err := readFrameBytes(r, header[:], deadline); err != nil {
		return 0, nil, err
	}

	rawCmd := header[0]
	length := int(header[1])

	// Extended replies split the length across two bytes, high byte first.
	if rawCmd == CommandExtended.Byte() {
		var low [1]byte
		if err := readFrameBytes(r, low[:], deadline); err != nil {
			return 0, nil, err
		}
		length = length<<8 | int(low[0])
	}

	payload := make([]byte, length)
	if err := readFrameBytes(r, payload, deadline); err != nil {
		return 0, nil, err
	}

	cmd, err := CommandFromByte(rawCmd)
	if err != nil {
		return 0, nil, err
	}

	return cmd, payload, nil
}

// errDeadline signals that a read deadline elapsed; it never escapes
// this package.
var errDeadline = errors.New("deadline elapsed")

// scanMarker consumes stream bytes until the full reply marker has been
// matched. The match count is clamped to [0, len(ReplyMarker)]; a
// mismatched byte resets it to zero.
func scanMarker(r io.Reader, deadline time.Time) error {
	var b [1]byte
	matched := 0
	for matched < len(ReplyMarker) {
		n, err := r.Read(b[:])
		if err != nil {
			return err
		}
		if n > 0 {
			if b[0] == ReplyMarker[matched] {
				matched++
			} else {
				matched = 0
			}
		}
		if matched < len(ReplyMarker) && time.Now().After(deadline) {
			return errDeadline
		}
	}
	return nil
}

// readFrameBytes fills buf from the stream, treating any shortfall
// (end of stream or elapsed deadline) as a truncated frame.
func readFrameBytes(r io.Reader, buf []byte, deadline time.Time) error {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				return &TruncatedPayloadError{Expected: len(buf), Got: total}
			}
			return fmt.Errorf("read frame: %w", err)
		}
		if total < len(buf) && time.Now().After(deadline) {
			return &TruncatedPayloadError{Expected: len(buf), Got: total}
		}
	}
	return nil
}
