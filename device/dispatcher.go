package device

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/v5tools/go-v5serial/protocol"
)

// Flusher is implemented by streams that buffer writes. When the
// underlying stream provides it, the dispatcher flushes after every
// frame so a command is never left sitting in a host-side buffer.
type Flusher interface {
	Flush() error
}

// Dispatcher drives one round of protocol exchange at a time over a
// duplex byte stream: encode and send a frame, optionally receive the
// reply. It assumes exclusive ownership of the stream; drive multiple
// brains with one Dispatcher per stream and no sharing between them.
type Dispatcher struct {
	stream io.ReadWriter
	config Config
}

// New creates a Dispatcher for the given stream.
//
// Example:
//
//	port := myserial.Open("/dev/ttyACM0")
//	disp := device.New(port,
//	    device.WithTimeout(200*time.Millisecond),
//	)
func New(stream io.ReadWriter, opts ...Option) *Dispatcher {
	if stream == nil {
		panic("stream cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Dispatcher{
		stream: stream,
		config: cfg,
	}
}

// SendSimple encodes a simple frame and writes it to the stream,
// flushing when the stream supports it. Returns the number of bytes
// written. A short write is an error; nothing is retried here.
func (d *Dispatcher) SendSimple(cmd protocol.Command, payload []byte) (int, error) {
	frame := protocol.EncodeSimple(cmd, payload)

	n, err := d.stream.Write(frame)
	if err != nil {
		return n, fmt.Errorf("write frame: %w", err)
	}
	if n < len(frame) {
		return n, &ShortWriteError{Wrote: n, Expected: len(frame)}
	}

	if f, ok := d.stream.(Flusher); ok {
		if err := f.Flush(); err != nil {
			return n, fmt.Errorf("flush stream: %w", err)
		}
	}

	d.config.Logger.WithFields(logrus.Fields{
		"command": cmd.String(),
		"bytes":   n,
	}).Debug("frame sent")

	return n, nil
}

// SendExtended builds the checksummed inner region for cmd and sends it
// nested inside a simple frame whose command is CommandExtended.
// Returns the number of bytes written for the whole outer frame.
func (d *Dispatcher) SendExtended(cmd protocol.Command, payload []byte) (int, error) {
	inner, err := protocol.EncodeExtended(cmd, payload)
	if err != nil {
		return 0, err
	}
	return d.SendSimple(protocol.CommandExtended, inner)
}

// ReceiveSimple blocks until a complete reply frame is decoded or the
// timeout elapses. A non-positive timeout uses the dispatcher's
// configured timeout. This is the protocol layer's only suspension
// point; to abort early, close the underlying stream.
func (d *Dispatcher) ReceiveSimple(timeout time.Duration) (protocol.Command, []byte, error) {
	if timeout <= 0 {
		timeout = d.config.ReceiveTimeout
	}

	cmd, payload, err := protocol.DecodeFrame(d.stream, timeout)
	if err != nil {
		return 0, nil, err
	}

	d.config.Logger.WithFields(logrus.Fields{
		"command": cmd.String(),
		"bytes":   len(payload),
	}).Debug("frame received")

	return cmd, payload, nil
}

// SetTimeout changes the timeout used when ReceiveSimple is called with
// a non-positive value. A non-positive argument restores
// DefaultReceiveTimeout. Callers raise this around slow finalize steps,
// such as closing a file handle after an upload, and restore it after:
//
//	disp.SetTimeout(device.FinalizeTimeout)
//	defer disp.SetTimeout(0)
func (d *Dispatcher) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultReceiveTimeout
	}
	d.config.ReceiveTimeout = timeout
}

// Timeout returns the timeout currently applied to ReceiveSimple calls
// that do not supply their own.
func (d *Dispatcher) Timeout() time.Duration {
	return d.config.ReceiveTimeout
}
