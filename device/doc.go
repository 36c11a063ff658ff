// Package device dispatches V5 protocol commands over a duplex byte stream.
//
// # Overview
//
// A Dispatcher owns one stream to one brain and performs one exchange
// at a time: encode a frame via the protocol package, write it out, and
// optionally block for the reply. All calls are synchronous; there is
// no internal locking because there is exactly one owner per stream.
//
// # Basic Usage
//
//	disp := device.New(port)
//
//	// Fire a command and wait for the brain's reply.
//	_, err := disp.SendExtended(protocol.CommandExecuteFile, payload)
//	if err != nil {
//	    return err
//	}
//	cmd, reply, err := disp.ReceiveSimple(0) // 0 = configured timeout
//
// # Timeouts
//
// ReceiveSimple is the only suspension point. Each call is bounded by a
// timeout: the argument when positive, the configured default (100 ms)
// otherwise. Slow operations such as the close step of a file transfer
// need more headroom; raise the timeout around them and restore it:
//
//	disp.SetTimeout(device.FinalizeTimeout)
//	defer disp.SetTimeout(0)
//
// There is no cancellation primitive beyond the timeout. A caller
// wanting early abort closes the underlying stream, which surfaces as
// an I/O error from the pending read.
//
// # Hardware Independence
//
// The dispatcher works against any io.ReadWriter with blocking reads
// and complete writes: a serial port, a USB CDC endpoint, or an
// in-memory loopback for tests. Streams that buffer writes may
// implement Flusher to have every frame pushed out immediately.
package device
