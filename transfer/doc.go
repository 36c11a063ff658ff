// Package transfer implements chunked file uploads to a V5 brain.
//
// # Overview
//
// WriteChunked splits an arbitrary-length buffer into packet-sized
// addressed writes against a remote file handle, sized to the
// negotiated maximum packet size and capped by the file size the brain
// declared when the handle was opened. Progress is reported through an
// optional callback after each chunk.
//
// # The Handle Contract
//
// This package does not open or close remote files. The Handle
// interface is implemented elsewhere, typically on top of a
// device.Dispatcher, and carries the Metadata negotiated at open time:
// maximum packet size, declared file size, base address, and the
// whole-file CRC-32. NewBinMetadata builds that metadata for a raw
// program binary.
//
// # Usage
//
//	meta := transfer.NewBinMetadata(program, maxPacket)
//	h, err := openRemoteFile(disp, "slot_1.bin", meta)
//	if err != nil {
//	    return err
//	}
//
//	n, err := transfer.WriteChunked(h, program,
//	    transfer.WithProgressCallback(func(p transfer.Progress) {
//	        fmt.Printf("\r%.1f%%", p.Percentage)
//	    }),
//	)
//
// Closing the handle afterwards may take the brain several seconds;
// raise the dispatcher timeout to device.FinalizeTimeout around that
// step.
package transfer
