package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 100 * time.Millisecond

func TestDecodeFrameRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		payload []byte
	}{
		{name: "execute file empty", cmd: CommandExecuteFile, payload: nil},
		{name: "execute file short", cmd: CommandExecuteFile, payload: []byte{0x01, 0x02, 0x03}},
		{name: "execute file max simple", cmd: CommandExecuteFile, payload: bytes.Repeat([]byte{0x5A}, MaxReplyPayload)},
		{name: "extended empty", cmd: CommandExtended, payload: nil},
		{name: "extended wide", cmd: CommandExtended, payload: bytes.Repeat([]byte{0xA5}, 0x0300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := EncodeReply(tt.cmd, tt.payload)
			require.NoError(t, err)

			cmd, payload, err := DecodeFrame(bytes.NewReader(frame), testTimeout)
			require.NoError(t, err)
			assert.Equal(t, tt.cmd, cmd)
			if len(tt.payload) == 0 {
				assert.Empty(t, payload)
			} else {
				assert.Equal(t, tt.payload, payload)
			}
		})
	}
}

func TestDecodeFrameResync(t *testing.T) {
	frame, err := EncodeReply(CommandExecuteFile, []byte{0x42})
	require.NoError(t, err)

	// Noise before the marker, including a lone first marker byte that
	// must reset the match count.
	stream := append([]byte{0x00, 0xFF, 0xAA, 0x00, 0x17}, frame...)

	cmd, payload, err := DecodeFrame(bytes.NewReader(stream), testTimeout)
	require.NoError(t, err)
	assert.Equal(t, CommandExecuteFile, cmd)
	assert.Equal(t, []byte{0x42}, payload)
}

func TestDecodeFrameUnknownCommand(t *testing.T) {
	stream := []byte{0xAA, 0x55, 0x99, 0x01, 0x00}

	_, _, err := DecodeFrame(bytes.NewReader(stream), testTimeout)
	require.Error(t, err)

	var unknownErr *UnknownCommandError
	require.True(t, errors.As(err, &unknownErr), "expected UnknownCommandError, got %T", err)
	assert.Equal(t, byte(0x99), unknownErr.Byte)
}

func TestDecodeFrameTruncatedPayload(t *testing.T) {
	// Declares four payload bytes, delivers two.
	stream := []byte{0xAA, 0x55, 0x18, 0x04, 0x01, 0x02}

	_, _, err := DecodeFrame(bytes.NewReader(stream), testTimeout)
	require.Error(t, err)

	var truncated *TruncatedPayloadError
	require.True(t, errors.As(err, &truncated), "expected TruncatedPayloadError, got %T", err)
	assert.Equal(t, 4, truncated.Expected)
	assert.Equal(t, 2, truncated.Got)
}

func TestDecodeFrameTruncatedHeader(t *testing.T) {
	// Marker only, stream ends before the command byte.
	stream := []byte{0xAA, 0x55}

	_, _, err := DecodeFrame(bytes.NewReader(stream), testTimeout)
	require.Error(t, err)

	var truncated *TruncatedPayloadError
	require.True(t, errors.As(err, &truncated), "expected TruncatedPayloadError, got %T", err)
}

// noiseReader produces an endless stream that never contains the reply
// marker.
type noiseReader struct{}

func (noiseReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0x00
	}
	return len(p), nil
}

// silentReader models a transport whose read timeout fires with no data.
type silentReader struct{}

func (silentReader) Read(p []byte) (int, error) {
	time.Sleep(time.Millisecond)
	return 0, nil
}

func TestDecodeFrameSyncTimeout(t *testing.T) {
	tests := []struct {
		name   string
		reader io.Reader
	}{
		{name: "endless noise", reader: noiseReader{}},
		{name: "no data at all", reader: silentReader{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			_, _, err := DecodeFrame(tt.reader, 20*time.Millisecond)
			require.Error(t, err)

			var syncErr *SyncTimeoutError
			require.True(t, errors.As(err, &syncErr), "expected SyncTimeoutError, got %T", err)
			assert.True(t, syncErr.Timeout())
			assert.Less(t, time.Since(start), 5*time.Second, "decode must not block indefinitely")
		})
	}
}

func TestDecodeFrameStreamError(t *testing.T) {
	// Error surfaces before any marker byte arrives.
	_, _, err := DecodeFrame(bytes.NewReader(nil), testTimeout)
	require.Error(t, err)

	var syncErr *SyncTimeoutError
	assert.False(t, errors.As(err, &syncErr), "stream errors must not masquerade as timeouts")
}

func TestDecodeFrameZeroLengthPayload(t *testing.T) {
	frame, err := EncodeReply(CommandExecuteFile, nil)
	require.NoError(t, err)

	cmd, payload, err := DecodeFrame(bytes.NewReader(frame), testTimeout)
	require.NoError(t, err)
	assert.Equal(t, CommandExecuteFile, cmd)
	assert.Empty(t, payload)
}
