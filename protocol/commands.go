package protocol

import "fmt"

// Command is a V5 protocol operation code. Every frame carries exactly
// one command byte, and every byte read off the wire must map to a
// known Command before it is handed to callers.
type Command byte

// Command codes understood by this library.
const (
	// CommandExecuteFile starts or stops a program stored on the brain.
	CommandExecuteFile Command = 0x18

	// CommandExtended wraps a checksummed sub-message with its own
	// command, length field, and CRC.
	CommandExtended Command = 0x56
)

// CommandFromByte converts a raw wire byte into a Command.
// Unknown bytes are a decode failure, never a silent default.
func CommandFromByte(b byte) (Command, error) {
	switch Command(b) {
	case CommandExecuteFile, CommandExtended:
		return Command(b), nil
	}
	return 0, &UnknownCommandError{Byte: b}
}

// Byte returns the wire encoding of the command.
func (c Command) Byte() byte {
	return byte(c)
}

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandExecuteFile:
		return "ExecuteFile"
	case CommandExtended:
		return "Extended"
	default:
		return fmt.Sprintf("Command(0x%02X)", byte(c))
	}
}
