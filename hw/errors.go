package hw

import "errors"

var (
	// ErrNotImplemented is returned for operand resolutions and instructions
	// whose semantics are not emulated.
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoOperand is returned when resolving the operand of an instruction
	// that has none.
	ErrNoOperand = errors.New("instruction has no operand")

	// ErrIllegalOpcode is returned when decoding a byte which is not an
	// official 6502 opcode.
	ErrIllegalOpcode = errors.New("illegal opcode")
)
