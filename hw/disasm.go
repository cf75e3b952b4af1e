package hw

import (
	"bytes"
	"fmt"
	"io"
)

type DisasmOp struct {
	Opcode string
	Oper   string
	Buf    []byte
	PC     Address
}

// Disasm disassembles the instruction at pc, without side effects.
func (m *Machine) Disasm(pc Address) DisasmOp {
	opcode := m.Mem.Read8(pc)
	def := defs[opcode]

	op := DisasmOp{
		Opcode: def.op.String(),
		Buf:    []byte{opcode},
		PC:     pc,
	}
	if def.op == 0 {
		return op
	}

	var lo, hi uint8
	if def.mode.Width() > 0 {
		lo = m.Mem.Read8(pc.Add(1))
		op.Buf = append(op.Buf, lo)
	}
	if def.mode.Width() > 1 {
		hi = m.Mem.Read8(pc.Add(2))
		op.Buf = append(op.Buf, hi)
	}

	switch v := newValue(def.mode, lo, hi).(type) {
	case Relative:
		// Show the branch target rather than the offset.
		op.Oper = pc.Add(2).Add(AddressDiff(v)).String()
	default:
		op.Oper = v.String()
	}
	return op
}

// Disassemble writes the disassembly of count instructions starting at pc and
// returns the address following the last one.
func (m *Machine) Disassemble(w io.Writer, pc Address, count int) (Address, error) {
	for range count {
		op := m.Disasm(pc)
		if _, err := fmt.Fprintln(w, op.String()); err != nil {
			return pc, err
		}
		pc = pc.Add(AddressDiff(len(op.Buf)))
	}
	return pc, nil
}

// Bytes returns the fixed width representation of d used in listings and
// execution traces.
func (d DisasmOp) Bytes() []byte {
	const (
		opcodeCol = 16
		totalLen  = 32
	)

	buf := make([]byte, 0, totalLen)
	buf = fmt.Appendf(buf, "%04X  ", uint16(d.PC))
	for _, b := range d.Buf {
		buf = fmt.Appendf(buf, "%02X ", b)
	}
	for len(buf) < opcodeCol {
		buf = append(buf, ' ')
	}

	buf = append(buf, d.Opcode...)
	if d.Oper != "" {
		buf = append(buf, ' ')
		buf = append(buf, d.Oper...)
	}
	for len(buf) < totalLen {
		buf = append(buf, ' ')
	}
	return buf
}

func (d DisasmOp) String() string {
	return string(bytes.TrimRight(d.Bytes(), " "))
}
