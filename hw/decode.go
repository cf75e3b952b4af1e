package hw

import (
	"fmt"

	"sixfive/emu/log"
)

// Instruction is a decoded instruction: an opcode and its operand.
type Instruction struct {
	Op    Opcode
	Value Value
}

func (inst Instruction) String() string {
	if inst.Value == nil || inst.Value.String() == "" {
		return inst.Op.String()
	}
	return inst.Op.String() + " " + inst.Value.String()
}

// PeekPC8 returns the byte at the program counter.
func (m *Machine) PeekPC8() uint8 {
	return m.Mem.Read8(m.Regs.PC)
}

// PopPC8 returns the byte at the program counter and increments it.
func (m *Machine) PopPC8() uint8 {
	val := m.PeekPC8()
	m.Regs.PC = m.Regs.PC.Add(1)
	return val
}

// PopInstruction decodes the instruction at the program counter and moves the
// program counter past it. Operands of absolute modes are stored little-endian.
//
// An undocumented opcode returns ErrIllegalOpcode, in which case only the
// opcode byte has been consumed.
func (m *Machine) PopInstruction() (Instruction, error) {
	pc := m.Regs.PC
	opcode := m.PopPC8()

	def := defs[opcode]
	if def.op == 0 {
		log.ModCPU.DebugZ("illegal opcode").
			Hex16("pc", uint16(pc)).
			Hex8("opcode", opcode).
			End()
		return Instruction{}, fmt.Errorf("%w $%02X at %s", ErrIllegalOpcode, opcode, pc)
	}

	var lo, hi uint8
	switch def.mode.Width() {
	case 1:
		lo = m.PopPC8()
	case 2:
		lo = m.PopPC8()
		hi = m.PopPC8()
	}

	return Instruction{Op: def.op, Value: newValue(def.mode, lo, hi)}, nil
}
