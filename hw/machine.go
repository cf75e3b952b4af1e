package hw

import (
	"fmt"
	"io"
	"strings"

	"sixfive/emu/log"
	"sixfive/hw/snapshot"
)

// Machine is a 6502 CPU with its 64KB of memory.
type Machine struct {
	Regs Registers
	Mem  Memory

	Steps int64 // executed instructions

	// Non-nil when execution tracing is enabled.
	tracer *tracer
}

// NewMachine creates a new machine at power-up state.
func NewMachine() *Machine {
	m := new(Machine)
	m.Reset()
	return m
}

// Reset brings the machine back to its power-up state. Memory is cleared too,
// programs have to be loaded again.
func (m *Machine) Reset() {
	m.Regs = NewRegisters()
	m.Mem = Memory{}
	m.Steps = 0

	log.ModCPU.DebugZ("reset").End()
}

// Execute runs a decoded instruction.
func (m *Machine) Execute(inst Instruction) error {
	switch inst.Op {
	case ADC:
		switch inst.Value.(type) {
		case Immediate, Absolute:
			val, err := ResolveValue(inst.Value, &m.Mem)
			if err != nil {
				return err
			}
			m.AddWithCarry(int8(val))
			return nil
		}
	case NOP:
		return nil
	}

	return fmt.Errorf("%w: %s (%s)", ErrNotImplemented, inst, modeOf(inst.Value))
}

func modeOf(v Value) Mode {
	if v == nil {
		return Imp
	}
	return v.Mode()
}

// AddWithCarry adds val and the carry flag to the accumulator. Only binary
// mode is emulated, the decimal flag is ignored.
//
// Carry is set when the result, read as unsigned, is below the previous
// accumulator.
func (m *Machine) AddWithCarry(val int8) {
	a := m.Regs.A
	carry := m.Regs.P.CarryBit()

	res := a + int8(carry) + val
	sum := uint16(uint8(a)) + uint16(carry) + uint16(uint8(val))

	if debugChecks && uint8(sum) != uint8(res) {
		panic(fmt.Sprintf("ADC inconsistency: A=%d C=%d val=%d: %d != %d", a, carry, val, uint8(sum), uint8(res)))
	}

	// signed overflow, can only happen if the sign of the sum differs
	// from that of both operands.
	v := (uint16(uint8(a)) ^ sum) & (uint16(uint8(val)) ^ sum) & 0x80

	m.Regs.P.SetWithMask(Carry|Zero|Negative|Overflow, NewP(PFlags{
		Carry:    uint8(res) < uint8(a),
		Zero:     res == 0,
		Negative: res < 0,
		Overflow: v != 0,
	}))
	m.Regs.A = res
}

// Step decodes and executes the instruction at the program counter.
//
// On error the program counter has already moved past the decoded bytes and
// the instruction had no other effect.
func (m *Machine) Step() error {
	if m.tracer != nil {
		m.traceOp()
	}

	pc := m.Regs.PC
	inst, err := m.PopInstruction()
	if err != nil {
		return err
	}

	log.ModCPU.DebugZ("execute").
		Hex16("pc", uint16(pc)).
		Stringer("inst", inst).
		End()

	if err := m.Execute(inst); err != nil {
		return fmt.Errorf("%s: %w", pc, err)
	}
	m.Steps++
	return nil
}

// Run executes n instructions, stopping at the first error.
func (m *Machine) Run(n int64) error {
	for i := int64(0); i < n; i++ {
		if err := m.Step(); err != nil {
			log.ModCPU.WarnZ("CPU halted").
				Hex16("PC", uint16(m.Regs.PC)).
				Int64("steps", m.Steps).
				Error("err", err).
				End()
			return err
		}
	}
	return nil
}

// SetTraceOutput enables the execution trace, written to w before each
// instruction. A nil writer disables tracing.
func (m *Machine) SetTraceOutput(w io.Writer) {
	if w == nil {
		m.tracer = nil
		return
	}
	m.tracer = &tracer{w: w, d: m}
}

func (m *Machine) traceOp() {
	m.tracer.write(cpuState{
		A:     uint8(m.Regs.A),
		X:     m.Regs.X,
		Y:     m.Regs.Y,
		P:     m.Regs.P,
		SP:    uint8(m.Regs.SP),
		PC:    m.Regs.PC,
		Steps: m.Steps,
	})
}

// Snapshot returns the machine state. Only non-zero memory cells are listed.
func (m *Machine) Snapshot() *snapshot.State {
	s := &snapshot.State{
		PC: uint16(m.Regs.PC),
		SP: uint8(m.Regs.SP),
		A:  uint8(m.Regs.A),
		X:  m.Regs.X,
		Y:  m.Regs.Y,
		P:  uint8(m.Regs.P),
	}
	for addr, val := range m.Mem[:] {
		if val != 0 {
			s.RAM = append(s.RAM, snapshot.Cell{Addr: uint16(addr), Val: val})
		}
	}
	return s
}

// Restore resets the machine and loads the given state.
func (m *Machine) Restore(s *snapshot.State) {
	m.Reset()
	m.Regs = Registers{
		A:  int8(s.A),
		X:  s.X,
		Y:  s.Y,
		SP: StackPointer(s.SP),
		PC: Address(s.PC),
		P:  P(s.P),
	}
	for _, c := range s.RAM {
		m.Mem.Write8(Address(c.Addr), c.Val)
	}
}

func (m *Machine) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "PC:%s A:%02X X:%02X Y:%02X SP:%02X P:%02X(%s) steps:%d\n",
		m.Regs.PC, uint8(m.Regs.A), m.Regs.X, m.Regs.Y, uint8(m.Regs.SP),
		uint8(m.Regs.P), m.Regs.P, m.Steps)

	stack := m.Mem.Page(StackAddressLo.Page())
	top := int(m.Regs.SP) + 1
	if top < len(stack) {
		fmt.Fprintf(&sb, "stack: % X\n", stack[top:])
	}
	return sb.String()
}
