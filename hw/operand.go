package hw

import "fmt"

// Mode is an addressing mode.
type Mode uint8

const (
	Imp Mode = iota // implied
	Acc             // accumulator
	Imm             // immediate
	Zpg             // zero page
	Zpx             // zero page,X
	Zpy             // zero page,Y
	Rel             // relative
	Abs             // absolute
	Abx             // absolute,X
	Aby             // absolute,Y
	Ind             // (indirect)
	Izx             // (indirect,X)
	Izy             // (indirect),Y
)

var modeInfos = [...]struct {
	name  string
	width int
}{
	Imp: {"imp", 0},
	Acc: {"acc", 0},
	Imm: {"imm", 1},
	Zpg: {"zpg", 1},
	Zpx: {"zpx", 1},
	Zpy: {"zpy", 1},
	Rel: {"rel", 1},
	Abs: {"abs", 2},
	Abx: {"abx", 2},
	Aby: {"aby", 2},
	Ind: {"ind", 2},
	Izx: {"izx", 1},
	Izy: {"izy", 1},
}

// Width returns the number of operand bytes following the opcode.
func (m Mode) Width() int {
	return modeInfos[m].width
}

func (m Mode) String() string {
	if int(m) < len(modeInfos) {
		return modeInfos[m].name
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Value describes where the operand of an instruction lives. The set of
// implementations is closed, one per addressing mode.
type Value interface {
	Mode() Mode
	String() string

	isValue()
}

type (
	Implied          struct{}
	Accumulator      struct{}
	Immediate        uint8
	ZeroPage         uint8
	ZeroPageX        uint8
	ZeroPageY        uint8
	Relative         int8
	Absolute         Address
	AbsoluteX        Address
	AbsoluteY        Address
	Indirect         Address
	IndexedIndirectX uint8
	IndirectIndexedY uint8
)

func (Implied) Mode() Mode          { return Imp }
func (Accumulator) Mode() Mode      { return Acc }
func (Immediate) Mode() Mode        { return Imm }
func (ZeroPage) Mode() Mode         { return Zpg }
func (ZeroPageX) Mode() Mode        { return Zpx }
func (ZeroPageY) Mode() Mode        { return Zpy }
func (Relative) Mode() Mode         { return Rel }
func (Absolute) Mode() Mode         { return Abs }
func (AbsoluteX) Mode() Mode        { return Abx }
func (AbsoluteY) Mode() Mode        { return Aby }
func (Indirect) Mode() Mode         { return Ind }
func (IndexedIndirectX) Mode() Mode { return Izx }
func (IndirectIndexedY) Mode() Mode { return Izy }

func (Implied) isValue()          {}
func (Accumulator) isValue()      {}
func (Immediate) isValue()        {}
func (ZeroPage) isValue()         {}
func (ZeroPageX) isValue()        {}
func (ZeroPageY) isValue()        {}
func (Relative) isValue()         {}
func (Absolute) isValue()         {}
func (AbsoluteX) isValue()        {}
func (AbsoluteY) isValue()        {}
func (Indirect) isValue()         {}
func (IndexedIndirectX) isValue() {}
func (IndirectIndexedY) isValue() {}

// Assembler syntax.

func (Implied) String() string            { return "" }
func (Accumulator) String() string        { return "A" }
func (v Immediate) String() string        { return fmt.Sprintf("#$%02X", uint8(v)) }
func (v ZeroPage) String() string         { return fmt.Sprintf("$%02X", uint8(v)) }
func (v ZeroPageX) String() string        { return fmt.Sprintf("$%02X,X", uint8(v)) }
func (v ZeroPageY) String() string        { return fmt.Sprintf("$%02X,Y", uint8(v)) }
func (v Absolute) String() string         { return fmt.Sprintf("$%04X", uint16(v)) }
func (v AbsoluteX) String() string        { return fmt.Sprintf("$%04X,X", uint16(v)) }
func (v AbsoluteY) String() string        { return fmt.Sprintf("$%04X,Y", uint16(v)) }
func (v Indirect) String() string         { return fmt.Sprintf("($%04X)", uint16(v)) }
func (v IndexedIndirectX) String() string { return fmt.Sprintf("($%02X,X)", uint8(v)) }
func (v IndirectIndexedY) String() string { return fmt.Sprintf("($%02X),Y", uint8(v)) }

func (v Relative) String() string {
	if v < 0 {
		return fmt.Sprintf("*-%d", -int(v))
	}
	return fmt.Sprintf("*+%d", int(v))
}

// newValue builds the Value of the given mode from the operand bytes that
// follow the opcode. Unused bytes are ignored.
func newValue(mode Mode, lo, hi uint8) Value {
	switch mode {
	case Imp:
		return Implied{}
	case Acc:
		return Accumulator{}
	case Imm:
		return Immediate(lo)
	case Zpg:
		return ZeroPage(lo)
	case Zpx:
		return ZeroPageX(lo)
	case Zpy:
		return ZeroPageY(lo)
	case Rel:
		return Relative(int8(lo))
	case Abs:
		return Absolute(NewAddress(lo, hi))
	case Abx:
		return AbsoluteX(NewAddress(lo, hi))
	case Aby:
		return AbsoluteY(NewAddress(lo, hi))
	case Ind:
		return Indirect(NewAddress(lo, hi))
	case Izx:
		return IndexedIndirectX(lo)
	case Izy:
		return IndirectIndexedY(lo)
	}
	panic(fmt.Sprintf("unknown addressing mode %d", mode))
}

// ResolveValue returns the operand byte v designates. Only immediate and
// absolute operands are supported, others return ErrNotImplemented rather
// than a wrong value.
func ResolveValue(v Value, mem *Memory) (uint8, error) {
	switch v := v.(type) {
	case Immediate:
		return uint8(v), nil
	case Absolute:
		return mem.Read8(Address(v)), nil
	case Implied, Accumulator:
		return 0, fmt.Errorf("%w: %s", ErrNoOperand, v.Mode())
	case nil:
		return 0, fmt.Errorf("%w: nil operand", ErrNoOperand)
	}
	return 0, fmt.Errorf("%w: %s operand %s", ErrNotImplemented, v.Mode(), v)
}
