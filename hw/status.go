package hw

// P is the 6502 processor status register.
type P uint8

const (
	Carry P = 1 << iota
	Zero
	Interrupt
	Decimal
	Break
	Unused
	Overflow
	Negative
)

// PFlags names each bit of the status register, for building P values.
type PFlags struct {
	Negative  bool
	Overflow  bool
	Unused    bool
	Break     bool
	Decimal   bool
	Interrupt bool
	Zero      bool
	Carry     bool
}

// NewP packs the given flags into a status register value.
func NewP(f PFlags) P {
	var p P
	p.writeFlag(Negative, f.Negative)
	p.writeFlag(Overflow, f.Overflow)
	p.writeFlag(Unused, f.Unused)
	p.writeFlag(Break, f.Break)
	p.writeFlag(Decimal, f.Decimal)
	p.writeFlag(Interrupt, f.Interrupt)
	p.writeFlag(Zero, f.Zero)
	p.writeFlag(Carry, f.Carry)
	return p
}

// PowerOnP returns the status register value at power-up.
func PowerOnP() P {
	return NewP(PFlags{Unused: true, Interrupt: true})
}

// SetWithMask replaces the bits of p selected by mask with those of val. Bits
// outside mask are left untouched.
//
// Instructions update the status register only through this method.
func (p *P) SetWithMask(mask, val P) {
	*p = (*p &^ mask) | (val & mask)
}

// CarryBit returns the carry flag as 0 or 1.
func (p P) CarryBit() uint8 {
	return uint8(p & Carry)
}

func (p P) hasFlag(flag P) bool {
	return p&flag == flag
}

func (p *P) writeFlag(flag P, v bool) {
	if v {
		*p |= flag
	} else {
		*p &^= flag
	}
}

func (p P) N() bool { return p.hasFlag(Negative) }
func (p P) V() bool { return p.hasFlag(Overflow) }
func (p P) U() bool { return p.hasFlag(Unused) }
func (p P) B() bool { return p.hasFlag(Break) }
func (p P) D() bool { return p.hasFlag(Decimal) }
func (p P) I() bool { return p.hasFlag(Interrupt) }
func (p P) Z() bool { return p.hasFlag(Zero) }
func (p P) C() bool { return p.hasFlag(Carry) }

// Flags unpacks p.
func (p P) Flags() PFlags {
	return PFlags{
		Negative:  p.N(),
		Overflow:  p.V(),
		Unused:    p.U(),
		Break:     p.B(),
		Decimal:   p.D(),
		Interrupt: p.I(),
		Zero:      p.Z(),
		Carry:     p.C(),
	}
}

func (p P) String() string {
	const bits = "nvubdizcNVUBDIZC"

	s := make([]byte, 8)
	for i := 0; i < 8; i++ {
		ibit := (uint8(p) & (1 << (7 - i))) >> (7 - i)
		s[i] = bits[i+int(8*ibit)]
	}
	return string(s)
}
