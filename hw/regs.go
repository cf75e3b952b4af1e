package hw

// StackPointer is an offset into the stack page.
type StackPointer uint8

// Address returns the memory location the stack pointer points to.
func (sp StackPointer) Address() Address {
	return StackAddressLo.Add(AddressDiff(sp))
}

// Registers is the CPU register file.
type Registers struct {
	A  int8 // accumulator
	X  uint8
	Y  uint8
	SP StackPointer
	PC Address
	P  P
}

// NewRegisters returns the register file at power-up.
func NewRegisters() Registers {
	return Registers{
		A:  0,
		X:  0,
		Y:  0,
		SP: StackPointer(StackAddressHi.Offset()),
		PC: 0x0000,
		P:  PowerOnP(),
	}
}
