package hw

import "fmt"

// Address is a location in the 16-bit CPU address space.
type Address uint16

// AddressDiff is a signed distance between two addresses. Adding it to an
// Address wraps around the address space, as the hardware does.
type AddressDiff int32

// CheckedAddressDiff is an unsigned distance used for internal address
// computations, which must never cross the top of the address space.
type CheckedAddressDiff uint16

// NewAddress builds an address from its low byte (offset) and high byte (page).
func NewAddress(offset, page uint8) Address {
	return Address(uint16(page)<<8 | uint16(offset))
}

// Page returns the high byte of a.
func (a Address) Page() uint8 {
	return uint8((uint16(a) & 0xFF00) >> 8)
}

// Offset returns the low byte of a.
func (a Address) Offset() uint8 {
	return uint8(uint16(a) & 0x00FF)
}

// Add returns a+d, modulo 0x10000.
func (a Address) Add(d AddressDiff) Address {
	return Address(uint16(int32(a) + int32(d)))
}

// AddChecked returns a+d. Overflowing the address space is an emulator bug,
// which panics when internal checks are compiled in.
func (a Address) AddChecked(d CheckedAddressDiff) Address {
	sum := uint32(a) + uint32(d)
	if debugChecks && sum > 0xFFFF {
		panic(fmt.Sprintf("address overflow: $%04X + $%04X", uint16(a), uint16(d)))
	}
	return Address(sum)
}

func (d AddressDiff) Add(other AddressDiff) AddressDiff {
	return d + other
}

func (a Address) String() string {
	return fmt.Sprintf("$%04X", uint16(a))
}
