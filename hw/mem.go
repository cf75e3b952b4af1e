package hw

import "sixfive/emu/log"

// Stack page boundaries.
const (
	StackAddressLo = Address(0x0100)
	StackAddressHi = Address(0x01FF)
)

// Memory is a flat memory spanning the whole 16-bit address space, so that any
// Address is a valid index.
type Memory [0x10000]uint8

func (m *Memory) Read8(addr Address) uint8 {
	return m[addr]
}

func (m *Memory) Write8(addr Address, val uint8) {
	m[addr] = val
}

// Read16 reads a little-endian 16-bit value, wrapping at the top of memory.
func (m *Memory) Read16(addr Address) uint16 {
	lo := m.Read8(addr)
	hi := m.Read8(addr.Add(1))
	return uint16(hi)<<8 | uint16(lo)
}

// Load copies buf into memory starting at addr. Bytes past $FFFF wrap around
// to $0000.
func (m *Memory) Load(addr Address, buf []byte) {
	log.ModMem.DebugZ("loading image").
		Hex16("addr", uint16(addr)).
		Int("size", len(buf)).
		End()

	if len(buf) > len(m) {
		log.ModMem.WarnZ("image larger than address space, truncated").
			Int("size", len(buf)).
			End()
		buf = buf[:len(m)]
	}

	n := copy(m[addr:], buf)
	copy(m[:], buf[n:])
}

// Page returns the 256 bytes of the given memory page.
func (m *Memory) Page(page uint8) []uint8 {
	first := NewAddress(0x00, page)
	last := first.AddChecked(0xFF)
	return m[first : uint32(last)+1]
}
