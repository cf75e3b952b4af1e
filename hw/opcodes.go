package hw

// Opcode is an instruction mnemonic, independent of its addressing mode.
type Opcode uint8

// Official 6502 instructions.
const (
	_   Opcode = iota
	ADC        // add with carry
	AND        // logical and
	ASL        // arithmetic shift left
	BCC        // branch if carry clear
	BCS        // branch if carry set
	BEQ        // branch if equal
	BIT        // bit test
	BMI        // branch if minus
	BNE        // branch if not equal
	BPL        // branch if plus
	BRK        // force interrupt
	BVC        // branch if overflow clear
	BVS        // branch if overflow set
	CLC        // clear carry
	CLD        // clear decimal mode
	CLI        // clear interrupt disable
	CLV        // clear overflow
	CMP        // compare accumulator
	CPX        // compare X
	CPY        // compare Y
	DEC        // decrement memory
	DEX        // decrement X
	DEY        // decrement Y
	EOR        // exclusive or
	INC        // increment memory
	INX        // increment X
	INY        // increment Y
	JMP        // jump
	JSR        // jump to subroutine
	LDA        // load accumulator
	LDX        // load X
	LDY        // load Y
	LSR        // logical shift right
	NOP        // no operation
	ORA        // logical inclusive or
	PHA        // push accumulator
	PHP        // push processor status
	PLA        // pull accumulator
	PLP        // pull processor status
	ROL        // rotate left
	ROR        // rotate right
	RTI        // return from interrupt
	RTS        // return from subroutine
	SBC        // subtract with carry
	SEC        // set carry
	SED        // set decimal mode
	SEI        // set interrupt disable
	STA        // store accumulator
	STX        // store X
	STY        // store Y
	TAX        // transfer A to X
	TAY        // transfer A to Y
	TSX        // transfer SP to X
	TXA        // transfer X to A
	TXS        // transfer X to SP
	TYA        // transfer Y to A
)

var opcodeNames = [...]string{
	"???",
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI",
	"BNE", "BPL", "BRK", "BVC", "BVS", "CLC", "CLD", "CLI",
	"CLV", "CMP", "CPX", "CPY", "DEC", "DEX", "DEY", "EOR",
	"INC", "INX", "INY", "JMP", "JSR", "LDA", "LDX", "LDY",
	"LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA",
	"STX", "STY", "TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
}

func (op Opcode) String() string {
	if int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return opcodeNames[0]
}

type opdef struct {
	op   Opcode
	mode Mode
}

// defs maps opcode bytes to instructions. Zero entries are undocumented
// opcodes.
var defs = [256]opdef{
	0x00: {BRK, Imp},
	0x01: {ORA, Izx},
	0x05: {ORA, Zpg},
	0x06: {ASL, Zpg},
	0x08: {PHP, Imp},
	0x09: {ORA, Imm},
	0x0A: {ASL, Acc},
	0x0D: {ORA, Abs},
	0x0E: {ASL, Abs},
	0x10: {BPL, Rel},
	0x11: {ORA, Izy},
	0x15: {ORA, Zpx},
	0x16: {ASL, Zpx},
	0x18: {CLC, Imp},
	0x19: {ORA, Aby},
	0x1D: {ORA, Abx},
	0x1E: {ASL, Abx},
	0x20: {JSR, Abs},
	0x21: {AND, Izx},
	0x24: {BIT, Zpg},
	0x25: {AND, Zpg},
	0x26: {ROL, Zpg},
	0x28: {PLP, Imp},
	0x29: {AND, Imm},
	0x2A: {ROL, Acc},
	0x2C: {BIT, Abs},
	0x2D: {AND, Abs},
	0x2E: {ROL, Abs},
	0x30: {BMI, Rel},
	0x31: {AND, Izy},
	0x35: {AND, Zpx},
	0x36: {ROL, Zpx},
	0x38: {SEC, Imp},
	0x39: {AND, Aby},
	0x3D: {AND, Abx},
	0x3E: {ROL, Abx},
	0x40: {RTI, Imp},
	0x41: {EOR, Izx},
	0x45: {EOR, Zpg},
	0x46: {LSR, Zpg},
	0x48: {PHA, Imp},
	0x49: {EOR, Imm},
	0x4A: {LSR, Acc},
	0x4C: {JMP, Abs},
	0x4D: {EOR, Abs},
	0x4E: {LSR, Abs},
	0x50: {BVC, Rel},
	0x51: {EOR, Izy},
	0x55: {EOR, Zpx},
	0x56: {LSR, Zpx},
	0x58: {CLI, Imp},
	0x59: {EOR, Aby},
	0x5D: {EOR, Abx},
	0x5E: {LSR, Abx},
	0x60: {RTS, Imp},
	0x61: {ADC, Izx},
	0x65: {ADC, Zpg},
	0x66: {ROR, Zpg},
	0x68: {PLA, Imp},
	0x69: {ADC, Imm},
	0x6A: {ROR, Acc},
	0x6C: {JMP, Ind},
	0x6D: {ADC, Abs},
	0x6E: {ROR, Abs},
	0x70: {BVS, Rel},
	0x71: {ADC, Izy},
	0x75: {ADC, Zpx},
	0x76: {ROR, Zpx},
	0x78: {SEI, Imp},
	0x79: {ADC, Aby},
	0x7D: {ADC, Abx},
	0x7E: {ROR, Abx},
	0x81: {STA, Izx},
	0x84: {STY, Zpg},
	0x85: {STA, Zpg},
	0x86: {STX, Zpg},
	0x88: {DEY, Imp},
	0x8A: {TXA, Imp},
	0x8C: {STY, Abs},
	0x8D: {STA, Abs},
	0x8E: {STX, Abs},
	0x90: {BCC, Rel},
	0x91: {STA, Izy},
	0x94: {STY, Zpx},
	0x95: {STA, Zpx},
	0x96: {STX, Zpy},
	0x98: {TYA, Imp},
	0x99: {STA, Aby},
	0x9A: {TXS, Imp},
	0x9D: {STA, Abx},
	0xA0: {LDY, Imm},
	0xA1: {LDA, Izx},
	0xA2: {LDX, Imm},
	0xA4: {LDY, Zpg},
	0xA5: {LDA, Zpg},
	0xA6: {LDX, Zpg},
	0xA8: {TAY, Imp},
	0xA9: {LDA, Imm},
	0xAA: {TAX, Imp},
	0xAC: {LDY, Abs},
	0xAD: {LDA, Abs},
	0xAE: {LDX, Abs},
	0xB0: {BCS, Rel},
	0xB1: {LDA, Izy},
	0xB4: {LDY, Zpx},
	0xB5: {LDA, Zpx},
	0xB6: {LDX, Zpy},
	0xB8: {CLV, Imp},
	0xB9: {LDA, Aby},
	0xBA: {TSX, Imp},
	0xBC: {LDY, Abx},
	0xBD: {LDA, Abx},
	0xBE: {LDX, Aby},
	0xC0: {CPY, Imm},
	0xC1: {CMP, Izx},
	0xC4: {CPY, Zpg},
	0xC5: {CMP, Zpg},
	0xC6: {DEC, Zpg},
	0xC8: {INY, Imp},
	0xC9: {CMP, Imm},
	0xCA: {DEX, Imp},
	0xCC: {CPY, Abs},
	0xCD: {CMP, Abs},
	0xCE: {DEC, Abs},
	0xD0: {BNE, Rel},
	0xD1: {CMP, Izy},
	0xD5: {CMP, Zpx},
	0xD6: {DEC, Zpx},
	0xD8: {CLD, Imp},
	0xD9: {CMP, Aby},
	0xDD: {CMP, Abx},
	0xDE: {DEC, Abx},
	0xE0: {CPX, Imm},
	0xE1: {SBC, Izx},
	0xE4: {CPX, Zpg},
	0xE5: {SBC, Zpg},
	0xE6: {INC, Zpg},
	0xE8: {INX, Imp},
	0xE9: {SBC, Imm},
	0xEA: {NOP, Imp},
	0xEC: {CPX, Abs},
	0xED: {SBC, Abs},
	0xEE: {INC, Abs},
	0xF0: {BEQ, Rel},
	0xF1: {SBC, Izy},
	0xF5: {SBC, Zpx},
	0xF6: {INC, Zpx},
	0xF8: {SED, Imp},
	0xF9: {SBC, Aby},
	0xFD: {SBC, Abx},
	0xFE: {INC, Abx},
}
