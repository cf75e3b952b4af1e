package hw

import (
	"strings"
	"testing"
)

func TestDisasm(t *testing.T) {
	m := loadMachineWith(t, `
0200: 69 05
0300: 6d 00 10
0400: ea 02
0500: d0 fc
0600: 6c fe ff
fffe: 0a b1`)

	tests := []struct {
		pc   Address
		want string
	}{
		{0x0200, "0200  69 05     ADC #$05"},
		{0x0300, "0300  6D 00 10  ADC $1000"},
		{0x0400, "0400  EA        NOP"},
		{0x0401, "0401  02        ???"},
		{0x0500, "0500  D0 FC     BNE $04FE"},
		{0x0600, "0600  6C FE FF  JMP ($FFFE)"},
		{0xFFFE, "FFFE  0A        ASL A"},
		{0xFFFF, "FFFF  B1 00     LDA ($00),Y"},
	}

	for _, tt := range tests {
		before := *m
		if got := m.Disasm(tt.pc).String(); got != tt.want {
			t.Errorf("Disasm(%s) = %q, want %q", tt.pc, got, tt.want)
		}
		if before != *m {
			t.Errorf("Disasm(%s) modified the machine", tt.pc)
		}
	}
}

func TestDisasmBytesWidth(t *testing.T) {
	m := loadMachineWith(t, `0000: ea`)
	if got := len(m.Disasm(0).Bytes()); got != 32 {
		t.Errorf("len(Bytes()) = %d, want 32", got)
	}
}

func TestDisassemble(t *testing.T) {
	m := loadMachineWith(t, `0200: 69 05 6d 00 10 ea ff`)

	var sb strings.Builder
	next, err := m.Disassemble(&sb, 0x0200, 4)
	if err != nil {
		t.Fatal(err)
	}

	want := `0200  69 05     ADC #$05
0202  6D 00 10  ADC $1000
0205  EA        NOP
0206  FF        ???
`
	if sb.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", sb.String(), want)
	}
	if next != 0x0207 {
		t.Errorf("next = %s, want $0207", next)
	}
}
