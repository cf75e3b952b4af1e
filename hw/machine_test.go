package hw

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"sixfive/hw/snapshot"
)

func TestAddWithCarry(t *testing.T) {
	type step struct {
		val        int8
		a          int8
		c, z, n, v bool
	}

	tests := []struct {
		name  string
		steps []step
	}{
		{
			name: "carry out then in",
			steps: []step{
				{val: 1, a: 1},
				{val: -1, a: 0, c: true, z: true},
				{val: 1, a: 2},
			},
		},
		{
			name: "positive overflow",
			steps: []step{
				{val: 127, a: 127},
				{val: 1, a: -128, n: true, v: true},
			},
		},
		{
			name: "cancel out",
			steps: []step{
				{val: 127, a: 127},
				{val: -127, a: 0, c: true, z: true},
			},
		},
		{
			name: "negative",
			steps: []step{
				{val: -128, a: -128, n: true},
				{val: 127, a: -1, n: true},
			},
		},
		{
			name: "carry in plus minus one",
			steps: []step{
				{val: 127, a: 127},
				{val: -126, a: 1, c: true},
				{val: -1, a: 1},
				{val: -1, a: 0, c: true, z: true},
			},
		},
		{
			name: "negative overflow",
			steps: []step{
				{val: -128, a: -128, n: true},
				{val: -1, a: 127, c: true, v: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			for i, s := range tt.steps {
				m.AddWithCarry(s.val)

				got := m.Regs.P.Flags()
				if m.Regs.A != s.a || got.Carry != s.c || got.Zero != s.z || got.Negative != s.n || got.Overflow != s.v {
					t.Fatalf("step %d: ADC %d: got A=%d C=%t Z=%t N=%t V=%t, want A=%d C=%t Z=%t N=%t V=%t",
						i, s.val, m.Regs.A, got.Carry, got.Zero, got.Negative, got.Overflow,
						s.a, s.c, s.z, s.n, s.v)
				}
			}
		})
	}
}

func TestAddWithCarryKeepsOtherFlags(t *testing.T) {
	m := NewMachine()
	m.Regs.P = Interrupt | Decimal | Break | Unused
	m.AddWithCarry(-1)

	want := Interrupt | Decimal | Break | Unused | Negative
	if m.Regs.P != want {
		t.Errorf("P = %s, want %s", m.Regs.P, want)
	}
}

func TestAddWithCarryExhaustive(t *testing.T) {
	m := NewMachine()
	for a := -128; a < 128; a++ {
		for val := -128; val < 128; val++ {
			for carry := range 2 {
				m.Regs.A = int8(a)
				m.Regs.P.SetWithMask(Carry, P(carry))

				yes, msg := hasPanicked(func() { m.AddWithCarry(int8(val)) })
				if yes {
					t.Fatalf("A=%d val=%d C=%d: panicked: %v", a, val, carry, msg)
				}

				sum := a + val + carry
				if m.Regs.A != int8(sum) {
					t.Fatalf("A=%d val=%d C=%d: got A=%d, want %d", a, val, carry, m.Regs.A, int8(sum))
				}
				if m.Regs.P.C() != (uint8(sum) < uint8(a)) {
					t.Fatalf("A=%d val=%d C=%d: got C=%t", a, val, carry, m.Regs.P.C())
				}
				if m.Regs.P.V() != (sum < -128 || sum > 127) {
					t.Fatalf("A=%d val=%d C=%d: got V=%t", a, val, carry, m.Regs.P.V())
				}
			}
		}
	}
}

func TestExecuteADC(t *testing.T) {
	t.Run("immediate", func(t *testing.T) {
		m := loadMachineWith(t, `0200: 69 01 69 ff 69 01`)
		m.Regs.PC = 0x0200

		runAndCheckState(t, m, 1, "A", int8(1), "PC", uint16(0x0202), "Pczvn", uint8(0))
		runAndCheckState(t, m, 1, "A", int8(0), "PC", uint16(0x0204), "Pcz", uint8(1), "Pvn", uint8(0))
		runAndCheckState(t, m, 1, "A", int8(2), "PC", uint16(0x0206), "Pczvn", uint8(0))
	})

	t.Run("overflow", func(t *testing.T) {
		m := loadMachineWith(t, `0200: 69 01`)
		m.Regs.PC = 0x0200
		m.Regs.A = 127

		runAndCheckState(t, m, 1, "A", int8(-128), "Pnv", uint8(1), "Pcz", uint8(0))
	})

	t.Run("absolute", func(t *testing.T) {
		m := loadMachineWith(t, `
0200: 6d 00 10 6d 00 10
1000: 81`)
		m.Regs.PC = 0x0200
		m.Regs.A = 127

		runAndCheckState(t, m, 1, "A", int8(0), "PC", uint16(0x0203), "Pcz", uint8(1), "Pnv", uint8(0))
		runAndCheckState(t, m, 1, "A", int8(-126), "PC", uint16(0x0206), "Pn", uint8(1), "Pczv", uint8(0),
			"mem", `1000: 81`)
	})
}

func TestExecuteNotImplemented(t *testing.T) {
	tests := []Instruction{
		{ADC, ZeroPage(0x10)},
		{ADC, AbsoluteX(0x1000)},
		{ADC, IndirectIndexedY(0x10)},
		{LDA, Immediate(1)},
		{BRK, Implied{}},
		{ASL, Accumulator{}},
	}

	for _, inst := range tests {
		m := NewMachine()
		before := *m

		err := m.Execute(inst)
		if !errors.Is(err, ErrNotImplemented) {
			t.Errorf("Execute(%s) error = %v, want ErrNotImplemented", inst, err)
		}
		if diff := cmp.Diff(&before, m, cmpopts.IgnoreUnexported(Machine{})); diff != "" {
			t.Errorf("Execute(%s) modified the machine (-before +after):\n%s", inst, diff)
		}
	}
}

func TestExecuteNOP(t *testing.T) {
	m := loadMachineWith(t, `0400: ea ea`)
	m.Regs = Registers{A: -3, X: 1, Y: 2, SP: 0x80, PC: 0x0400, P: 0xE7}

	runAndCheckState(t, m, 2,
		"A", int8(-3),
		"X", uint8(1),
		"Y", uint8(2),
		"SP", uint8(0x80),
		"P", uint8(0xE7),
		"PC", uint16(0x0402),
	)
	if m.Steps != 2 {
		t.Errorf("Steps = %d, want 2", m.Steps)
	}
}

func TestStepErrors(t *testing.T) {
	t.Run("illegal opcode", func(t *testing.T) {
		m := loadMachineWith(t, `0200: ea 02`)
		m.Regs.PC = 0x0200

		err := m.Run(10)
		if !errors.Is(err, ErrIllegalOpcode) {
			t.Fatalf("Run error = %v, want ErrIllegalOpcode", err)
		}
		wantMachineState(t, m, "PC", uint16(0x0202))
		if m.Steps != 1 {
			t.Errorf("Steps = %d, want 1", m.Steps)
		}
	})

	t.Run("not implemented", func(t *testing.T) {
		m := loadMachineWith(t, `0200: a9 42`)
		m.Regs.PC = 0x0200

		err := m.Step()
		if !errors.Is(err, ErrNotImplemented) {
			t.Fatalf("Step error = %v, want ErrNotImplemented", err)
		}
		if !strings.Contains(err.Error(), "LDA #$42") {
			t.Errorf("error %q should name the instruction", err)
		}
		wantMachineState(t, m, "PC", uint16(0x0202), "A", int8(0))
		if m.Steps != 0 {
			t.Errorf("Steps = %d, want 0", m.Steps)
		}
	})
}

func TestReset(t *testing.T) {
	fresh := NewMachine()

	m := loadMachineWith(t, `
0000: ff ff
0200: 69 7f
ffff: 01`)
	m.Regs.PC = 0x0200
	m.Regs.X = 9
	m.Regs.SP = 0x10
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	m.SetTraceOutput(&strings.Builder{})

	m.Reset()
	if diff := cmp.Diff(fresh, m, cmpopts.IgnoreUnexported(Machine{})); diff != "" {
		t.Errorf("Reset mismatch (-want +got):\n%s", diff)
	}

	wantMachineState(t, m,
		"A", int8(0), "X", uint8(0), "Y", uint8(0),
		"SP", uint8(0xFF), "PC", uint16(0),
		"P", uint8(Unused|Interrupt),
	)
	if got := m.Regs.SP.Address(); got != StackAddressHi {
		t.Errorf("SP address = %s, want %s", got, StackAddressHi)
	}
}

func TestSnapshotRestore(t *testing.T) {
	m := loadMachineWith(t, `
0200: 69 05
01fe: aa bb`)
	m.Regs.PC = 0x0200
	m.Regs.SP = 0xFD
	m.Regs.A = -1

	s := m.Snapshot()
	want := &snapshot.State{
		PC: 0x0200, SP: 0xFD, A: 0xFF, X: 0, Y: 0, P: 0x24,
		RAM: []snapshot.Cell{
			{Addr: 0x01FE, Val: 0xAA},
			{Addr: 0x01FF, Val: 0xBB},
			{Addr: 0x0200, Val: 0x69},
			{Addr: 0x0201, Val: 0x05},
		},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("Snapshot mismatch (-want +got):\n%s", diff)
	}

	m2 := NewMachine()
	m2.Restore(s)
	if diff := cmp.Diff(m, m2, cmpopts.IgnoreUnexported(Machine{})); diff != "" {
		t.Errorf("Restore mismatch (-want +got):\n%s", diff)
	}
}

func TestVectors(t *testing.T) {
	buf, err := os.ReadFile("testdata/adc.json")
	if err != nil {
		t.Fatal(err)
	}
	vecs, err := snapshot.DecodeVectors(buf)
	if err != nil {
		t.Fatal(err)
	}

	for _, v := range vecs {
		t.Run(v.Name, func(t *testing.T) {
			m := NewMachine()
			m.Restore(&v.Initial)
			if err := m.Step(); err != nil {
				t.Fatal(err)
			}

			want := v.Final
			want.SortRAM()
			if diff := cmp.Diff(&want, m.Snapshot(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("state mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMachineString(t *testing.T) {
	m := loadMachineWith(t, `01fe: 12 34`)
	m.Regs.SP = 0xFD
	m.Regs.A = 1

	want := "PC:$0000 A:01 X:00 Y:00 SP:FD P:24(nvUbdIzc) steps:0\n" +
		"stack: 12 34\n"
	if got := m.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
