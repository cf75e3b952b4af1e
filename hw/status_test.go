package hw

import "testing"

func TestPflags(t *testing.T) {
	p := NewP(PFlags{})
	if p != 0 {
		t.Errorf("got P = %q, want %q", p, P(0))
	}

	p = PowerOnP()
	if p != 0x24 {
		t.Errorf("got P = %q, want %q", p, P(0x24))
	}
	if !p.U() || !p.I() {
		t.Errorf("unused and interrupt flags must be set at power-up")
	}
	if p.N() || p.V() || p.B() || p.D() || p.Z() || p.C() {
		t.Errorf("got P = %q, only u and i should be set", p)
	}

	p = NewP(PFlags{Negative: true, Carry: true})
	if p != Negative|Carry {
		t.Errorf("got P = %q, want %q", p, Negative|Carry)
	}

	all := PFlags{true, true, true, true, true, true, true, true}
	if got := NewP(all); got != 0xFF {
		t.Errorf("got P = %q, want %q", got, P(0xFF))
	}
	if got := NewP(all).Flags(); got != all {
		t.Errorf("Flags() = %+v, want %+v", got, all)
	}
}

func TestPSetWithMask(t *testing.T) {
	tests := []struct {
		p, mask, val P
		want         P
	}{
		{0x00, Carry, Carry, Carry},
		{0xFF, Carry, 0x00, 0xFE},
		// bits of val outside mask are ignored.
		{0x00, Zero, 0xFF, Zero},
		{0x24, Carry | Zero | Negative | Overflow, Zero | Carry, 0x27},
		{0xE7, Carry | Zero | Negative | Overflow, 0, 0x24},
		{0x5A, 0, 0xFF, 0x5A},
		{0x5A, 0xFF, 0xA5, 0xA5},
	}

	for _, tt := range tests {
		p := tt.p
		p.SetWithMask(tt.mask, tt.val)
		if p != tt.want {
			t.Errorf("%q.SetWithMask(%q, %q) = %q, want %q", tt.p, tt.mask, tt.val, p, tt.want)
		}
	}
}

func TestPCarryBit(t *testing.T) {
	if got := P(0xFE).CarryBit(); got != 0 {
		t.Errorf("CarryBit() = %d, want 0", got)
	}
	if got := P(Carry).CarryBit(); got != 1 {
		t.Errorf("CarryBit() = %d, want 1", got)
	}
}

func TestPString(t *testing.T) {
	p := P(0b00110100)
	if got := p.String(); got != "nvUBdIzc" {
		t.Errorf("got P = %s, want %s", got, "nvUBdIzc")
	}
	p = P(0b00000100)
	if p.String() != "nvubdIzc" {
		t.Errorf("got P = %s, want %s", p.String(), "nvubdIzc")
	}
}
