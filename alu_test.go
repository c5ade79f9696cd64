package i8080

import "testing"

func TestAddCarryFlags(t *testing.T) {
	result, cy, ac := addCarry(0x0F, 0x01, false)
	if result != 0x10 || cy || !ac {
		t.Fatalf("addCarry(0x0F,0x01,false) = %#02x,%v,%v; want 0x10,false,true", result, cy, ac)
	}
	result, cy, _ = addCarry(0xFF, 0x01, false)
	if result != 0x00 || !cy {
		t.Fatalf("addCarry(0xFF,0x01,false) = %#02x,%v; want 0x00,true", result, cy)
	}
}

func TestAnaAcQuirk(t *testing.T) {
	c := New()
	c.A = 0x0F
	c.setFlag(flagAC, false)
	c.ana(0x01) // A|operand bit3 = (0x0F) bit3 = 1
	if !c.AC() {
		t.Fatalf("ANA AC quirk: want AC=true from (A|operand) bit 3")
	}
	if c.CY() {
		t.Fatalf("ANA must clear CY")
	}
}

func TestInrDcrAuxCarry(t *testing.T) {
	c := New()
	if got := c.inr(0x0F); got != 0x10 || !c.AC() {
		t.Fatalf("INR 0x0F = %#02x AC=%v, want 0x10 true", got, c.AC())
	}
	if got := c.dcr(0x10); got != 0x0F || c.AC() {
		t.Fatalf("DCR 0x10 = %#02x AC=%v, want 0x0F false", got, c.AC())
	}
	if got := c.dcr(0x00); got != 0xFF || c.AC() {
		t.Fatalf("DCR 0x00 = %#02x AC=%v, want 0xFF false", got, c.AC())
	}
}

func TestParityEven(t *testing.T) {
	cases := []struct {
		v    uint8
		even bool
	}{
		{0x00, true},
		{0x01, false},
		{0x03, true},
		{0xFF, true},
		{0x0F, true},
		{0x07, false},
	}
	for _, tc := range cases {
		if got := parityEven(tc.v); got != tc.even {
			t.Errorf("parityEven(%#02x) = %v, want %v", tc.v, got, tc.even)
		}
	}
}

func TestRotates(t *testing.T) {
	c := New()
	c.A = 0x80
	c.rlc()
	if c.A != 0x01 || !c.CY() {
		t.Fatalf("RLC 0x80 = %#02x CY=%v, want 0x01 true", c.A, c.CY())
	}

	c = New()
	c.A = 0x01
	c.rrc()
	if c.A != 0x80 || !c.CY() {
		t.Fatalf("RRC 0x01 = %#02x CY=%v, want 0x80 true", c.A, c.CY())
	}

	c = New()
	c.A = 0x80
	c.setFlag(flagCY, false)
	c.ral()
	if c.A != 0x00 || !c.CY() {
		t.Fatalf("RAL 0x80/CY=0 = %#02x CY=%v, want 0x00 true", c.A, c.CY())
	}

	c = New()
	c.A = 0x01
	c.setFlag(flagCY, true)
	c.rar()
	if c.A != 0x80 || !c.CY() {
		t.Fatalf("RAR 0x01/CY=1 = %#02x CY=%v, want 0x80 true", c.A, c.CY())
	}
}

func TestDad(t *testing.T) {
	c := New()
	c.setHL(0xFFFF)
	c.dad(0x0001)
	if c.hl() != 0x0000 || !c.CY() {
		t.Fatalf("DAD overflow: HL=%#04x CY=%v, want 0x0000 true", c.hl(), c.CY())
	}
}

func TestConditionCodes(t *testing.T) {
	c := New()
	c.setFlag(flagZ, true)
	if !c.conditionTrue(ccZ) || c.conditionTrue(ccNZ) {
		t.Fatalf("Z flag condition decode mismatch")
	}
}
