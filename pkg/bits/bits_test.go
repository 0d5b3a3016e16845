package bits

import "testing"

func TestBits(t *testing.T) {
	for i := uint8(0); i < 8; i++ {
		if v := Set(0, i); v != 1<<i {
			t.Errorf("Set(0, %d): expected %08b, got %08b", i, 1<<i, v)
		}
		if v := Reset(0xFF, i); v != 0xFF^(1<<i) {
			t.Errorf("Reset(0xFF, %d): expected %08b, got %08b", i, 0xFF^(1<<i), v)
		}
		if !Test(1<<i, i) || Test(0xFF^(1<<i), i) {
			t.Errorf("Test: unexpected result for bit %d", i)
		}
	}
}

func TestAssign(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		if v := Assign(0x01, 7, true); v != 0x81 {
			t.Errorf("expected 0x81, got %#02x", v)
		}
	})
	t.Run("reset", func(t *testing.T) {
		if v := Assign(0x81, 7, false); v != 0x01 {
			t.Errorf("expected 0x01, got %#02x", v)
		}
	})
	t.Run("idempotent", func(t *testing.T) {
		if v := Assign(Assign(0x10, 4, true), 4, true); v != 0x10 {
			t.Errorf("expected 0x10, got %#02x", v)
		}
	})
}
