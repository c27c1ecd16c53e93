package hwy

import (
	"testing"
)

func TestFirstNOf(t *testing.T) {
	tests := []struct {
		n, lanes int
		want     int
	}{
		{0, 4, 0},
		{3, 4, 3},
		{4, 4, 4},
		{9, 4, 4},
		{-2, 4, 0},
	}
	for _, tt := range tests {
		m := FirstNOf[float64](tt.n, tt.lanes)
		if m.NumLanes() != tt.lanes {
			t.Errorf("FirstNOf(%d, %d): got %d lanes", tt.n, tt.lanes, m.NumLanes())
		}
		if m.CountTrue() != tt.want {
			t.Errorf("FirstNOf(%d, %d): got %d active, want %d", tt.n, tt.lanes, m.CountTrue(), tt.want)
		}
		for i := range tt.want {
			if !m.GetBit(i) {
				t.Errorf("FirstNOf(%d, %d): lane %d inactive", tt.n, tt.lanes, i)
			}
		}
	}
}

func TestMaskBitsRoundTrip(t *testing.T) {
	m := MaskFromBits[int32](0b1010_0110, 8)
	if got := BitsFromMask(m); got != 0b1010_0110 {
		t.Errorf("BitsFromMask: got %b", got)
	}
	if FindFirstTrue(m) != 1 {
		t.Errorf("FindFirstTrue: got %d, want 1", FindFirstTrue(m))
	}
}

func TestRebindMask(t *testing.T) {
	m := LessThan(IotaN[int32](4), SetN[int32](2, 4))
	f := RebindMask[float64](m)
	want := []bool{true, true, false, false}
	for i, w := range want {
		if f.GetBit(i) != w {
			t.Errorf("lane %d: got %v, want %v", i, f.GetBit(i), w)
		}
	}
}

func TestMaskAlgebra(t *testing.T) {
	a := MaskOf[uint8](true, true, false, false)
	b := MaskOf[uint8](true, false, true, false)

	check := func(name string, m Mask[uint8], want ...bool) {
		t.Helper()
		for i, w := range want {
			if m.GetBit(i) != w {
				t.Errorf("%s lane %d: got %v, want %v", name, i, m.GetBit(i), w)
			}
		}
	}
	check("and", MaskAnd(a, b), true, false, false, false)
	check("or", MaskOr(a, b), true, true, true, false)
	check("not", MaskNot(a), false, false, true, true)

	bits := a.Bits()
	bits[0] = false
	if !a.GetBit(0) {
		t.Error("Bits returned a view instead of a copy")
	}
}
