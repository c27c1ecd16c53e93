package hwy

import (
	"testing"
)

func TestBlendedStore(t *testing.T) {
	tests := []struct {
		name string
		mask []bool
		dst  []float32
		want []float32
	}{
		{"all true mask", []bool{true, true, true, true}, []float32{10, 20, 30, 40}, []float32{1, 2, 3, 4}},
		{"all false mask", []bool{false, false, false, false}, []float32{10, 20, 30, 40}, []float32{10, 20, 30, 40}},
		{"mixed mask", []bool{true, false, true, false}, []float32{10, 20, 30, 40}, []float32{1, 20, 3, 40}},
		{"partial dst", []bool{true, true, true, true}, []float32{10, 20}, []float32{1, 2}},
		{"empty dst", []bool{true, true, true, true}, []float32{}, []float32{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Vec[float32]{data: []float32{1, 2, 3, 4}}
			BlendedStore(v, MaskOf[float32](tt.mask...), tt.dst)
			for i, got := range tt.dst {
				if got != tt.want[i] {
					t.Errorf("lane %d: got %v, want %v", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestInterleaved2RoundTrip(t *testing.T) {
	src := []int32{1, 100, 2, 200, 3, 300, 4, 400, 5}

	a, b := LoadInterleaved2(src, 4)
	wantA := []int32{1, 2, 3, 4}
	wantB := []int32{100, 200, 300, 400}
	for i := range wantA {
		if a.Lane(i) != wantA[i] || b.Lane(i) != wantB[i] {
			t.Errorf("lane %d: got (%v, %v), want (%v, %v)", i, a.Lane(i), b.Lane(i), wantA[i], wantB[i])
		}
	}

	dst := make([]int32, len(src))
	dst[8] = -1
	StoreInterleaved2(a, b, dst)
	for i := range 8 {
		if dst[i] != src[i] {
			t.Errorf("dst[%d]: got %v, want %v", i, dst[i], src[i])
		}
	}
	if dst[8] != -1 {
		t.Errorf("StoreInterleaved2 wrote past the last pair: %v", dst[8])
	}
}

func TestLoadInterleaved2Short(t *testing.T) {
	a, b := LoadInterleaved2([]float64{1}, 4)
	if a.NumLanes() != 0 || b.NumLanes() != 0 {
		t.Errorf("got %d/%d lanes, want 0", a.NumLanes(), b.NumLanes())
	}
}
