// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-simdize/hwy"
)

// reversed is an Index type unknown to Access; it addresses end-1, end-2, ...
type reversed struct {
	end, lanes int
}

func (r reversed) Size() int                { return r.lanes }
func (r reversed) ScalarIndex(lane int) int { return r.end - 1 - lane }

func TestVectorRoundTrip(t *testing.T) {
	data := make([]float32, 17)
	for i := range data {
		data[i] = float32(i) * 1.5
	}
	want := slices.Clone(data)

	tests := []struct {
		name string
		idx  Index
	}{
		{"scalar", Scalar(5)},
		{"contiguous_head", NewContiguous(0, 4)},
		{"contiguous_tail", NewContiguous(13, 4)},
		{"indexed", NewIndexed(7, 2, 9, 0)},
		{"random", reversed{end: 17, lanes: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := AccessNumeric(data, tt.idx)
			v.Store(v.Load())
			if diff := cmp.Diff(want, data); diff != "" {
				t.Errorf("store(load) changed data (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVectorLoadOrder(t *testing.T) {
	data := []int32{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}

	tests := []struct {
		name string
		idx  Index
		want []int32
	}{
		{"contiguous", NewContiguous(3, 4), []int32{13, 14, 15, 16}},
		{"indexed", NewIndexed(7, 2, 9, 0), []int32{17, 12, 19, 10}},
		{"random", reversed{end: 10, lanes: 3}, []int32{19, 18, 17}},
		{"scalar", Scalar(4), []int32{14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AccessNumeric(data, tt.idx).Load().Data()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load() (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPitchedField(t *testing.T) {
	recs := make([]rec16, 8)
	for i := range recs {
		recs[i] = rec16{A: float64(i), B: float64(100 + i)}
	}

	p := Access(recs, NewContiguous(2, 4))
	b := Numeric(Field(p, func(r *rec16) *float64 { return &r.B }))
	if got := b.Proxy().Location().Stride(); got != 16 {
		t.Fatalf("Stride() = %d, want 16", got)
	}

	if diff := cmp.Diff([]float64{102, 103, 104, 105}, b.Load().Data()); diff != "" {
		t.Errorf("B lanes (-want +got):\n%s", diff)
	}

	b.Fill(-1)
	for i, r := range recs {
		if r.A != float64(i) {
			t.Errorf("recs[%d].A = %v, want %v", i, r.A, float64(i))
		}
		wantB := float64(100 + i)
		if i >= 2 && i < 6 {
			wantB = -1
		}
		if r.B != wantB {
			t.Errorf("recs[%d].B = %v, want %v", i, r.B, wantB)
		}
	}
}

func TestIndexVectorMatchesGatherIndex(t *testing.T) {
	src := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	iv := hwy.IndicesStride[int32](4, 8, -2)

	got := AccessNumeric(src, IndexedFromVec(iv)).Load()
	want := hwy.GatherIndex(src, iv)
	if diff := cmp.Diff(want.Data(), got.Data()); diff != "" {
		t.Errorf("proxy gather differs from GatherIndex (-want +got):\n%s", diff)
	}

	dst := make([]float32, len(src))
	AccessNumeric(dst, IndexedFromVec(iv)).Store(got)
	ref := make([]float32, len(src))
	hwy.ScatterIndex(want, ref, iv)
	if diff := cmp.Diff(ref, dst); diff != "" {
		t.Errorf("proxy scatter differs from ScatterIndex (-want +got):\n%s", diff)
	}
}

func TestPitchedGather(t *testing.T) {
	recs := make([]rec16, 10)
	for i := range recs {
		recs[i] = rec16{A: float64(i), B: float64(-i)}
	}

	a := Numeric(Field(Access(recs, NewIndexed(9, 1, 4, 4)), func(r *rec16) *float64 { return &r.A }))
	if diff := cmp.Diff([]float64{9, 1, 4, 4}, a.Load().Data()); diff != "" {
		t.Errorf("gathered A (-want +got):\n%s", diff)
	}

	a.Store(hwy.LoadN([]float64{90, 10, 40, 41}, 4))
	if recs[9].A != 90 || recs[1].A != 10 {
		t.Errorf("scatter wrote A = %v, %v", recs[9].A, recs[1].A)
	}
	if recs[4].A != 41 {
		t.Errorf("repeated index kept %v, want last lane 41", recs[4].A)
	}
	if recs[4].B != -4 {
		t.Errorf("scatter touched B: %v", recs[4].B)
	}
}

func TestVectorArithmetic(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	v := AccessNumeric(data, NewContiguous(1, 4))
	two := hwy.SetN(2.0, 4)

	if diff := cmp.Diff([]float64{4, 5, 6, 7}, v.Add(two).Data()); diff != "" {
		t.Errorf("Add (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0, 1, 2, 3}, v.Sub(two).Data()); diff != "" {
		t.Errorf("Sub (-want +got):\n%s", diff)
	}

	v.MulAssign(two)
	v.AddAssign(two)
	v.SubAssign(hwy.SetN(1.0, 4))
	v.DivAssign(hwy.SetN(0.5, 4))

	want := []float64{1, 10, 14, 18, 22, 6}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("compound assignment (-want +got):\n%s", diff)
	}
}

func TestWhere(t *testing.T) {
	data := []float32{-1, 2, -3, 4, -5}
	v := AccessNumeric(data, NewContiguous(0, 4))
	x := v.Load()

	Where(hwy.LessThan(x, hwy.ZeroN[float32](4)), v).Store(hwy.Neg(x))
	if diff := cmp.Diff([]float32{1, 2, 3, 4, -5}, data); diff != "" {
		t.Errorf("Where.Store (-want +got):\n%s", diff)
	}

	mask := hwy.MaskOf[int64](false, true, false, true)
	Where(mask, v).AddAssign(hwy.SetN[float32](10, 4))
	if diff := cmp.Diff([]float32{1, 12, 3, 14, -5}, data); diff != "" {
		t.Errorf("Where.AddAssign with rebound mask (-want +got):\n%s", diff)
	}

	v.StoreMasked(hwy.MaskOf[float32](true, false, false, false), hwy.ZeroN[float32](4))
	if data[0] != 0 || data[1] != 12 {
		t.Errorf("StoreMasked wrote %v", data)
	}
}

func TestStoreDoesNotOverrun(t *testing.T) {
	data := []int16{1, 2, 3, 4, 5, 6}
	AccessNumeric(data, NewContiguous(0, 2)).Store(hwy.SetN[int16](9, 6))
	if diff := cmp.Diff([]int16{9, 9, 3, 4, 5, 6}, data); diff != "" {
		t.Errorf("wide store (-want +got):\n%s", diff)
	}
}

// advance is written once and used with both scalar and vector indices.
func advance(ps []rec16, idx Index, dt float64) {
	p := Access(ps, idx)
	a := Numeric(Field(p, func(r *rec16) *float64 { return &r.A }))
	b := Numeric(Field(p, func(r *rec16) *float64 { return &r.B }))
	a.AddAssign(hwy.Mul(b.Load(), hwy.SetN(dt, idx.Size())))
}

func TestBodyPolymorphism(t *testing.T) {
	ps := make([]rec16, 7)
	for i := range ps {
		ps[i] = rec16{A: float64(i), B: 1}
	}

	advance(ps, NewContiguous(0, 4), 0.5)
	advance(ps, NewIndexed(4, 5), 0.5)
	advance(ps, Scalar(6), 0.5)

	for i, p := range ps {
		if want := float64(i) + 0.5; p.A != want {
			t.Errorf("ps[%d].A = %v, want %v", i, p.A, want)
		}
	}
}

func TestUniversalProxy(t *testing.T) {
	names := []string{"a", "b", "c", "d"}
	p := Access(names, NewIndexed(3, 0))

	u := Universal(p)
	if diff := cmp.Diff([]string{"d", "a"}, u.Data()); diff != "" {
		t.Errorf("Universal (-want +got):\n%s", diff)
	}

	u.SetLane(1, "z")
	StoreUniversal(p, u)
	if diff := cmp.Diff([]string{"z", "b", "c", "d"}, names); diff != "" {
		t.Errorf("StoreUniversal (-want +got):\n%s", diff)
	}
}

func TestPtr(t *testing.T) {
	data := []int{1, 2, 3}
	*Ptr(data, 1) = 20
	if data[1] != 20 {
		t.Errorf("Ptr did not reference data: %v", data)
	}
}
