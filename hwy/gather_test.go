// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import (
	"testing"
)

func TestGatherIndex(t *testing.T) {
	src := []float32{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

	tests := []struct {
		name    string
		indices []int32
		want    []float32
	}{
		{"sequential", []int32{0, 1, 2, 3}, []float32{10, 20, 30, 40}},
		{"reverse", []int32{3, 2, 1, 0}, []float32{40, 30, 20, 10}},
		{"scattered", []int32{0, 4, 2, 8}, []float32{10, 50, 30, 90}},
		{"out of bounds negative", []int32{-1, 0, 1, 2}, []float32{0, 10, 20, 30}},
		{"out of bounds positive", []int32{0, 1, 100, 3}, []float32{10, 20, 0, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GatherIndex(src, Vec[int32]{data: tt.indices})
			if result.NumLanes() != len(tt.want) {
				t.Fatalf("got %d lanes, want %d", result.NumLanes(), len(tt.want))
			}
			for i, want := range tt.want {
				if result.data[i] != want {
					t.Errorf("lane %d: got %v, want %v", i, result.data[i], want)
				}
			}
		})
	}
}

func TestGatherScatterRoundTrip(t *testing.T) {
	src := []float64{10, 20, 30, 40, 50, 60, 70, 80}
	indices := Vec[int64]{data: []int64{6, 0, 2, 4}}

	gathered := GatherIndex(src, indices)
	dst := make([]float64, len(src))
	ScatterIndex(gathered, dst, indices)

	want := []float64{10, 0, 30, 0, 50, 0, 70, 0}
	for i := range want {
		if dst[i] != want[i] {
			t.Errorf("dst[%d]: got %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestGatherIndexOffset(t *testing.T) {
	src := []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	indices := IndicesStride[int32](4, 0, 1)

	result := GatherIndexOffset(src, 1, indices, 3)
	want := []float32{1, 4, 7, 10}
	for i := range want {
		if result.data[i] != want[i] {
			t.Errorf("lane %d: got %v, want %v", i, result.data[i], want[i])
		}
	}
}

func TestGatherScatterMasked(t *testing.T) {
	src := []int16{5, 6, 7, 8, 9}
	indices := Vec[uint8]{data: []uint8{4, 3, 200, 0}}
	mask := MaskOf[float64](true, false, true, true)

	got := GatherIndexMasked(src, indices, mask)
	want := []int16{9, 0, 0, 5}
	for i := range want {
		if got.data[i] != want[i] {
			t.Errorf("gather lane %d: got %v, want %v", i, got.data[i], want[i])
		}
	}

	dst := make([]int16, len(src))
	ScatterIndexMasked(Vec[int16]{data: []int16{1, 2, 3, 4}}, dst, indices, mask)
	wantDst := []int16{4, 0, 0, 0, 1}
	for i := range wantDst {
		if dst[i] != wantDst[i] {
			t.Errorf("dst[%d]: got %v, want %v", i, dst[i], wantDst[i])
		}
	}
}

func TestScatterIndexRepeated(t *testing.T) {
	dst := make([]int32, 3)
	ScatterIndex(Vec[int32]{data: []int32{1, 2, 3}}, dst, Vec[int]{data: []int{1, 1, 1}})
	if dst[1] != 3 {
		t.Errorf("dst[1] = %d, want the last lane 3", dst[1])
	}
}

func BenchmarkGatherIndex(b *testing.B) {
	src := make([]float32, 1024)
	for i := range src {
		src[i] = float32(i)
	}
	indices := IndicesStride[int32](8, 0, 64)

	for b.Loop() {
		_ = GatherIndex(src, indices)
	}
}
