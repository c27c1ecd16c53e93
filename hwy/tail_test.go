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

import "testing"

func TestAlignedSizeN(t *testing.T) {
	tests := []struct {
		size, lanes, want int
	}{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{103, 4, 104},
		{7, 1, 7},
		{5, 0, 5},
	}
	for _, tt := range tests {
		if got := AlignedSizeN(tt.size, tt.lanes); got != tt.want {
			t.Errorf("AlignedSizeN(%d, %d) = %d, want %d", tt.size, tt.lanes, got, tt.want)
		}
	}
}

func TestAlignedSize(t *testing.T) {
	n := MaxLanes[float32]()
	if got := AlignedSize[float32](n + 1); got != 2*n {
		t.Errorf("AlignedSize(%d) = %d, want %d", n+1, got, 2*n)
	}
	if !IsAligned[float32](3 * n) {
		t.Errorf("IsAligned(%d) = false", 3*n)
	}
	if n > 1 && IsAligned[float32](n+1) {
		t.Errorf("IsAligned(%d) = true", n+1)
	}
}
