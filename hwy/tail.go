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

// AlignedSize rounds size up to a multiple of MaxLanes[T](), the length a
// buffer needs so a loop can finish with a full vector step instead of a
// scalar tail.
func AlignedSize[T Lanes](size int) int {
	return AlignedSizeN(size, MaxLanes[T]())
}

// AlignedSizeN rounds size up to a multiple of lanes.
func AlignedSizeN(size, lanes int) int {
	if lanes <= 0 {
		return size
	}
	return (size + lanes - 1) / lanes * lanes
}

// IsAligned reports whether size is a multiple of MaxLanes[T]().
func IsAligned[T Lanes](size int) bool {
	maxLanes := MaxLanes[T]()
	if maxLanes == 0 {
		return true
	}
	return size%maxLanes == 0
}
