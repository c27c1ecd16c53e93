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

import "unsafe"

// This file provides pitched (byte-strided) loads and stores, and gathers
// and scatters through explicit lane pointers. They are the building blocks
// for reading one field out of an array of records: the stride is the size
// of the record, not of the field.
//
// The caller guarantees that every addressed lane is valid memory holding a
// T; no bounds are checked.

// LoadStrided loads n lanes where lane i is read from base + i*stride bytes.
// If stride equals the size of T this is a contiguous load.
func LoadStrided[T Lanes](base unsafe.Pointer, stride uintptr, n int) Vec[T] {
	var dummy T
	if stride == unsafe.Sizeof(dummy) {
		return LoadN(unsafe.Slice((*T)(base), n), n)
	}
	result := make([]T, n)
	for i := range n {
		result[i] = *(*T)(unsafe.Add(base, uintptr(i)*stride))
	}
	return Vec[T]{data: result}
}

// StoreStrided writes lane i of v to base + i*stride bytes.
func StoreStrided[T Lanes](v Vec[T], base unsafe.Pointer, stride uintptr) {
	var dummy T
	if stride == unsafe.Sizeof(dummy) {
		Store(v, unsafe.Slice((*T)(base), len(v.data)))
		return
	}
	for i, x := range v.data {
		*(*T)(unsafe.Add(base, uintptr(i)*stride)) = x
	}
}

// StoreStridedMasked writes lane i of v to base + i*stride bytes only where
// the mask is set. Other lanes of memory are left untouched.
func StoreStridedMasked[T Lanes](v Vec[T], mask []bool, base unsafe.Pointer, stride uintptr) {
	n := min(len(v.data), len(mask))
	for i := range n {
		if mask[i] {
			*(*T)(unsafe.Add(base, uintptr(i)*stride)) = v.data[i]
		}
	}
}

// GatherStrided loads lane i from base + indices[i]*stride bytes.
// The result has len(indices) lanes, in index order.
func GatherStrided[T Lanes](base unsafe.Pointer, stride uintptr, indices []int) Vec[T] {
	result := make([]T, len(indices))
	for i, idx := range indices {
		result[i] = *(*T)(unsafe.Add(base, idx*int(stride)))
	}
	return Vec[T]{data: result}
}

// ScatterStrided stores lane i of v to base + indices[i]*stride bytes.
// Lanes are written in order, so a repeated index keeps the last lane.
func ScatterStrided[T Lanes](v Vec[T], base unsafe.Pointer, stride uintptr, indices []int) {
	n := min(len(v.data), len(indices))
	for i := range n {
		*(*T)(unsafe.Add(base, indices[i]*int(stride))) = v.data[i]
	}
}

// ScatterStridedMasked is ScatterStrided restricted to lanes where mask is set.
func ScatterStridedMasked[T Lanes](v Vec[T], mask []bool, base unsafe.Pointer, stride uintptr, indices []int) {
	n := min(len(v.data), min(len(indices), len(mask)))
	for i := range n {
		if mask[i] {
			*(*T)(unsafe.Add(base, indices[i]*int(stride))) = v.data[i]
		}
	}
}

// GatherPtrs loads lane i from ptrs[i].
func GatherPtrs[T Lanes](ptrs []unsafe.Pointer) Vec[T] {
	result := make([]T, len(ptrs))
	for i, p := range ptrs {
		result[i] = *(*T)(p)
	}
	return Vec[T]{data: result}
}

// ScatterPtrs stores lane i of v to ptrs[i].
func ScatterPtrs[T Lanes](v Vec[T], ptrs []unsafe.Pointer) {
	n := min(len(v.data), len(ptrs))
	for i := range n {
		*(*T)(ptrs[i]) = v.data[i]
	}
}

// ScatterPtrsMasked stores lane i of v to ptrs[i] where mask is set.
func ScatterPtrsMasked[T Lanes](v Vec[T], mask []bool, ptrs []unsafe.Pointer) {
	n := min(len(v.data), min(len(ptrs), len(mask)))
	for i := range n {
		if mask[i] {
			*(*T)(ptrs[i]) = v.data[i]
		}
	}
}
