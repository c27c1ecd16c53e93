// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

import "github.com/ajroetker/go-simdize/hwy"

// loadLeaf reads the lanes of a primitive leaf. Lane i of the result always
// comes from lane i of the location.
func loadLeaf[T hwy.Lanes](l Location[T]) hwy.Vec[T] {
	switch l.kind {
	case LinearKind:
		if l.lanes == 0 {
			return hwy.ZeroN[T](0)
		}
		return hwy.LoadStrided[T](l.base, l.stride, l.lanes)
	case IndexedKind:
		return hwy.GatherStrided[T](l.base, l.stride, l.indices)
	default:
		return hwy.GatherPtrs[T](l.ptrs)
	}
}

// storeLeaf writes the lanes of v to a primitive leaf.
func storeLeaf[T hwy.Lanes](l Location[T], v hwy.Vec[T]) {
	switch l.kind {
	case LinearKind:
		if l.lanes == 0 {
			return
		}
		hwy.StoreStrided(truncate(v, l.lanes), l.base, l.stride)
	case IndexedKind:
		hwy.ScatterStrided(v, l.base, l.stride, l.indices)
	default:
		hwy.ScatterPtrs(v, l.ptrs)
	}
}

// storeLeafMasked writes only the lanes of v selected by mask.
func storeLeafMasked[T hwy.Lanes](l Location[T], v hwy.Vec[T], mask []bool) {
	switch l.kind {
	case LinearKind:
		if l.lanes == 0 {
			return
		}
		hwy.StoreStridedMasked(truncate(v, l.lanes), mask, l.base, l.stride)
	case IndexedKind:
		hwy.ScatterStridedMasked(v, mask, l.base, l.stride, l.indices)
	default:
		hwy.ScatterPtrsMasked(v, mask, l.ptrs)
	}
}

// truncate limits v to the location's lanes so a wider vector never writes
// past the addressed range.
func truncate[T hwy.Lanes](v hwy.Vec[T], lanes int) hwy.Vec[T] {
	if v.NumLanes() <= lanes {
		return v
	}
	return hwy.LoadN(v.Data(), lanes)
}

// loadAny reads the lanes of a leaf that has no vector form.
func loadAny[T any](l Location[T]) UniversalVec[T] {
	data := make([]T, l.lanes)
	for lane := range data {
		data[lane] = *l.Ptr(lane)
	}
	return UniversalVec[T]{data: data}
}

func storeAny[T any](l Location[T], u UniversalVec[T], mask []bool) {
	n := min(l.lanes, len(u.data))
	for lane := range n {
		if mask != nil && (lane >= len(mask) || !mask[lane]) {
			continue
		}
		*l.Ptr(lane) = u.data[lane]
	}
}
