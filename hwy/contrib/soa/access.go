// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

import "github.com/ajroetker/go-simdize/hwy"

// Access is the direct-access constructor: it addresses the elements of base
// selected by idx. A Scalar or Contiguous index produces a linear location,
// an Indexed index an indexed one, and any other Index a location with one
// pointer per lane.
//
// Lanes of a Contiguous index may reach past len(base) up to cap(base), for
// loops run with a vector residual over padded slices.
func Access[T any](base []T, idx Index) Proxy[T] {
	switch x := idx.(type) {
	case Scalar:
		return Proxy[T]{loc: LinearAt(base, int(x), 1)}
	case Contiguous:
		return Proxy[T]{loc: LinearAt(base, x.start, x.lanes)}
	case Indexed:
		return Proxy[T]{loc: IndexedAt(base, x)}
	default:
		ptrs := make([]*T, idx.Size())
		ForEachLane(idx, func(lane, i int) {
			ptrs[lane] = &base[:cap(base)][i]
		})
		return Proxy[T]{loc: RandomAt(ptrs)}
	}
}

// AccessNumeric is Numeric(Access(base, idx)).
func AccessNumeric[T hwy.Lanes](base []T, idx Index) Vector[T] {
	return Numeric(Access(base, idx))
}

// Ptr returns a plain reference to base[i], the scalar form of Access.
func Ptr[T any](base []T, i int) *T {
	return &base[i]
}
