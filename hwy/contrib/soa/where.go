// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

import "github.com/ajroetker/go-simdize/hwy"

// Masked is a write handle that only touches the lanes selected by a mask.
type Masked[T hwy.Lanes] struct {
	dst  Vector[T]
	mask []bool
}

// Where restricts writes through v to the lanes where mask is set. The mask
// element type need not match T; only the lane count matters.
//
//	soa.Where(hwy.LessThan(x, zero), vx).Store(hwy.Neg(x))
func Where[T, M hwy.Lanes](mask hwy.Mask[M], v Vector[T]) Masked[T] {
	return Masked[T]{dst: v, mask: mask.Bits()}
}

// Store writes the selected lanes of x.
func (w Masked[T]) Store(x hwy.Vec[T]) {
	storeLeafMasked(w.dst.loc, x, w.mask)
}

// AddAssign adds x to the selected lanes in place.
func (w Masked[T]) AddAssign(x hwy.Vec[T]) { w.Store(w.dst.Add(x)) }

// SubAssign subtracts x from the selected lanes in place.
func (w Masked[T]) SubAssign(x hwy.Vec[T]) { w.Store(w.dst.Sub(x)) }

// MulAssign multiplies the selected lanes by x in place.
func (w Masked[T]) MulAssign(x hwy.Vec[T]) { w.Store(w.dst.Mul(x)) }

// DivAssign divides the selected lanes by x in place. Unselected lanes are
// still divided but the result is discarded, so x must be safe to divide by
// in every lane.
func (w Masked[T]) DivAssign(x hwy.Vec[T]) { w.Store(w.dst.Div(x)) }

// MaskedRecord is a write handle for records that only touches the lanes
// selected by a mask, in every leaf.
type MaskedRecord[T any] struct {
	dst  Proxy[T]
	mask []bool
}

// WhereRecord restricts record writes through p to the lanes where mask is
// set.
func WhereRecord[T any, M hwy.Lanes](mask hwy.Mask[M], p Proxy[T]) MaskedRecord[T] {
	return MaskedRecord[T]{dst: p, mask: mask.Bits()}
}

// Store writes the selected lanes of every leaf of v.
func (w MaskedRecord[T]) Store(v Shaped[T]) {
	v.VisitMembers(&Members[T]{
		op:    opStoreMasked,
		lanes: w.dst.loc.lanes,
		loc:   w.dst.loc,
		mask:  w.mask,
	})
}
