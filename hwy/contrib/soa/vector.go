// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

import "github.com/ajroetker/go-simdize/hwy"

// Vector is a Proxy whose element type is a primitive number, so its lanes
// map onto one hardware vector. Reads are explicit (Load, or arithmetic that
// loads); writes return nothing and cannot be chained.
type Vector[T hwy.Lanes] struct {
	loc Location[T]
}

// Numeric converts a proxy of a numeric leaf into a Vector.
func Numeric[T hwy.Lanes](p Proxy[T]) Vector[T] {
	return Vector[T]{loc: p.loc}
}

// Lanes returns the number of lanes N.
func (v Vector[T]) Lanes() int { return v.loc.lanes }

// Proxy returns v as a plain proxy.
func (v Vector[T]) Proxy() Proxy[T] { return Proxy[T]{loc: v.loc} }

// Load materializes the addressed lanes.
func (v Vector[T]) Load() hwy.Vec[T] {
	return loadLeaf(v.loc)
}

// Store writes x to the addressed lanes.
func (v Vector[T]) Store(x hwy.Vec[T]) {
	storeLeaf(v.loc, x)
}

// StoreMasked writes the lanes of x selected by mask.
func (v Vector[T]) StoreMasked(mask hwy.Mask[T], x hwy.Vec[T]) {
	storeLeafMasked(v.loc, x, mask.Bits())
}

// Fill writes x to every addressed lane.
func (v Vector[T]) Fill(x T) {
	storeLeaf(v.loc, hwy.SetN(x, v.loc.lanes))
}

// AddAssign adds x to the addressed lanes in place.
func (v Vector[T]) AddAssign(x hwy.Vec[T]) { v.Store(v.Add(x)) }

// SubAssign subtracts x from the addressed lanes in place.
func (v Vector[T]) SubAssign(x hwy.Vec[T]) { v.Store(v.Sub(x)) }

// MulAssign multiplies the addressed lanes by x in place.
func (v Vector[T]) MulAssign(x hwy.Vec[T]) { v.Store(v.Mul(x)) }

// DivAssign divides the addressed lanes by x in place.
func (v Vector[T]) DivAssign(x hwy.Vec[T]) { v.Store(v.Div(x)) }

// Add returns the addressed lanes plus x.
func (v Vector[T]) Add(x hwy.Vec[T]) hwy.Vec[T] { return hwy.Add(v.Load(), x) }

// Sub returns the addressed lanes minus x.
func (v Vector[T]) Sub(x hwy.Vec[T]) hwy.Vec[T] { return hwy.Sub(v.Load(), x) }

// Mul returns the addressed lanes times x.
func (v Vector[T]) Mul(x hwy.Vec[T]) hwy.Vec[T] { return hwy.Mul(v.Load(), x) }

// Div returns the addressed lanes divided by x.
func (v Vector[T]) Div(x hwy.Vec[T]) hwy.Vec[T] { return hwy.Div(v.Load(), x) }
