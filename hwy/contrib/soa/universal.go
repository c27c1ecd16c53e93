// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

import "github.com/ajroetker/go-simdize/hwy"

// Lanewise is the per-lane read interface shared by hwy.Vec, UniversalVec and
// Single, so accessor code can be written once for all three.
type Lanewise[T any] interface {
	NumLanes() int
	Lane(i int) T
}

// UniversalVec is a slice-backed stand-in for a vector register, for element
// types that cannot live in one (strings, pointers, records). It offers the
// same lane count, generator construction and lane indexing as hwy.Vec.
type UniversalVec[T any] struct {
	data []T
}

// GenerateUniversal creates an n-lane UniversalVec whose lane i holds gen(i).
// It has the same shape as hwy.Generate.
func GenerateUniversal[T any](n int, gen func(lane int) T) UniversalVec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = gen(i)
	}
	return UniversalVec[T]{data: data}
}

// NumLanes returns the number of lanes.
func (u UniversalVec[T]) NumLanes() int { return len(u.data) }

// Lane returns the value held in lane i.
func (u UniversalVec[T]) Lane(i int) T { return u.data[i] }

// SetLane replaces lane i.
func (u *UniversalVec[T]) SetLane(i int, v T) { u.data[i] = v }

// Data returns the lanes. The slice aliases u.
func (u UniversalVec[T]) Data() []T { return u.data }

// Single presents one scalar as a one-lane Lanewise, so an accessor applied
// through UniversalAccess runs exactly once.
type Single[T any] struct {
	V T
}

// NumLanes returns 1.
func (Single[T]) NumLanes() int { return 1 }

// Lane returns the scalar.
func (s Single[T]) Lane(int) T { return s.V }

// UniversalAccess applies fn to every lane of x and collects the results.
// For a Single input fn runs once.
//
//	names := soa.UniversalAccess(people, func(p Person) string { return p.Name })
func UniversalAccess[T, F any](x Lanewise[T], fn func(T) F) UniversalVec[F] {
	return GenerateUniversal(x.NumLanes(), func(lane int) F {
		return fn(x.Lane(lane))
	})
}

// AccessVec is UniversalAccess for accessors with a numeric result, which
// is reassembled into a hardware vector.
func AccessVec[T any, F hwy.Lanes](x Lanewise[T], fn func(T) F) hwy.Vec[F] {
	return hwy.Generate(x.NumLanes(), func(lane int) F {
		return fn(x.Lane(lane))
	})
}

// AccessRecord is UniversalAccess for accessors returning a record, which is
// reassembled lane by lane into its vectorized shape V.
func AccessRecord[V, T, F any, PV ShapedPtr[F, V]](x Lanewise[T], fn func(T) F) V {
	var v V
	n := x.NumLanes()
	PV(&v).Shape(n)
	for lane := range n {
		InsertRecord[F](PV(&v), lane, fn(x.Lane(lane)))
	}
	return v
}
