// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

import (
	"fmt"

	"github.com/ajroetker/go-simdize/hwy"
)

// Leaf visits a primitive numeric field: dst is its vector in V and sel
// selects the field in T.
func Leaf[T any, F hwy.Lanes](m *Members[T], dst *hwy.Vec[F], sel func(*T) *F) {
	switch m.op {
	case opShape:
		*dst = hwy.ZeroN[F](m.lanes)
	case opLoad:
		*dst = loadLeaf(Member(m.loc, sel))
	case opStore:
		storeLeaf(Member(m.loc, sel), *dst)
	case opStoreMasked:
		storeLeafMasked(Member(m.loc, sel), *dst, m.mask)
	case opBroadcast:
		*dst = hwy.SetN(*sel(m.rec), m.lanes)
	case opExtract:
		*sel(m.rec) = dst.Lane(m.lane)
	case opInsert:
		*dst = hwy.InsertLane(*dst, m.lane, *sel(m.rec))
	}
}

// Nested visits a record-typed field whose own vectorized shape is dst.
func Nested[T, F any](m *Members[T], dst Shaped[F], sel func(*T) *F) {
	if m.op == opShape {
		dst.Shape(m.lanes)
		return
	}
	dst.VisitMembers(descend(m, sel))
}

// LeafArray visits a fixed-size array of numeric elements, vectorized as an
// array of vectors of the same length. sel returns the field as a slice,
// for example func(p *Poly) []float32 { return p.Coeffs[:] }.
func LeafArray[T any, F hwy.Lanes](m *Members[T], dst []hwy.Vec[F], sel func(*T) []F) {
	for k := range dst {
		Leaf(m, &dst[k], elemSelector(sel, k, len(dst)))
	}
}

// NestedArray visits a fixed-size array of records, vectorized as an array
// of their shapes.
func NestedArray[T, F, V any, PV ShapedPtr[F, V]](m *Members[T], dst []V, sel func(*T) []F) {
	for k := range dst {
		Nested[T, F](m, PV(&dst[k]), elemSelector(sel, k, len(dst)))
	}
}

// UniversalLeaf visits a field whose type has no hardware vector form. Its
// lanes are kept in a UniversalVec and moved one lane at a time.
func UniversalLeaf[T, F any](m *Members[T], dst *UniversalVec[F], sel func(*T) *F) {
	switch m.op {
	case opShape:
		*dst = UniversalVec[F]{data: make([]F, m.lanes)}
	case opLoad:
		*dst = loadAny(Member(m.loc, sel))
	case opStore:
		storeAny(Member(m.loc, sel), *dst, nil)
	case opStoreMasked:
		storeAny(Member(m.loc, sel), *dst, m.mask)
	case opBroadcast:
		v := *sel(m.rec)
		*dst = GenerateUniversal(m.lanes, func(int) F { return v })
	case opExtract:
		*sel(m.rec) = dst.Lane(m.lane)
	case opInsert:
		dst.SetLane(m.lane, *sel(m.rec))
	}
}

// elemSelector turns an array selector into a selector for element k.
func elemSelector[T, F any](sel func(*T) []F, k, n int) func(*T) *F {
	return func(p *T) *F {
		s := sel(p)
		if len(s) != n {
			panic(fmt.Sprintf("soa: array field has %d elements, vectorized shape has %d", len(s), n))
		}
		return &s[k]
	}
}
