// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

// Shaped is implemented by a pointer to the structure-of-vectors form V of a
// scalar record T. The two methods are the only per-type code a record needs:
//
//   - Shape sizes every leaf of V for lanes lanes (all zero).
//   - VisitMembers pairs every leaf of V with the matching field of T by
//     calling one of Leaf, Nested, LeafArray, NestedArray or UniversalLeaf
//     once per field.
//
// Every generic record operation (load, store, masked store, broadcast,
// lane extract and insert) is a single VisitMembers walk with a different
// operation recorded in Members. A hand-written implementation for
//
//	type Point struct{ X, Y float64 }
//
// looks like
//
//	type PointVec struct{ X, Y hwy.Vec[float64] }
//
//	func (v *PointVec) Shape(lanes int) { soa.DefaultShape[Point](v, lanes) }
//
//	func (v *PointVec) VisitMembers(m *soa.Members[Point]) {
//		soa.Leaf(m, &v.X, func(p *Point) *float64 { return &p.X })
//		soa.Leaf(m, &v.Y, func(p *Point) *float64 { return &p.Y })
//	}
//
// cmd/soagen generates both methods and the V type from the record.
type Shaped[T any] interface {
	Shape(lanes int)
	VisitMembers(m *Members[T])
}

// ShapedPtr constrains PV to be *V implementing Shaped[T]. Functions that
// return a V by value take V as their first type parameter, so callers name
// only V when T can be inferred from the arguments:
//
//	pv := soa.LoadRecord[PointVec](p) // p is a Proxy[Point]
type ShapedPtr[T, V any] interface {
	*V
	Shaped[T]
}

type memberOp uint8

const (
	opShape memberOp = iota
	opLoad
	opStore
	opStoreMasked
	opBroadcast
	opExtract
	opInsert
)

// Members carries one record operation through a VisitMembers walk. Its
// fields are private; hooks only pass it on to the leaf helpers.
type Members[T any] struct {
	op    memberOp
	lanes int

	// loc addresses the record for opLoad, opStore and opStoreMasked.
	loc Location[T]

	// rec is the scalar record for opBroadcast, opExtract and opInsert.
	rec  *T
	lane int

	mask []bool
}

// Lanes returns the lane count of the operation.
func (m *Members[T]) Lanes() int { return m.lanes }

func (m *Members[T]) usesLocation() bool {
	return m.op == opLoad || m.op == opStore || m.op == opStoreMasked
}

// descend derives the Members of the field selected by sel.
func descend[T, F any](m *Members[T], sel func(*T) *F) *Members[F] {
	sub := &Members[F]{op: m.op, lanes: m.lanes, lane: m.lane, mask: m.mask}
	if m.usesLocation() {
		sub.loc = Member(m.loc, sel)
	}
	if m.rec != nil {
		sub.rec = sel(m.rec)
	}
	return sub
}

// DefaultShape implements Shape by visiting every member and sizing it to
// lanes zero lanes.
func DefaultShape[T any](v Shaped[T], lanes int) {
	v.VisitMembers(&Members[T]{op: opShape, lanes: lanes})
}

// ShapeMembers returns the vectorized shape of T for lanes lanes, with every
// leaf zero.
func ShapeMembers[V, T any, PV ShapedPtr[T, V]](lanes int) V {
	var v V
	PV(&v).Shape(lanes)
	return v
}
