// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

import "github.com/ajroetker/go-simdize/hwy"

// LoadRecord materializes the lanes addressed by p as a structure of vectors.
func LoadRecord[V, T any, PV ShapedPtr[T, V]](p Proxy[T]) V {
	var v V
	LoadRecordInto(p, PV(&v))
	return v
}

// LoadRecordInto loads the lanes addressed by p into dst, replacing every
// leaf.
func LoadRecordInto[T any](p Proxy[T], dst Shaped[T]) {
	dst.VisitMembers(&Members[T]{op: opLoad, lanes: p.loc.lanes, loc: p.loc})
}

// StoreRecord writes every leaf of v to the lanes addressed by p.
func StoreRecord[T any](p Proxy[T], v Shaped[T]) {
	v.VisitMembers(&Members[T]{op: opStore, lanes: p.loc.lanes, loc: p.loc})
}

// StoreRecordMasked writes every leaf of v to the lanes addressed by p where
// mask is set. One mask applies to all leaves, whatever their element type.
func StoreRecordMasked[T any, M hwy.Lanes](p Proxy[T], v Shaped[T], mask hwy.Mask[M]) {
	v.VisitMembers(&Members[T]{
		op:    opStoreMasked,
		lanes: p.loc.lanes,
		loc:   p.loc,
		mask:  mask.Bits(),
	})
}

// BroadcastRecord returns the vectorized shape of T with every lane equal
// to rec.
func BroadcastRecord[V, T any, PV ShapedPtr[T, V]](rec T, lanes int) V {
	var v V
	PV(&v).VisitMembers(&Members[T]{op: opBroadcast, lanes: lanes, rec: &rec})
	return v
}

// ExtractRecord returns lane of v as a scalar record.
func ExtractRecord[T any](v Shaped[T], lane int) T {
	var rec T
	v.VisitMembers(&Members[T]{op: opExtract, rec: &rec, lane: lane})
	return rec
}

// InsertRecord replaces lane of v with rec. v must already be shaped.
func InsertRecord[T any](v Shaped[T], lane int, rec T) {
	v.VisitMembers(&Members[T]{op: opInsert, rec: &rec, lane: lane})
}

// SelectRecord shapes dst to the mask's lane count and sets each lane to the
// lane of yes where mask is set and to the lane of no elsewhere. dst must
// not alias yes or no.
func SelectRecord[T any, M hwy.Lanes](mask hwy.Mask[M], dst, yes, no Shaped[T]) {
	lanes := mask.NumLanes()
	dst.Shape(lanes)
	for lane := range lanes {
		src := no
		if mask.GetBit(lane) {
			src = yes
		}
		InsertRecord(dst, lane, ExtractRecord(src, lane))
	}
}
