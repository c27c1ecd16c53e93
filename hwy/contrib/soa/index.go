// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

import "github.com/ajroetker/go-simdize/hwy"

// Index describes which scalar positions the lanes of one step address.
//
// Scalar addresses a single position (one lane). Contiguous addresses the
// run start, start+1, ..., start+N-1. Indexed addresses an explicit list of
// positions, one per lane. Loop bodies receive an Index and pass it to
// Access, so the same body serves vector steps and the scalar tail.
type Index interface {
	// Size returns the number of lanes N.
	Size() int

	// ScalarIndex returns the scalar position addressed by lane.
	ScalarIndex(lane int) int
}

// Scalar is a single scalar position.
type Scalar int

// Size returns 1.
func (Scalar) Size() int { return 1 }

// ScalarIndex returns the position itself.
func (s Scalar) ScalarIndex(int) int { return int(s) }

// Contiguous addresses lanes start, start+1, ..., start+N-1.
// The per-lane position is derived arithmetically; nothing is stored per lane.
type Contiguous struct {
	start int
	lanes int
}

// NewContiguous returns a contiguous index of lanes lanes starting at start.
func NewContiguous(start, lanes int) Contiguous {
	return Contiguous{start: start, lanes: lanes}
}

// Start returns the scalar position of lane 0.
func (c Contiguous) Start() int { return c.start }

// Size returns the number of lanes.
func (c Contiguous) Size() int { return c.lanes }

// ScalarIndex returns start + lane.
func (c Contiguous) ScalarIndex(lane int) int { return c.start + lane }

// Indexed addresses an explicit scalar position per lane, for gathers and
// scatters such as permutations or neighbor lists.
type Indexed struct {
	indices []int
}

// NewIndexed returns an index whose lane i addresses indices[i].
// The positions are copied, so the caller may reuse its buffer.
func NewIndexed(indices ...int) Indexed {
	ix := make([]int, len(indices))
	copy(ix, indices)
	return Indexed{indices: ix}
}

// IndexedRef returns an index referencing buf directly; lane i addresses
// buf[i]. The caller must not modify buf while the index is in use.
func IndexedRef(buf []int) Indexed {
	return Indexed{indices: buf}
}

// IndexedFromVec converts a vector of integer positions into an index.
func IndexedFromVec[I hwy.Integers](v hwy.Vec[I]) Indexed {
	ix := make([]int, v.NumLanes())
	for i := range ix {
		ix[i] = int(v.Lane(i))
	}
	return Indexed{indices: ix}
}

// Size returns the number of lanes.
func (x Indexed) Size() int { return len(x.indices) }

// ScalarIndex returns the position addressed by lane.
func (x Indexed) ScalarIndex(lane int) int { return x.indices[lane] }

// Indices returns the per-lane positions. The slice must not be modified.
func (x Indexed) Indices() []int { return x.indices }

// IsVector reports whether idx addresses a group of lanes rather than a
// single scalar position.
func IsVector(idx Index) bool {
	_, scalar := idx.(Scalar)
	return !scalar
}

// IsVectorIndex reports whether the index type I is a vector index. It
// depends only on the type argument, so generic code instantiated for a
// concrete index type specializes on it without inspecting values.
func IsVectorIndex[I Index]() bool {
	var zero I
	return IsVector(zero)
}

// ForEachLane calls fn once per lane of idx with the lane number and the
// scalar position it addresses, in lane order.
func ForEachLane(idx Index, fn func(lane, i int)) {
	for lane := range idx.Size() {
		fn(lane, idx.ScalarIndex(lane))
	}
}
