// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rec16 is a two-field record with a 16-byte stride.
type rec16 struct {
	A float64
	B float64
}

func TestLocationKinds(t *testing.T) {
	data := make([]float32, 8)
	assert.Equal(t, LinearKind, LinearAt(data, 2, 4).Kind())
	assert.Equal(t, IndexedKind, IndexedAt(data, NewIndexed(1, 0)).Kind())
	assert.Equal(t, RandomKind, RandomAt([]*float32{&data[3]}).Kind())
	assert.Equal(t, "indexed", IndexedKind.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestLocationAddr(t *testing.T) {
	data := make([]rec16, 10)

	lin := LinearAt(data, 3, 4)
	for lane := range 4 {
		assert.Same(t, &data[3+lane], lin.Ptr(lane))
	}

	ix := IndexedAt(data, NewIndexed(7, 2, 9, 0))
	for lane, i := range []int{7, 2, 9, 0} {
		assert.Same(t, &data[i], ix.Ptr(lane))
	}
}

func TestMemberKeepsStride(t *testing.T) {
	data := make([]rec16, 6)
	loc := LinearAt(data, 1, 4)
	b := Member(loc, func(r *rec16) *float64 { return &r.B })

	assert.Equal(t, uintptr(16), b.Stride())
	assert.Equal(t, 4, b.Lanes())
	for lane := range 4 {
		assert.Same(t, &data[1+lane].B, b.Ptr(lane))
	}

	ptrs := RandomAt([]*rec16{&data[5], &data[0]})
	rb := Member(ptrs, func(r *rec16) *float64 { return &r.B })
	assert.Same(t, &data[5].B, rb.Ptr(0))
	assert.Same(t, &data[0].B, rb.Ptr(1))
}

func TestArrayElem(t *testing.T) {
	polys := [][4]float32{{0, 1, 2, 3}, {10, 11, 12, 13}, {20, 21, 22, 23}}
	loc := LinearAt(polys, 0, 3)

	c := ArrayElem[float32](loc, 2)
	assert.Equal(t, unsafe.Sizeof(polys[0]), c.Stride())
	for lane := range 3 {
		assert.Equal(t, polys[lane][2], *c.Ptr(lane))
	}

	assert.Panics(t, func() { ArrayElem[float32](loc, 4) })
	assert.Panics(t, func() { ArrayElem[float64](loc, 0) })
	assert.Panics(t, func() { ArrayElem[float32](LinearAt([]float32{1}, 0, 1), 0) })
}

func TestLocationBounds(t *testing.T) {
	data := make([]float64, 4, 8)

	require.NotPanics(t, func() { LinearAt(data, 4, 4) }, "lanes may reach into capacity")
	assert.Panics(t, func() { LinearAt(data, 6, 4) })
	assert.Panics(t, func() { IndexedAt(data, NewIndexed(0, 8)) })
	assert.Panics(t, func() { IndexedAt(data, NewIndexed(-1)) })
}

func TestEmptyLocation(t *testing.T) {
	var data []rec16
	loc := Member(LinearAt(data, 0, 0), func(r *rec16) *float64 { return &r.A })
	assert.Equal(t, 0, loc.Lanes())
	assert.Equal(t, 0, loadLeaf(loc).NumLanes())
}
