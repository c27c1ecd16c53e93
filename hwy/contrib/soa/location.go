// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Kind identifies how a Location derives lane addresses.
type Kind uint8

const (
	// LinearKind locations address lane i at base + i*stride.
	LinearKind Kind = iota

	// IndexedKind locations address lane i at base + indices[i]*stride.
	IndexedKind

	// RandomKind locations hold one independent pointer per lane.
	RandomKind
)

func (k Kind) String() string {
	switch k {
	case LinearKind:
		return "linear"
	case IndexedKind:
		return "indexed"
	case RandomKind:
		return "random"
	default:
		return "unknown"
	}
}

// Location describes where the N lanes of a T live. It is an address, not a
// value: building or descending a Location never reads memory.
//
// The stride is the byte size of the outermost container the location was
// built from. Member and ArrayElem keep it unchanged, so a location for a
// field embedded in a larger record still steps from record to record.
type Location[T any] struct {
	kind    Kind
	base    unsafe.Pointer
	stride  uintptr
	lanes   int
	indices []int
	ptrs    []unsafe.Pointer
}

// LinearAt returns a location for base[start], base[start+1], ...,
// base[start+lanes-1]. Lanes past len(base) are permitted up to cap(base).
func LinearAt[T any](base []T, start, lanes int) Location[T] {
	if start < 0 || lanes < 0 || start+lanes > cap(base) {
		panic(fmt.Sprintf("soa: linear location [%d:%d] out of range with capacity %d", start, start+lanes, cap(base)))
	}
	loc := Location[T]{kind: LinearKind, stride: sizeOf[T](), lanes: lanes}
	if lanes > 0 {
		loc.base = unsafe.Pointer(&base[:start+lanes][start])
	}
	return loc
}

// IndexedAt returns a location whose lane i is base[idx.ScalarIndex(i)].
// The location references idx's positions without copying them.
func IndexedAt[T any](base []T, idx Indexed) Location[T] {
	for lane, i := range idx.indices {
		if i < 0 || i >= cap(base) {
			panic(fmt.Sprintf("soa: lane %d index %d out of range with capacity %d", lane, i, cap(base)))
		}
	}
	loc := Location[T]{
		kind:    IndexedKind,
		stride:  sizeOf[T](),
		lanes:   len(idx.indices),
		indices: idx.indices,
	}
	if cap(base) > 0 {
		loc.base = unsafe.Pointer(unsafe.SliceData(base))
	}
	return loc
}

// RandomAt returns a location with one lane per pointer.
func RandomAt[T any](ptrs []*T) Location[T] {
	p := make([]unsafe.Pointer, len(ptrs))
	for i, ptr := range ptrs {
		p[i] = unsafe.Pointer(ptr)
	}
	return Location[T]{kind: RandomKind, stride: sizeOf[T](), lanes: len(ptrs), ptrs: p}
}

// Kind returns how the location derives lane addresses.
func (l Location[T]) Kind() Kind { return l.kind }

// Lanes returns the number of lanes N.
func (l Location[T]) Lanes() int { return l.lanes }

// Stride returns the byte distance between consecutive scalar positions of
// the outermost container.
func (l Location[T]) Stride() uintptr { return l.stride }

// Addr returns the address of lane.
func (l Location[T]) Addr(lane int) unsafe.Pointer {
	switch l.kind {
	case LinearKind:
		return unsafe.Add(l.base, uintptr(lane)*l.stride)
	case IndexedKind:
		return unsafe.Add(l.base, l.indices[lane]*int(l.stride))
	default:
		return l.ptrs[lane]
	}
}

// Ptr returns a typed pointer to lane.
func (l Location[T]) Ptr(lane int) *T {
	return (*T)(l.Addr(lane))
}

// Member descends into the field of T chosen by sel. sel must only compute
// the address of a field or array element of its argument; it is applied to
// a lane address and its result becomes the new base.
//
//	x := soa.Member(loc, func(p *Particle) *float64 { return &p.Pos.X })
func Member[T, F any](l Location[T], sel func(*T) *F) Location[F] {
	out := Location[F]{
		kind:    l.kind,
		stride:  l.stride,
		lanes:   l.lanes,
		indices: l.indices,
	}
	switch l.kind {
	case RandomKind:
		out.ptrs = make([]unsafe.Pointer, len(l.ptrs))
		for i, p := range l.ptrs {
			out.ptrs[i] = unsafe.Pointer(sel((*T)(p)))
		}
	default:
		if l.base != nil {
			out.base = unsafe.Pointer(sel((*T)(l.base)))
		}
	}
	return out
}

// ArrayElem descends into element i of an array-typed leaf A, whose element
// type must be E.
//
//	c := soa.ArrayElem[float32](coeffs, 2) // coeffs is a Location[[4]float32]
func ArrayElem[E, A any](l Location[A], i int) Location[E] {
	n := arrayLen[E, A]()
	if i < 0 || i >= n {
		panic(fmt.Sprintf("soa: array index %d out of range [0:%d]", i, n))
	}
	off := uintptr(i) * sizeOf[E]()
	return Member(l, func(p *A) *E {
		return (*E)(unsafe.Add(unsafe.Pointer(p), off))
	})
}

func arrayLen[E, A any]() int {
	at := reflect.TypeFor[A]()
	if at.Kind() != reflect.Array {
		panic(fmt.Sprintf("soa: %v is not an array type", at))
	}
	if et := reflect.TypeFor[E](); at.Elem() != et {
		panic(fmt.Sprintf("soa: %v has element type %v, not %v", at, at.Elem(), et))
	}
	return at.Len()
}

func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
