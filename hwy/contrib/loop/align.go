// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package loop

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-simdize/hwy/contrib/soa"
)

// Aligning runs scalar steps from start, checking aligned before each, until
// aligned(p) holds or the range ends. From p it continues like Simple with
// ScalarResidual, so the first vector step starts exactly at p.
func Aligning(start, end, lanes int, aligned func(i int) bool, body Body) {
	checkLanes(lanes)
	p := start
	for ; p < end && !aligned(p); p++ {
		body(soa.Scalar(p))
	}
	Simple(p, end, lanes, ScalarResidual, body)
}

// AlignedTo returns a predicate reporting whether &base[i] is a multiple of
// bytes, which must be a power of two. Positions up to cap(base) may be
// tested.
//
//	loop.Aligning(0, len(xs), lanes, loop.AlignedTo(xs, hwy.CurrentWidth()), body)
func AlignedTo[T any](base []T, bytes int) func(i int) bool {
	if bytes <= 0 || bytes&(bytes-1) != 0 {
		panic(fmt.Sprintf("loop: alignment %d is not a power of two", bytes))
	}
	var zero T
	size := unsafe.Sizeof(zero)
	mask := uintptr(bytes - 1)
	return func(i int) bool {
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(base))) + uintptr(i)*size
		return addr&mask == 0
	}
}
