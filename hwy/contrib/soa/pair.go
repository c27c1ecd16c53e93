// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

import "github.com/ajroetker/go-simdize/hwy"

// Pair is a key-value record with two numeric members.
type Pair[A, B hwy.Lanes] struct {
	First  A
	Second B
}

// PairVec is the vectorized shape of Pair[A, B].
type PairVec[A, B hwy.Lanes] struct {
	First  hwy.Vec[A]
	Second hwy.Vec[B]
}

// Shape sizes both members to lanes zero lanes.
func (v *PairVec[A, B]) Shape(lanes int) {
	DefaultShape[Pair[A, B]](v, lanes)
}

// VisitMembers visits First then Second.
func (v *PairVec[A, B]) VisitMembers(m *Members[Pair[A, B]]) {
	Leaf(m, &v.First, func(p *Pair[A, B]) *A { return &p.First })
	Leaf(m, &v.Second, func(p *Pair[A, B]) *B { return &p.Second })
}
