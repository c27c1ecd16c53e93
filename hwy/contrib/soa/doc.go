// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package soa lets one loop body run over a slice of scalars or records
// either one element at a time or N lanes at a time.
//
// An Index says which scalar positions a step addresses: a Scalar, a
// Contiguous run or an explicit Indexed list. Access turns a slice and an
// Index into a Proxy, which navigates into fields (Field, Elem) without
// touching memory. Numeric leaves are read and written through Vector;
// records are moved as a whole through LoadRecord and StoreRecord once their
// structure-of-vectors form implements Shaped.
//
//	type Particle struct{ X, V float64 }
//
//	func step(ps []Particle, idx soa.Index, dt hwy.Vec[float64]) {
//		p := soa.Access(ps, idx)
//		x := soa.Numeric(soa.Field(p, func(q *Particle) *float64 { return &q.X }))
//		v := soa.Numeric(soa.Field(p, func(q *Particle) *float64 { return &q.V }))
//		x.AddAssign(hwy.Mul(v.Load(), dt))
//	}
//
// step works unchanged for a soa.Scalar index (one lane) and for vector
// indices; loop.Simple calls it with both.
//
// Fields embedded in larger records are read with a pitched gather: the
// stride between lanes stays the size of the outermost element however deep
// the selector chain goes. Lane i of every load or store always corresponds
// to lane i of the index.
//
// Misuse (a lane count mismatch, an out-of-range position, an array
// element type mismatch) panics; there is no error return on these paths.
package soa
