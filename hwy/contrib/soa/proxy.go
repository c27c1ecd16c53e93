// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package soa

// Proxy is a pending vectorized read or write of the lanes of a T. It is
// produced by Access and consumed by Numeric, LoadRecord, StoreRecord and
// friends; it holds no data of its own.
type Proxy[T any] struct {
	loc Location[T]
}

// ProxyAt wraps a location.
func ProxyAt[T any](loc Location[T]) Proxy[T] {
	return Proxy[T]{loc: loc}
}

// Lanes returns the number of lanes N.
func (p Proxy[T]) Lanes() int { return p.loc.lanes }

// Location returns the addressed location.
func (p Proxy[T]) Location() Location[T] { return p.loc }

// Ptr returns a pointer to the element addressed by lane.
func (p Proxy[T]) Ptr(lane int) *T { return p.loc.Ptr(lane) }

// Field navigates to the member of T chosen by sel.
//
//	vx := soa.Numeric(soa.Field(soa.Access(particles, idx), func(p *Particle) *float64 { return &p.Vel.X }))
func Field[T, F any](p Proxy[T], sel func(*T) *F) Proxy[F] {
	return Proxy[F]{loc: Member(p.loc, sel)}
}

// Elem navigates to element i of an array-typed T.
func Elem[E, A any](p Proxy[A], i int) Proxy[E] {
	return Proxy[E]{loc: ArrayElem[E](p.loc, i)}
}

// Universal reads the lanes addressed by p one at a time. It works for any
// T, including types with no vector form.
func Universal[T any](p Proxy[T]) UniversalVec[T] {
	return loadAny(p.loc)
}

// StoreUniversal writes the lanes of u to the elements addressed by p.
func StoreUniversal[T any](p Proxy[T], u UniversalVec[T]) {
	storeAny(p.loc, u, nil)
}
