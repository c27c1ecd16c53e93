// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package loop partitions an iteration range into full-width vector steps
// and a scalar remainder, and calls one body for both.
//
// The body receives a soa.Index: a soa.Contiguous or soa.Indexed for vector
// steps and a soa.Scalar for remainder positions. Written against soa.Access,
// the same body reads and writes one element or N lanes:
//
//	a := make([]float64, 103)
//	loop.Simple(0, len(a), 4, loop.ScalarResidual, func(idx soa.Index) {
//	    v := soa.AccessNumeric(a, idx)
//	    v.MulAssign(hwy.SetN(2.0, idx.Size()))
//	})
//
// Drivers:
//
//   - Simple walks [start, end) in steps of N.
//   - Aligning runs scalar steps until a predicate (usually an address
//     alignment check) holds, then continues like Simple.
//   - Indirect and IndirectPos walk a list of positions, producing
//     soa.Indexed steps.
//   - Parallel and ParallelIndirect split the range into lane-aligned chunks
//     run on a workerpool.Pool.
//
// The remainder is always handled with scalar steps or, under VectorResidual,
// with one overrunning vector step; masked tail steps are not produced.
package loop
