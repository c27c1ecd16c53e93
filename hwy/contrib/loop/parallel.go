// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package loop

import (
	"github.com/ajroetker/go-simdize/hwy/contrib/soa"
	"github.com/ajroetker/go-simdize/hwy/contrib/workerpool"
)

// stepsPerBatch is the number of vector steps a worker grabs at once in
// ParallelIndirect.
const stepsPerBatch = 16

// Parallel is Simple with ScalarResidual run on pool: [start, end) is split
// into disjoint chunks whose inner boundaries are multiples of lanes from
// start, so only the last chunk has a scalar tail. body must be safe to call
// concurrently for disjoint positions. A nil pool runs on the caller's
// goroutine.
func Parallel(pool *workerpool.Pool, start, end, lanes int, body Body) {
	checkLanes(lanes)
	if pool == nil {
		Simple(start, end, lanes, ScalarResidual, body)
		return
	}
	pool.ParallelForLanes(end-start, lanes, func(lo, hi int) {
		Simple(start+lo, start+hi, lanes, ScalarResidual, body)
	})
}

// ParallelIndirect is IndirectPos with ScalarResidual run on pool. Workers
// take batches of steps as they finish, which suits bodies whose cost
// depends on the positions gathered. Repeated positions in indices make
// concurrent writes through idx race; only read through idx then.
func ParallelIndirect(pool *workerpool.Pool, indices []int, lanes int, body func(pos, idx soa.Index)) {
	checkLanes(lanes)
	run := func(lo, hi int) {
		IndirectPos(indices[lo:hi], lanes, ScalarResidual, func(pos, idx soa.Index) {
			body(shift(pos, lo), idx)
		})
	}
	if pool == nil {
		run(0, len(indices))
		return
	}
	pool.ParallelForBatched(len(indices), lanes*stepsPerBatch, run)
}

// shift moves a linear position produced for a sub-slice back to the
// position within the full index list.
func shift(pos soa.Index, by int) soa.Index {
	switch x := pos.(type) {
	case soa.Scalar:
		return x + soa.Scalar(by)
	case soa.Contiguous:
		return soa.NewContiguous(x.Start()+by, x.Size())
	default:
		return pos
	}
}
