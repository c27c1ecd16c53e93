// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package loop

import "github.com/ajroetker/go-simdize/hwy/contrib/soa"

// Indirect calls body for every position listed in indices, in order: with a
// soa.Indexed over lanes consecutive entries while a full step fits, then
// according to policy. The indexed steps reference sub-slices of indices
// without copying.
//
// Under VectorResidual the last step reads entries past len(indices) from
// its capacity; the caller fills them with positions that are safe to touch.
func Indirect(indices []int, lanes int, policy Residual, body Body) {
	IndirectPos(indices, lanes, policy, func(_, idx soa.Index) { body(idx) })
}

// IndirectPos is Indirect that also passes pos, the 0-based positions within
// indices covered by the step, as a soa.Contiguous (or soa.Scalar for scalar
// steps). Bodies use it to address a destination laid out linearly while
// gathering from an indirect source.
func IndirectPos(indices []int, lanes int, policy Residual, body func(pos, idx soa.Index)) {
	checkLanes(lanes)
	n := len(indices)
	p := 0
	for ; p+lanes <= n; p += lanes {
		body(soa.NewContiguous(p, lanes), soa.IndexedRef(indices[p:p+lanes]))
	}
	if p >= n {
		return
	}
	if policy == VectorResidual && p > 0 {
		body(soa.NewContiguous(p, lanes), soa.IndexedRef(indices[p:p+lanes]))
		return
	}
	for ; p < n; p++ {
		body(soa.Scalar(p), soa.Scalar(indices[p]))
	}
}
