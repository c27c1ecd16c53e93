// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package loop

import (
	"fmt"

	"github.com/ajroetker/go-simdize/hwy"
	"github.com/ajroetker/go-simdize/hwy/contrib/soa"
)

// Body is a loop step. idx is a vector index for vector steps and a
// soa.Scalar for scalar steps.
type Body func(idx soa.Index)

// Residual selects how a driver handles the final positions that do not
// fill a vector step.
type Residual uint8

const (
	// ScalarResidual runs one scalar step per remaining position.
	ScalarResidual Residual = iota

	// VectorResidual runs one more vector step whose lanes reach past the
	// end of the range. The caller guarantees those lanes are safe to touch,
	// for example by padding the slice capacity with Padded.
	VectorResidual
)

func (r Residual) String() string {
	switch r {
	case ScalarResidual:
		return "scalar"
	case VectorResidual:
		return "vector"
	default:
		return fmt.Sprintf("Residual(%d)", uint8(r))
	}
}

// Simple calls body for every position of [start, end): with a
// soa.Contiguous of lanes lanes while a full step fits, then according to
// policy. If the range is shorter than one step only scalar steps run,
// whatever the policy.
func Simple(start, end, lanes int, policy Residual, body Body) {
	checkLanes(lanes)
	p := vectorSteps(start, end, lanes, body)
	if p >= end {
		return
	}
	if policy == VectorResidual && p > start {
		body(soa.NewContiguous(p, lanes))
		return
	}
	scalarSteps(p, end, body)
}

// Padded returns a slice of length n whose capacity is rounded up to a
// multiple of lanes, for use with VectorResidual.
func Padded[T any](n, lanes int) []T {
	checkLanes(lanes)
	return make([]T, n, hwy.AlignedSizeN(n, lanes))
}

// vectorSteps runs full vector steps from p and returns the first position
// not covered.
func vectorSteps(p, end, lanes int, body Body) int {
	for ; p+lanes <= end; p += lanes {
		body(soa.NewContiguous(p, lanes))
	}
	return p
}

func scalarSteps(p, end int, body Body) {
	for ; p < end; p++ {
		body(soa.Scalar(p))
	}
}

func checkLanes(lanes int) {
	if lanes <= 0 {
		panic(fmt.Sprintf("loop: lane count must be positive, got %d", lanes))
	}
}
