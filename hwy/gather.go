package hwy

// This file provides bounds-checked gather and scatter through index
// vectors, the value-level counterpart of soa.Indexed. The unchecked,
// byte-pitched variants used for record fields live in strided.go.
//
// Lanes whose position falls outside the slice read as zero and are never
// written. Masks may have any element type; only their lane count matters.

// position returns base + indices[lane]*scale, or -1 if it is outside [0, n).
func position[I Integers](indices Vec[I], lane, base, scale, n int) int {
	idx := base + int(indices.data[lane])*scale
	if idx < 0 || idx >= n {
		return -1
	}
	return idx
}

// GatherIndex returns src[indices[i]] in lane i.
func GatherIndex[T Lanes, I Integers](src []T, indices Vec[I]) Vec[T] {
	return GatherIndexOffset(src, 0, indices, 1)
}

// GatherIndexOffset returns src[base + indices[i]*scale] in lane i, the
// addressing used to read one field of a flattened record array.
func GatherIndexOffset[T Lanes, I Integers](src []T, base int, indices Vec[I], scale int) Vec[T] {
	result := make([]T, len(indices.data))
	for i := range result {
		if idx := position(indices, i, base, scale, len(src)); idx >= 0 {
			result[i] = src[idx]
		}
	}
	return Vec[T]{data: result}
}

// GatherIndexMasked is GatherIndex for the lanes set in mask. Other lanes
// are zero.
func GatherIndexMasked[T Lanes, I Integers, M Lanes](src []T, indices Vec[I], mask Mask[M]) Vec[T] {
	result := make([]T, len(indices.data))
	for i := range min(len(result), len(mask.bits)) {
		if !mask.bits[i] {
			continue
		}
		if idx := position(indices, i, 0, 1, len(src)); idx >= 0 {
			result[i] = src[idx]
		}
	}
	return Vec[T]{data: result}
}

// ScatterIndex stores lane i of v to dst[indices[i]]. Lanes are written in
// order, so a repeated index keeps the last lane.
func ScatterIndex[T Lanes, I Integers](v Vec[T], dst []T, indices Vec[I]) {
	scatterIndex(v, dst, indices, nil)
}

// ScatterIndexMasked is ScatterIndex for the lanes set in mask.
func ScatterIndexMasked[T Lanes, I Integers, M Lanes](v Vec[T], dst []T, indices Vec[I], mask Mask[M]) {
	scatterIndex(v, dst, indices, mask.bits)
}

func scatterIndex[T Lanes, I Integers](v Vec[T], dst []T, indices Vec[I], mask []bool) {
	n := min(len(indices.data), len(v.data))
	if mask != nil {
		n = min(n, len(mask))
	}
	for i := range n {
		if mask != nil && !mask[i] {
			continue
		}
		if idx := position(indices, i, 0, 1, len(dst)); idx >= 0 {
			dst[idx] = v.data[i]
		}
	}
}

// IndicesStride returns the index vector [start, start+stride, ...] with
// numLanes lanes.
func IndicesStride[I Integers](numLanes int, start, stride I) Vec[I] {
	return Generate(numLanes, func(lane int) I { return start + I(lane)*stride })
}
