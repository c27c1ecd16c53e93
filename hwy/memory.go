package hwy

import "unsafe"

// BlendedStore stores elements from v to dst only where mask is true.
// Unlike some SIMD implementations of masked stores, this explicitly
// preserves existing values in dst where mask is false.
//
// This is useful when you want conditional updates without affecting
// the non-selected lanes in the destination.
func BlendedStore[T Lanes](v Vec[T], mask Mask[T], dst []T) {
	n := min(len(dst), min(len(mask.bits), len(v.data)))
	for i := range n {
		if mask.bits[i] {
			dst[i] = v.data[i]
		}
		// else: dst[i] unchanged (the "blend" part)
	}
}

// LoadInterleaved2 loads n interleaved pairs and deinterleaves them into two
// vectors. This converts Array-of-Structures (AoS) format to
// Structure-of-Arrays (SoA).
//
// Input memory layout (interleaved pairs):
//
//	[a0, b0, a1, b1, a2, b2, a3, b3, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, a2, a3, ...]
//	vec_b = [b0, b1, b2, b3, ...]
//
// If src holds fewer than n pairs, only the complete pairs are loaded.
func LoadInterleaved2[T Lanes](src []T, n int) (Vec[T], Vec[T]) {
	n = min(n, len(src)/2)
	if n == 0 {
		return Vec[T]{}, Vec[T]{}
	}
	var dummy T
	stride := 2 * unsafe.Sizeof(dummy)
	a := LoadStrided[T](unsafe.Pointer(&src[0]), stride, n)
	b := LoadStrided[T](unsafe.Pointer(&src[1]), stride, n)
	return a, b
}

// StoreInterleaved2 stores two vectors interleaved to dst.
// This converts Structure-of-Arrays (SoA) format to Array-of-Structures (AoS)
// and is the inverse of LoadInterleaved2.
func StoreInterleaved2[T Lanes](a, b Vec[T], dst []T) {
	n := min(len(b.data), len(a.data), len(dst)/2)
	if n == 0 {
		return
	}
	var dummy T
	stride := 2 * unsafe.Sizeof(dummy)
	StoreStrided(Vec[T]{data: a.data[:n]}, unsafe.Pointer(&dst[0]), stride)
	StoreStrided(Vec[T]{data: b.data[:n]}, unsafe.Pointer(&dst[1]), stride)
}
