package hwy

// MaskOf creates a mask with one lane per argument.
func MaskOf[T Lanes](bits ...bool) Mask[T] {
	m := make([]bool, len(bits))
	copy(m, bits)
	return Mask[T]{bits: m}
}

// FirstN creates a mask of MaxLanes[T]() lanes with the first n lanes set.
func FirstN[T Lanes](n int) Mask[T] {
	return FirstNOf[T](n, MaxLanes[T]())
}

// FirstNOf creates a mask of lanes lanes with the first n lanes set.
// n is clamped to [0, lanes].
func FirstNOf[T Lanes](n, lanes int) Mask[T] {
	n = max(0, min(n, lanes))
	bits := make([]bool, lanes)
	for i := range n {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskFromBits creates a mask of lanes lanes from a bitmask integer.
// Bit i of bits corresponds to lane i.
func MaskFromBits[T Lanes](bits uint64, lanes int) Mask[T] {
	result := make([]bool, lanes)
	for i := 0; i < lanes && i < 64; i++ {
		result[i] = (bits & (1 << i)) != 0
	}
	return Mask[T]{bits: result}
}

// BitsFromMask converts mask to bitmask integer.
// Lane i corresponds to bit i of the result.
func BitsFromMask[T Lanes](mask Mask[T]) uint64 {
	var result uint64
	for i, bit := range mask.bits {
		if bit && i < 64 {
			result |= 1 << i
		}
	}
	return result
}

// RebindMask reinterprets a mask for another lane type with the same lane
// count. Records with mixed leaf types use it to apply one mask to every leaf.
func RebindMask[U, T Lanes](m Mask[T]) Mask[U] {
	return Mask[U]{bits: m.bits}
}

// MaskAnd performs logical AND on two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	result := make([]bool, n)
	for i := range n {
		result[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: result}
}

// MaskOr performs logical OR on two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(a.bits), len(b.bits))
	result := make([]bool, n)
	for i := range n {
		result[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: result}
}

// MaskNot inverts every lane of the mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	result := make([]bool, len(m.bits))
	for i, bit := range m.bits {
		result[i] = !bit
	}
	return Mask[T]{bits: result}
}

// FindFirstTrue returns index of first true lane, or -1 if none.
func FindFirstTrue[T Lanes](mask Mask[T]) int {
	for i, bit := range mask.bits {
		if bit {
			return i
		}
	}
	return -1
}
