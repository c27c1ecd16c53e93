//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}

	// SVE vector length is implementation defined; the 128-bit minimum is the
	// only width every SVE core guarantees, so the lane count stays at NEON's.
	if cpu.ARM64.HasSVE {
		currentLevel = DispatchSVE
		currentName = "sve"
	}

	applyWidthOverride()
}

// HasAVX512 returns false on ARM.
func HasAVX512() bool {
	return false
}

// HasGather reports whether the CPU has hardware gather instructions (SVE).
func HasGather() bool {
	return cpu.ARM64.HasSVE
}
