//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures use scalar mode.
	setScalarMode()
	applyWidthOverride()
}

// HasAVX512 returns false on this architecture.
func HasAVX512() bool {
	return false
}

// HasGather returns false on this architecture.
func HasGather() bool {
	return false
}
