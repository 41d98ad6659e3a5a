package tlsf

import "math/bits"

// fls returns the 0-based index of the most significant set bit of x.
// Behavior on x == 0 is undefined by the allocator's contract; callers
// guard every call site. It returns -1 in that case so a caller that fails
// to guard gets a loud out-of-range index rather than a silently wrong
// answer.
//
//go:inline
func fls(x uint32) int {
	if x == 0 {
		return -1
	}
	return bits.Len32(x) - 1
}

// ffs returns the 0-based index of the least significant set bit of x.
// Same zero-input contract as fls.
//
//go:inline
func ffs(x uint32) int {
	if x == 0 {
		return -1
	}
	return bits.TrailingZeros32(x)
}

// flsSizeT is fls extended to the platform's pointer-width word, used where
// a size may in principle exceed 32 bits (kept distinct from fls/ffs, which
// this allocator uses internally since blockSizeMax fits comfortably in 32
// bits on every supported platform).
//
//go:inline
func flsSizeT(x uintptr) int {
	if x == 0 {
		return -1
	}
	return bits.Len(uint(x)) - 1
}

//go:inline
func setBit32(nr uint, addr *uint32) {
	*addr |= 1 << (nr & 0x1f)
}

//go:inline
func clearBit32(nr uint, addr *uint32) {
	*addr &^= 1 << (nr & 0x1f)
}
