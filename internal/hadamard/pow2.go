package hadamard

import "math/bits"

// IsPowerOfTwo reports whether n is a valid transform length: a power of two
// strictly greater than 1. Zero, one and negative numbers are rejected.
func IsPowerOfTwo(n int) bool {
	return n > 1 && n&(n-1) == 0
}

// log2 returns the base-2 logarithm of a power of two.
func log2(n int) int {
	return bits.TrailingZeros(uint(n))
}
