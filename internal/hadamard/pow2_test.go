package hadamard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	for k := 1; k < 62; k++ {
		assert.True(t, IsPowerOfTwo(1<<k), "2^%d", k)
	}
	for _, n := range []int{-4, -1, 0, 1, 3, 5, 6, 7, 9, 11, 127, 100000} {
		assert.False(t, IsPowerOfTwo(n), "%d", n)
	}
}

func TestLog2(t *testing.T) {
	assert.Equal(t, 0, log2(1))
	assert.Equal(t, 1, log2(2))
	assert.Equal(t, 10, log2(1024))
}
