// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package hadamard

import "github.com/born-ml/fht/internal/hadamard"

// Number is the set of element types the butterfly runs on.
type Number = hadamard.Number

// Butterfly writes the unnormalized transform of src into dst in natural
// (Sylvester) order. len(src) must be a power of two. dst and src may be the
// same slice.
//
// Example:
//
//	x := []int32{1, 2, 3, 4}
//	hadamard.Butterfly(x, x) // x = [10, -2, -4, 0]
func Butterfly[T Number](dst, src []T) {
	hadamard.Butterfly(dst, src)
}

// ButterflyRows transforms, in place and unnormalized, every contiguous row
// of length n in data.
func ButterflyRows[T Number](data []T, n int, cfg ParallelConfig) {
	hadamard.ButterflyRows(data, n, cfg)
}
