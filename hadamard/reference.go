// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package hadamard

import (
	"github.com/born-ml/fht/internal/hadamard"
	"github.com/born-ml/fht/tensor"
)

// Matrix returns the n×n Sylvester-ordered Hadamard matrix.
// Panics if n is not a power of two.
func Matrix(n int) [][]float64 {
	return hadamard.Matrix(n)
}

// Reference computes the normalized transform over axes by dense
// matrix-vector products in float64. It is O(n²) per row and intended
// for verification.
func Reference(x *tensor.RawTensor, axes AxisSpec) (*tensor.RawTensor, error) {
	return hadamard.Reference(x, axes)
}

// Reference1D computes the normalized transform of x by dense matrix
// multiplication.
func Reference1D(x []float64) ([]float64, error) {
	return hadamard.Reference1D(x)
}
