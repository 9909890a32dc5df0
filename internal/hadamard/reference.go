package hadamard

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/born-ml/fht/internal/parallel"
	"github.com/born-ml/fht/internal/tensor"
)

// Matrix returns the n×n Sylvester-ordered Hadamard matrix,
// H[i][j] = (-1)^popcount(i&j). It panics when n is not a power of two
// (n = 1 yields [[1]]).
func Matrix(n int) [][]float64 {
	if n != 1 && !IsPowerOfTwo(n) {
		panic(fmt.Sprintf("hadamard: matrix size %d is not a power of two", n))
	}
	h := make([][]float64, n)
	for i := range h {
		h[i] = make([]float64, n)
		for j := range h[i] {
			if bits.OnesCount(uint(i&j))%2 == 0 {
				h[i][j] = 1
			} else {
				h[i][j] = -1
			}
		}
	}
	return h
}

// Reference1D computes the orthonormal transform of x by dense matrix
// multiplication. It is O(n²) and meant for verification.
func Reference1D(x []float64) ([]float64, error) {
	n := len(x)
	if !IsPowerOfTwo(n) {
		return nil, &AxisError{Axis: 0, Length: n, Shape: tensor.Shape{n}}
	}
	return multiply(Matrix(n), x), nil
}

// multiply returns h·x / √len(x).
func multiply(h [][]float64, x []float64) []float64 {
	norm := math.Sqrt(float64(len(x)))
	out := make([]float64, len(x))
	for i, row := range h {
		var sum float64
		for j, v := range row {
			sum += v * x[j]
		}
		out[i] = sum / norm
	}
	return out
}

// Reference computes the orthonormal transform of x over axes by the dense
// matrix product along each transformed axis in turn. The result is float64
// whatever the input type.
func Reference(x *tensor.RawTensor, axes AxisSpec) (*tensor.RawTensor, error) {
	if x == nil {
		return nil, ErrNilTensor
	}
	rank := x.Rank()
	if rank < 1 || rank > 3 {
		return nil, fmt.Errorf("%w: got %dD tensor %v", ErrUnsupportedRank, rank, x.Shape())
	}
	mask, err := axes.resolve(rank)
	if err != nil {
		return nil, err
	}
	if _, err := transformLength(x.Shape(), mask); err != nil {
		return nil, err
	}

	shape := x.Shape()
	strides := x.Strides()
	data := tensor.Float64s(x)

	for axis := range rank {
		if !mask.has(axis) {
			continue
		}
		n, stride := shape[axis], strides[axis]
		h := Matrix(n)

		// Every line along axis starts at an offset whose coordinate on axis is 0.
		bases := make([]int, 0, len(data)/n)
		for base := range data {
			if (base/stride)%n == 0 {
				bases = append(bases, base)
			}
		}

		parallel.For(len(bases), func(i int) {
			base := bases[i]
			line := make([]float64, n)
			for k := range line {
				line[k] = data[base+k*stride]
			}
			for k, v := range multiply(h, line) {
				data[base+k*stride] = v
			}
		}, parallel.DefaultConfig())
	}

	return tensor.FromSlice(data, shape.Clone())
}
