package cpu

import (
	"github.com/born-ml/fht/internal/tensor"
)

func transposeData(result, src *tensor.RawTensor, axes []int) {
	switch src.DType() {
	case tensor.Float32:
		transpose(result.AsFloat32(), src.AsFloat32(), src.Shape(), axes)
	case tensor.Float64:
		transpose(result.AsFloat64(), src.AsFloat64(), src.Shape(), axes)
	case tensor.Int32:
		transpose(result.AsInt32(), src.AsInt32(), src.Shape(), axes)
	case tensor.Int64:
		transpose(result.AsInt64(), src.AsInt64(), src.Shape(), axes)
	case tensor.Uint8:
		transpose(result.AsUint8(), src.AsUint8(), src.Shape(), axes)
	case tensor.Bool:
		transpose(result.AsBool(), src.AsBool(), src.Shape(), axes)
	default:
		panic("transpose: unsupported dtype")
	}
}

// transpose walks the source in row-major order, carrying a coordinate
// counter, and scatters each element to its permuted destination offset.
func transpose[T tensor.DType](dst, src []T, shape tensor.Shape, axes []int) {
	ndim := len(shape)

	// Compute destination shape and strides
	dstShape := make(tensor.Shape, ndim)
	for i, ax := range axes {
		dstShape[i] = shape[ax]
	}
	dstStrides := dstShape.ComputeStrides()

	// srcToDst[d] is the destination stride of source dimension d.
	srcToDst := make([]int, ndim)
	for dstDim, srcDim := range axes {
		srcToDst[srcDim] = dstStrides[dstDim]
	}

	coords := make([]int, ndim)
	dstIdx := 0
	for i := range src {
		dst[dstIdx] = src[i]

		// Increment the coordinate counter, last dimension fastest.
		for dim := ndim - 1; dim >= 0; dim-- {
			coords[dim]++
			dstIdx += srcToDst[dim]
			if coords[dim] < shape[dim] {
				break
			}
			dstIdx -= coords[dim] * srcToDst[dim]
			coords[dim] = 0
		}
	}
}
