package cpu

import (
	"fmt"

	"github.com/born-ml/fht/internal/tensor"
)

// number is the set of element types that convert to each other with Go's
// conversion rules.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// Cast converts the tensor to a different data type.
// Float to integer conversion truncates toward zero. Casting to the same
// dtype returns a copy.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	if x.DType() == dtype {
		return x.Clone()
	}

	result, err := tensor.NewRaw(x.Shape(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	castImpl(result, x)

	return result
}

func castImpl(result, x *tensor.RawTensor) {
	// Dispatch based on source type
	switch x.DType() {
	case tensor.Float32:
		castFrom(result, x.AsFloat32())
	case tensor.Float64:
		castFrom(result, x.AsFloat64())
	case tensor.Int32:
		castFrom(result, x.AsInt32())
	case tensor.Int64:
		castFrom(result, x.AsInt64())
	case tensor.Uint8:
		castFrom(result, x.AsUint8())
	case tensor.Bool:
		castFromBool(result, x.AsBool())
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %v", x.DType()))
	}
}

func castFrom[S number](result *tensor.RawTensor, src []S) {
	switch result.DType() {
	case tensor.Float32:
		convert(result.AsFloat32(), src)
	case tensor.Float64:
		convert(result.AsFloat64(), src)
	case tensor.Int32:
		convert(result.AsInt32(), src)
	case tensor.Int64:
		convert(result.AsInt64(), src)
	case tensor.Uint8:
		convert(result.AsUint8(), src)
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %v", result.DType()))
	}
}

func castFromBool(result *tensor.RawTensor, src []bool) {
	ones := make([]uint8, len(src))
	for i, v := range src {
		if v {
			ones[i] = 1
		}
	}
	castFrom(result, ones)
}

func convert[D, S number](dst []D, src []S) {
	for i, v := range src {
		dst[i] = D(v)
	}
}
