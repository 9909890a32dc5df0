package tensor

import (
	"math/rand"
)

// Zeros creates a CPU tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float32](Shape{3, 4})
func Zeros[T DType](shape Shape) *RawTensor {
	raw, err := NewRaw(shape, DataTypeOf[T](), CPU)
	if err != nil {
		panic(err) // Shape validation should prevent this
	}
	return raw
}

// Full creates a CPU tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float64](Shape{2, 2}, 0.5)
func Full[T DType](shape Shape, value T) *RawTensor {
	t := Zeros[T](shape)
	data := View[T](t)
	for i := range data {
		data[i] = value
	}
	return t
}

// OneHot creates a CPU tensor that is zero everywhere except for value at the
// flat row-major index idx.
func OneHot[T DType](shape Shape, idx int, value T) *RawTensor {
	t := Zeros[T](shape)
	View[T](t)[idx] = value
	return t
}

// Rand creates a tensor filled from rng: floats uniformly in [0, 1),
// integers uniformly in [-limit, limit] where limit is 1<<10.
// Bool and uint8 are not supported.
func Rand[T DType](shape Shape, rng *rand.Rand) *RawTensor {
	const limit = 1 << 10

	t := Zeros[T](shape)
	switch data := any(View[T](t)).(type) {
	case []float32:
		for i := range data {
			data[i] = rng.Float32()
		}
	case []float64:
		for i := range data {
			data[i] = rng.Float64()
		}
	case []int32:
		for i := range data {
			data[i] = int32(rng.Intn(2*limit+1) - limit) //nolint:gosec // G115: bounded by limit.
		}
	case []int64:
		for i := range data {
			data[i] = int64(rng.Intn(2*limit+1) - limit)
		}
	default:
		panic("Rand only supports float32, float64, int32 and int64 types")
	}
	return t
}
