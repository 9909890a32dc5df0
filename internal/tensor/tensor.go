package tensor

import "fmt"

// FromSlice creates a CPU tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, DataTypeOf[T](), CPU)
	if err != nil {
		return nil, err
	}

	copy(View[T](raw), data)
	return raw, nil
}

// View returns the tensor data as a typed slice sharing the tensor's memory.
// Panics if T does not match the tensor's dtype.
func View[T DType](r *RawTensor) []T {
	var out any
	switch DataTypeOf[T]() {
	case Float32:
		out = r.AsFloat32()
	case Float64:
		out = r.AsFloat64()
	case Int32:
		out = r.AsInt32()
	case Int64:
		out = r.AsInt64()
	case Uint8:
		out = r.AsUint8()
	case Bool:
		out = r.AsBool()
	}
	return out.([]T)
}

// Values returns a copy of the tensor data as a typed slice.
func Values[T DType](r *RawTensor) []T {
	src := View[T](r)
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// Float64s returns the tensor data converted to float64, whatever its dtype.
// Bool elements map to 0 and 1.
func Float64s(r *RawTensor) []float64 {
	out := make([]float64, r.NumElements())
	switch r.DType() {
	case Float32:
		for i, v := range r.AsFloat32() {
			out[i] = float64(v)
		}
	case Float64:
		copy(out, r.AsFloat64())
	case Int32:
		for i, v := range r.AsInt32() {
			out[i] = float64(v)
		}
	case Int64:
		for i, v := range r.AsInt64() {
			out[i] = float64(v)
		}
	case Uint8:
		for i, v := range r.AsUint8() {
			out[i] = float64(v)
		}
	case Bool:
		for i, v := range r.AsBool() {
			if v {
				out[i] = 1
			}
		}
	}
	return out
}
