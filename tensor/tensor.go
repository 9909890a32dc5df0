// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/born-ml/fht/internal/tensor"
)

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	WebGPU Device = tensor.WebGPU
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// FromSlice creates a CPU tensor holding a copy of data.
//
// Example:
//
//	x, err := tensor.FromSlice([]int32{1, 2, 3, 4}, tensor.Shape{4})
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a CPU tensor filled with zeros.
func Zeros[T DType](shape Shape) *RawTensor {
	return tensor.Zeros[T](shape)
}

// Full creates a CPU tensor filled with value.
func Full[T DType](shape Shape, value T) *RawTensor {
	return tensor.Full(shape, value)
}

// View returns the tensor data as a typed slice sharing the tensor's memory.
// Panics if T does not match the tensor's dtype.
func View[T DType](r *RawTensor) []T {
	return tensor.View[T](r)
}

// Values returns a copy of the tensor data as a typed slice.
func Values[T DType](r *RawTensor) []T {
	return tensor.Values[T](r)
}

// Float64s returns the tensor data converted to float64.
func Float64s(r *RawTensor) []float64 {
	return tensor.Float64s(r)
}

// ParseDataType parses a data type name such as "float32" or "i64".
func ParseDataType(s string) (DataType, error) {
	return tensor.ParseDataType(s)
}

// DataTypeOf returns the DataType matching the type parameter T.
func DataTypeOf[T DType]() DataType {
	return tensor.DataTypeOf[T]()
}

// OneHot creates a CPU tensor that is zero except for value at flat index idx.
func OneHot[T DType](shape Shape, idx int, value T) *RawTensor {
	return tensor.OneHot(shape, idx, value)
}

// Rand creates a CPU tensor of uniform random values drawn from rng.
func Rand[T DType](shape Shape, rng *rand.Rand) *RawTensor {
	return tensor.Rand[T](shape, rng)
}
