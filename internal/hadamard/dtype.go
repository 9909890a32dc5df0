package hadamard

import (
	"fmt"

	"github.com/born-ml/fht/internal/tensor"
)

// ElementType chooses the element type of the result. The zero value keeps
// the input's native type.
type ElementType struct {
	dtype tensor.DataType
	set   bool
}

// NativeType keeps the input's element type.
func NativeType() ElementType {
	return ElementType{}
}

// As requests the result in dt. The input is cast to dt before the
// transform runs.
func As(dt tensor.DataType) ElementType {
	return ElementType{dtype: dt, set: true}
}

// String returns the requested type name, or "native".
func (e ElementType) String() string {
	if !e.set {
		return "native"
	}
	return e.dtype.String()
}

// SupportedTypes lists the element types the transform computes in.
func SupportedTypes() []tensor.DataType {
	return []tensor.DataType{tensor.Int32, tensor.Int64, tensor.Float32, tensor.Float64}
}

// resolve picks the working type for an input of type native.
func (e ElementType) resolve(native tensor.DataType) (tensor.DataType, error) {
	dt := native
	if e.set {
		dt = e.dtype
	}
	if _, ok := rowKernels[dt]; !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedElementType, dt)
	}
	return dt, nil
}
