package hadamard

import (
	"errors"
	"fmt"

	"github.com/born-ml/fht/internal/tensor"
)

// Sentinel errors returned by the transform. All of them are detected before
// any computation starts, so a failed call never produces a partial result.
var (
	// ErrUnsupportedRank is returned for tensors that are not 1-, 2- or 3-dimensional,
	// or when a rank-specific entry point receives a tensor of another rank.
	ErrUnsupportedRank = errors.New("hadamard: unsupported rank")

	// ErrInvalidShape is returned when a transformed axis has a length that is
	// not a power of two greater than 1.
	ErrInvalidShape = errors.New("hadamard: transform length must be a power of two greater than 1")

	// ErrInvalidAxisSpec is returned when the axes argument does not name a
	// valid axis combination for the tensor's rank.
	ErrInvalidAxisSpec = errors.New("hadamard: invalid axis specification")

	// ErrUnsupportedElementType is returned when the element type is not one of
	// int32, int64, float32 or float64.
	ErrUnsupportedElementType = errors.New("hadamard: unsupported element type")

	// ErrNilTensor is returned when a nil tensor is passed in.
	ErrNilTensor = errors.New("hadamard: nil tensor")
)

// AxisError describes a transformed axis whose length is not a valid
// transform length. It unwraps to ErrInvalidShape.
type AxisError struct {
	Axis   int          // Offending axis
	Length int          // Its length
	Shape  tensor.Shape // Full tensor shape
}

// Error implements the error interface.
func (e *AxisError) Error() string {
	return fmt.Sprintf("hadamard: axis %d of shape %v has length %d, want a power of two >= 2",
		e.Axis, e.Shape, e.Length)
}

// Unwrap returns ErrInvalidShape.
func (e *AxisError) Unwrap() error {
	return ErrInvalidShape
}
