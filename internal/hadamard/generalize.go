package hadamard

import (
	"fmt"

	"github.com/born-ml/fht/internal/tensor"
)

// transform2D runs the unnormalized transform of a 2D tensor over axes.
//
// Both axes: the tensor is flattened and transformed as one sequence of
// d0*d1 elements, then reshaped back. One axis: that axis is swapped into
// the last position, every row is transformed, and the axes are swapped back.
func (h *Transformer) transform2D(x *tensor.RawTensor, axes axisMask) (*tensor.RawTensor, error) {
	shape := x.Shape()

	switch axes {
	case mask01:
		flat := h.backend.Reshape(x, tensor.Shape{shape.NumElements()})
		if err := h.rows(flat, flat.NumElements()); err != nil {
			return nil, err
		}
		return h.backend.Reshape(flat, shape), nil

	case mask1:
		if err := h.rows(x, shape[1]); err != nil {
			return nil, err
		}
		return x, nil

	case mask0:
		swapped := h.backend.SwapAxes(x, 0, 1)
		if err := h.rows(swapped, shape[0]); err != nil {
			return nil, err
		}
		return h.backend.SwapAxes(swapped, 0, 1), nil
	}

	return nil, fmt.Errorf("%w: axis set %03b on a 2D tensor", ErrInvalidAxisSpec, axes)
}
