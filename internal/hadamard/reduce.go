package hadamard

import (
	"fmt"

	"github.com/born-ml/fht/internal/tensor"
)

type mergeKind uint8

const (
	mergeAll      mergeKind = iota // (d0*d1*d2,)
	mergeLeading                   // (d0*d1, d2)
	mergeTrailing                  // (d0, d1*d2)
)

// reduction rewrites one 3D axis set as a transform of lower rank.
type reduction struct {
	swap12 bool     // swap axes 1 and 2, apply the reduction for then, swap back
	then   axisMask // used when swap12 is set
	merge  mergeKind
	axis2D axisMask // axes of the merged 2D tensor to transform
}

// reductions3D maps every valid 3D axis set to its lower-rank rewrite.
// Merging two adjacent transformed axes is exact because the Sylvester
// matrix of size a*b is the Kronecker product of those of sizes a and b.
var reductions3D = map[axisMask]reduction{
	mask012: {merge: mergeAll},
	mask01:  {merge: mergeLeading, axis2D: mask0},
	mask12:  {merge: mergeTrailing, axis2D: mask1},
	mask02:  {swap12: true, then: mask01},
	mask0:   {merge: mergeTrailing, axis2D: mask0},
	mask2:   {merge: mergeLeading, axis2D: mask1},
	mask1:   {swap12: true, then: mask2},
}

// transform3D runs the unnormalized transform of a 3D tensor over axes.
func (h *Transformer) transform3D(x *tensor.RawTensor, axes axisMask) (*tensor.RawTensor, error) {
	r, ok := reductions3D[axes]
	if !ok {
		return nil, fmt.Errorf("%w: axis set %03b on a 3D tensor", ErrInvalidAxisSpec, axes)
	}

	if r.swap12 {
		swapped := h.backend.SwapAxes(x, 1, 2)
		out, err := h.transform3D(swapped, r.then)
		if err != nil {
			return nil, err
		}
		return h.backend.SwapAxes(out, 1, 2), nil
	}

	d := x.Shape()
	switch r.merge {
	case mergeAll:
		flat := h.backend.Reshape(x, tensor.Shape{d.NumElements()})
		if err := h.rows(flat, flat.NumElements()); err != nil {
			return nil, err
		}
		return h.backend.Reshape(flat, d), nil
	case mergeLeading:
		merged := h.backend.Reshape(x, tensor.Shape{d[0] * d[1], d[2]})
		out, err := h.transform2D(merged, r.axis2D)
		if err != nil {
			return nil, err
		}
		return h.backend.Reshape(out, d), nil
	default:
		merged := h.backend.Reshape(x, tensor.Shape{d[0], d[1] * d[2]})
		out, err := h.transform2D(merged, r.axis2D)
		if err != nil {
			return nil, err
		}
		return h.backend.Reshape(out, d), nil
	}
}
