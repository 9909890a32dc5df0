// Package webgpu runs the Hadamard butterfly stages as WebGPU compute
// shaders. Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU
// bindings, available on Windows; other platforms get a stub whose
// constructor returns ErrUnavailable.
package webgpu

import (
	"errors"
	"fmt"

	"github.com/born-ml/fht/internal/hadamard"
)

var _ hadamard.Accelerator = (*Accelerator)(nil)

var (
	// ErrUnavailable is returned when no WebGPU adapter can be used.
	ErrUnavailable = errors.New("webgpu: not available")

	// ErrInvalidLayout is returned when the data does not split into rows
	// of a power-of-two length.
	ErrInvalidLayout = errors.New("webgpu: invalid row layout")
)

// Name is the accelerator name reported to callers.
const Name = "WebGPU"

// validateLayout checks that total elements split into rows of length n,
// a power of two >= 2.
func validateLayout(total, n int) error {
	if n < 2 || n&(n-1) != 0 {
		return fmt.Errorf("%w: row length %d is not a power of two >= 2", ErrInvalidLayout, n)
	}
	if total == 0 || total%n != 0 {
		return fmt.Errorf("%w: %d elements do not split into rows of %d", ErrInvalidLayout, total, n)
	}
	return nil
}
