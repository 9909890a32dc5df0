// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/fht/internal/tensor"

// Backend defines the array operations a compute backend provides.
// Every operation returns a new tensor and leaves its input untouched.
//
// Implementations:
//   - backend/cpu: Pure Go
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	y := backend.SwapAxes(x, 0, 1) // shape (3, 2)
type Backend interface {
	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor // Reshape preserving row-major order.
	Transpose(t *RawTensor, axes ...int) *RawTensor  // Permute dimensions.
	SwapAxes(t *RawTensor, i, j int) *RawTensor      // Exchange two dimensions.

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor // Cast to different data type.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
