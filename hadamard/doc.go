// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package hadamard computes the orthonormal fast Walsh-Hadamard transform of
// 1D, 2D and 3D tensors.
//
// The transform of a length-n sequence (n a power of two, n >= 2) is
// H_n·x / √n with H_n the Sylvester-ordered Hadamard matrix. Transforming
// several axes divides once by the square root of the product of their
// lengths, so the transform is its own inverse.
//
// # Basic Usage
//
//	x, _ := tensor.FromSlice([]float64{1, 0, 0, 0}, tensor.Shape{4})
//	y, err := hadamard.Transform(x, hadamard.DefaultAxes(), hadamard.NativeType())
//	// y = [0.5, 0.5, 0.5, 0.5]
//
// # Axes
//
// By default every axis is transformed. A subset is chosen with Axis, Axes
// or ParseAxes:
//
//	y, err := hadamard.Transform2D(x, hadamard.Axis(1), hadamard.NativeType())
//
// # Element Types
//
// Supported element types are int32, int64, float32 and float64. Integer
// results are truncated toward zero after normalization.
//
// # Thread Safety
//
// Transformers hold no mutable state and may be shared between goroutines.
package hadamard
