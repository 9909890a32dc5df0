// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor types of the Hadamard transform.
//
// The package exposes:
//   - RawTensor: a dense, contiguous, row-major array with a runtime element type
//   - Backend: the array operations a compute backend provides
//   - Shape, DataType, Device: core type definitions
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(x.Shape(), x.DType()) // (2, 2) float32
package tensor
