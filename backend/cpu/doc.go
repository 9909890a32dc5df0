// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Row-major reshape, transpose and axis swaps
//   - Element type casts between all supported data types
//
// # Basic Usage
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	y := backend.SwapAxes(x, 0, 1)
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each operation allocates
// its result and does not share mutable state.
package cpu
