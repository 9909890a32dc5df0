// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/fht/internal/backend/cpu"
	"github.com/born-ml/fht/tensor"
)

// Backend represents the CPU backend implementation.
//
// The CPU backend provides the pure Go array operations the transform
// decomposes into: reshape, transpose, axis swaps and casts.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/fht/backend/cpu"
//	    "github.com/born-ml/fht/hadamard"
//	)
//
//	func main() {
//	    h := hadamard.New(cpu.New())
//	}
func New() *Backend {
	return internalcpu.New()
}
