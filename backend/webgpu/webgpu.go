// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides a WebGPU accelerator for the butterfly stages of
// the Hadamard transform.
//
// The accelerator runs on Windows through the go-webgpu bindings. On other
// platforms New returns ErrUnavailable and callers fall back to the CPU.
//
// Example:
//
//	gpu, err := webgpu.New()
//	if err != nil {
//	    log.Printf("webgpu: %v, using CPU", err)
//	}
//	var opts []hadamard.Option
//	if gpu != nil {
//	    defer gpu.Release()
//	    opts = append(opts, hadamard.WithAccelerator(gpu))
//	}
//	h := hadamard.New(cpu.New(), opts...)
package webgpu

import (
	"github.com/born-ml/fht/hadamard"
	internalwebgpu "github.com/born-ml/fht/internal/backend/webgpu"
)

// Accelerator runs float32 butterfly stages on a WebGPU device.
type Accelerator = internalwebgpu.Accelerator

// Compile-time check that Accelerator implements hadamard.Accelerator.
var _ hadamard.Accelerator = (*Accelerator)(nil)

// ErrUnavailable is returned when no WebGPU device can be used.
var ErrUnavailable = internalwebgpu.ErrUnavailable

// New initializes the WebGPU device and compiles the butterfly pipeline.
// Call Release when done to free GPU resources.
func New() (*Accelerator, error) {
	return internalwebgpu.New()
}

// IsAvailable reports whether a WebGPU adapter can be obtained.
//
// Example:
//
//	if webgpu.IsAvailable() {
//	    gpu, _ := webgpu.New()
//	    defer gpu.Release()
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}
