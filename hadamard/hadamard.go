// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package hadamard

import (
	internalcpu "github.com/born-ml/fht/internal/cpu"
	"github.com/born-ml/fht/internal/hadamard"
	"github.com/born-ml/fht/internal/parallel"
	"github.com/born-ml/fht/tensor"
)

// Transformer computes Hadamard transforms on a backend.
type Transformer = hadamard.Transformer

// Accelerator runs the butterfly stages on a device other than the CPU.
type Accelerator = hadamard.Accelerator

// Config controls how a Transformer executes. It never changes results.
type Config = hadamard.Config

// Option configures a Transformer.
type Option = hadamard.Option

// ParallelConfig controls the worker pool used by the CPU kernels.
type ParallelConfig = parallel.Config

// Features describes the CPU capabilities used to pick a kernel.
type Features = internalcpu.Features

// AxisSpec selects which axes of a tensor are transformed.
type AxisSpec = hadamard.AxisSpec

// AxisError describes a transformed axis whose length is not a valid
// transform length.
type AxisError = hadamard.AxisError

// Sentinel errors.
var (
	ErrUnsupportedRank        = hadamard.ErrUnsupportedRank
	ErrInvalidShape           = hadamard.ErrInvalidShape
	ErrInvalidAxisSpec        = hadamard.ErrInvalidAxisSpec
	ErrUnsupportedElementType = hadamard.ErrUnsupportedElementType
	ErrNilTensor              = hadamard.ErrNilTensor
)

// New creates a Transformer on backend. A nil backend selects the CPU backend.
//
// Example:
//
//	h := hadamard.New(cpu.New(), hadamard.WithParallel(hadamard.SequentialParallel()))
//	y, err := h.Transform(x, hadamard.AllAxes(), hadamard.As(tensor.Float64))
func New(backend tensor.Backend, opts ...Option) *Transformer {
	return hadamard.New(backend, opts...)
}

// Default returns the shared Transformer used by the package-level functions.
func Default() *Transformer {
	return hadamard.Default()
}

// DefaultConfig returns a configuration using all CPUs and the detected
// CPU features, without an accelerator.
func DefaultConfig() Config {
	return hadamard.DefaultConfig()
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return hadamard.WithConfig(cfg)
}

// WithParallel sets the worker pool configuration.
func WithParallel(p ParallelConfig) Option {
	return hadamard.WithParallel(p)
}

// WithFeatures overrides the detected CPU features.
func WithFeatures(f Features) Option {
	return hadamard.WithFeatures(f)
}

// WithAccelerator routes large float32 transforms to acc.
func WithAccelerator(acc Accelerator) Option {
	return hadamard.WithAccelerator(acc)
}

// DefaultParallel returns a worker pool configuration sized to the CPU count.
func DefaultParallel() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialParallel returns a configuration that runs on the calling goroutine.
func SequentialParallel() ParallelConfig {
	return parallel.Sequential()
}

// DetectFeatures reports the CPU features of the current process.
func DetectFeatures() Features {
	return internalcpu.DetectFeatures()
}

// GenericFeatures returns a feature set that selects the plain radix-2 kernel.
func GenericFeatures() Features {
	return internalcpu.Generic()
}

// Transform applies the transform over axes of a 1D, 2D or 3D tensor using
// the default Transformer.
func Transform(x *tensor.RawTensor, axes AxisSpec, et ElementType) (*tensor.RawTensor, error) {
	return hadamard.Transform(x, axes, et)
}

// Transform1D transforms a 1D tensor.
func Transform1D(x *tensor.RawTensor, et ElementType) (*tensor.RawTensor, error) {
	return hadamard.Transform1D(x, et)
}

// Transform2D transforms a 2D tensor over axes.
func Transform2D(x *tensor.RawTensor, axes AxisSpec, et ElementType) (*tensor.RawTensor, error) {
	return hadamard.Transform2D(x, axes, et)
}

// Transform3D transforms a 3D tensor over axes.
func Transform3D(x *tensor.RawTensor, axes AxisSpec, et ElementType) (*tensor.RawTensor, error) {
	return hadamard.Transform3D(x, axes, et)
}
