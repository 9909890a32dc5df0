// Package hadamard implements the orthonormal fast Walsh-Hadamard transform
// over one or more axes of 1D, 2D and 3D tensors.
//
// The transform of a length-n sequence x (n a power of two, n >= 2) is
// H_n·x / √n, where H_n is the Sylvester-ordered Hadamard matrix
// H_n[i][j] = (-1)^popcount(i&j). Transforming several axes applies the
// transform along each of them; the result is divided once by the square
// root of the product of the transformed axis lengths. Because H_n/√n is
// symmetric and orthogonal, applying the transform twice over the same axes
// returns the input (exactly for integer inputs without overflow, up to
// rounding for floats).
//
// Basic usage:
//
//	x, _ := tensor.FromSlice([]float64{1, 0, 0, 0}, tensor.Shape{4})
//	y, err := hadamard.Transform(x, hadamard.DefaultAxes(), hadamard.NativeType())
//	// y = [0.5, 0.5, 0.5, 0.5]
//
// Calls are stateless and safe for concurrent use. The input tensor is never
// modified.
package hadamard

import (
	"fmt"
	"math"
	"sync"

	"github.com/born-ml/fht/internal/backend/cpu"
	cpufeat "github.com/born-ml/fht/internal/cpu"
	"github.com/born-ml/fht/internal/parallel"
	"github.com/born-ml/fht/internal/tensor"
)

// Accelerator runs the butterfly on a device other than the CPU.
//
// Implementations:
//   - WebGPU: compute shader, float32 only (internal/backend/webgpu)
type Accelerator interface {
	// Name returns the accelerator name.
	Name() string

	// ButterflyFloat32 replaces every contiguous row of length n in data
	// with its unnormalized transform.
	ButterflyFloat32(data []float32, n int) error
}

// Config controls how a Transformer executes. It never changes results:
// every execution path is bit-identical to the sequential radix-2 kernel,
// except accelerators, which match to float32 rounding.
type Config struct {
	// Parallel controls the worker pool used for rows and long single rows.
	Parallel parallel.Config

	// Features selects the butterfly variant. The radix-4 kernel is used
	// when the CPU has a vector unit and ForceGeneric is off.
	Features cpufeat.Features

	// MinParallelLength is the smallest element count split across workers.
	MinParallelLength int

	// Accelerator, when set, runs float32 transforms of at least
	// MinAcceleratorElements elements.
	Accelerator            Accelerator
	MinAcceleratorElements int
}

// DefaultConfig returns a configuration using all CPUs and the detected
// CPU features, without an accelerator.
func DefaultConfig() Config {
	return Config{
		Parallel:               parallel.DefaultConfig(),
		Features:               cpufeat.DetectFeatures(),
		MinParallelLength:      1 << 14,
		MinAcceleratorElements: 1 << 16,
	}
}

// Option configures a Transformer.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithParallel sets the worker pool configuration.
func WithParallel(p parallel.Config) Option {
	return func(c *Config) {
		c.Parallel = p
	}
}

// WithFeatures overrides the detected CPU features.
func WithFeatures(f cpufeat.Features) Option {
	return func(c *Config) {
		c.Features = f
	}
}

// WithAccelerator routes large float32 transforms to acc.
func WithAccelerator(acc Accelerator) Option {
	return func(c *Config) {
		c.Accelerator = acc
	}
}

// Transformer computes Hadamard transforms on a backend.
type Transformer struct {
	backend tensor.Backend
	cfg     Config
	plan    rowPlan
}

// New creates a Transformer on backend. A nil backend selects the CPU backend.
func New(backend tensor.Backend, opts ...Option) *Transformer {
	if backend == nil {
		backend = cpu.New()
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Transformer{
		backend: backend,
		cfg:     cfg,
		plan: rowPlan{
			radix4:      cfg.Features.HasVectorUnit() && !cfg.Features.ForceGeneric,
			par:         cfg.Parallel,
			minParallel: max(cfg.MinParallelLength, 1),
		},
	}
}

// Backend returns the array backend.
func (h *Transformer) Backend() tensor.Backend {
	return h.backend
}

// Config returns the configuration the Transformer was built with.
func (h *Transformer) Config() Config {
	return h.cfg
}

// Transform applies the orthonormal transform to x over axes and returns the
// result in the element type chosen by et.
//
// Validation happens before any computation, in this order: rank (1 to 3),
// axes, the length of every transformed axis, and the element type. Integer
// results are truncated toward zero after the single division by the square
// root of the transform length; intermediate integer sums wrap on overflow.
func (h *Transformer) Transform(x *tensor.RawTensor, axes AxisSpec, et ElementType) (*tensor.RawTensor, error) {
	if x == nil {
		return nil, ErrNilTensor
	}

	rank := x.Rank()
	if rank < 1 || rank > 3 {
		return nil, fmt.Errorf("%w: got %dD tensor %v, want 1D, 2D or 3D", ErrUnsupportedRank, rank, x.Shape())
	}

	mask, err := axes.resolve(rank)
	if err != nil {
		return nil, err
	}

	length, err := transformLength(x.Shape(), mask)
	if err != nil {
		return nil, err
	}

	dt, err := et.resolve(x.DType())
	if err != nil {
		return nil, err
	}

	work := h.backend.Cast(x, dt)

	var out *tensor.RawTensor
	switch rank {
	case 1:
		out, err = work, h.rows(work, length)
	case 2:
		out, err = h.transform2D(work, mask)
	default:
		out, err = h.transform3D(work, mask)
	}
	if err != nil {
		return nil, err
	}

	normalize(out, length)
	return out, nil
}

// Transform1D transforms a 1D tensor.
func (h *Transformer) Transform1D(x *tensor.RawTensor, et ElementType) (*tensor.RawTensor, error) {
	if err := requireRank(x, 1); err != nil {
		return nil, err
	}
	return h.Transform(x, DefaultAxes(), et)
}

// Transform2D transforms a 2D tensor over axes.
func (h *Transformer) Transform2D(x *tensor.RawTensor, axes AxisSpec, et ElementType) (*tensor.RawTensor, error) {
	if err := requireRank(x, 2); err != nil {
		return nil, err
	}
	return h.Transform(x, axes, et)
}

// Transform3D transforms a 3D tensor over axes.
func (h *Transformer) Transform3D(x *tensor.RawTensor, axes AxisSpec, et ElementType) (*tensor.RawTensor, error) {
	if err := requireRank(x, 3); err != nil {
		return nil, err
	}
	return h.Transform(x, axes, et)
}

// rows runs the unnormalized kernel in place on every row of length n of t.
func (h *Transformer) rows(t *tensor.RawTensor, n int) error {
	if acc := h.cfg.Accelerator; acc != nil && t.DType() == tensor.Float32 &&
		t.NumElements() >= h.cfg.MinAcceleratorElements {
		if err := acc.ButterflyFloat32(t.AsFloat32(), n); err != nil {
			return fmt.Errorf("hadamard: %s accelerator: %w", acc.Name(), err)
		}
		return nil
	}

	rowKernels[t.DType()](t, n, h.plan)
	return nil
}

func requireRank(x *tensor.RawTensor, want int) error {
	if x == nil {
		return ErrNilTensor
	}
	if x.Rank() != want {
		return fmt.Errorf("%w: got %dD tensor %v, want %dD", ErrUnsupportedRank, x.Rank(), x.Shape(), want)
	}
	return nil
}

// transformLength checks every axis in mask and returns the product of their
// lengths.
func transformLength(shape tensor.Shape, mask axisMask) (int, error) {
	length := 1
	for k, d := range shape {
		if !mask.has(k) {
			continue
		}
		if !IsPowerOfTwo(d) {
			return 0, &AxisError{Axis: k, Length: d, Shape: shape.Clone()}
		}
		length *= d
	}
	return length, nil
}

// normalize divides every element by √length and stores the result back in
// the tensor's own type. Integer tensors of a power-of-four length divide by
// the integer root in their own type; everything else divides in float64.
// Both truncate integer results toward zero.
func normalize(t *tensor.RawTensor, length int) {
	if k := log2(length); k%2 == 0 {
		root := 1 << (k / 2)
		switch t.DType() {
		case tensor.Int32:
			scaleExact(t.AsInt32(), int32(root))
			return
		case tensor.Int64:
			scaleExact(t.AsInt64(), int64(root))
			return
		}
	}

	norm := math.Sqrt(float64(length))
	switch t.DType() {
	case tensor.Float32:
		scale(t.AsFloat32(), norm)
	case tensor.Float64:
		scale(t.AsFloat64(), norm)
	case tensor.Int32:
		scale(t.AsInt32(), norm)
	case tensor.Int64:
		scale(t.AsInt64(), norm)
	}
}

func scale[T Number](data []T, norm float64) {
	for i, v := range data {
		data[i] = T(float64(v) / norm)
	}
}

func scaleExact[T ~int32 | ~int64](data []T, root T) {
	for i := range data {
		data[i] /= root
	}
}

var defaultTransformer = sync.OnceValue(func() *Transformer {
	return New(cpu.New())
})

// Default returns the shared CPU Transformer used by the package-level functions.
func Default() *Transformer {
	return defaultTransformer()
}

// Transform applies the transform with the default Transformer.
func Transform(x *tensor.RawTensor, axes AxisSpec, et ElementType) (*tensor.RawTensor, error) {
	return Default().Transform(x, axes, et)
}

// Transform1D transforms a 1D tensor with the default Transformer.
func Transform1D(x *tensor.RawTensor, et ElementType) (*tensor.RawTensor, error) {
	return Default().Transform1D(x, et)
}

// Transform2D transforms a 2D tensor with the default Transformer.
func Transform2D(x *tensor.RawTensor, axes AxisSpec, et ElementType) (*tensor.RawTensor, error) {
	return Default().Transform2D(x, axes, et)
}

// Transform3D transforms a 3D tensor with the default Transformer.
func Transform3D(x *tensor.RawTensor, axes AxisSpec, et ElementType) (*tensor.RawTensor, error) {
	return Default().Transform3D(x, axes, et)
}
