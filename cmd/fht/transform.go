package main

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/born-ml/fht/internal/backend/cpu"
	"github.com/born-ml/fht/internal/backend/webgpu"
	"github.com/born-ml/fht/internal/hadamard"
	"github.com/born-ml/fht/internal/parallel"
	"github.com/born-ml/fht/internal/serialization"
	"github.com/born-ml/fht/internal/tensor"
)

// errVerify is returned when --verify finds a mismatch.
var errVerify = errors.New("verification failed")

// axesKey is the metadata key recording the transformed axes.
const axesKey = "fht.axes"

type transformOptions struct {
	in, out    string
	tensor     string
	axes       string
	dtype      string
	workers    int
	sequential bool
	gpu        bool
	verify     bool
}

func newTransformCmd(a *app) *cobra.Command {
	var opts transformOptions

	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform the tensors of a SafeTensors file",
		Long: `Transform applies the orthonormal Walsh-Hadamard transform to one tensor
(--tensor) or to every tensor of the input file and writes the result.
Tensors that are not selected are copied unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTransform(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.in, "in", "i", "", "input SafeTensors file (required)")
	f.StringVarP(&opts.out, "out", "o", "", `output SafeTensors file, "-" for stdout (required)`)
	f.StringVarP(&opts.tensor, "tensor", "t", "", "transform only this tensor")
	f.StringVarP(&opts.axes, "axes", "a", "", `axes to transform: "all", "1" or "0,2" (default all)`)
	f.StringVar(&opts.dtype, "dtype", "", "result element type: int32, int64, float32 or float64 (default native)")
	f.IntVar(&opts.workers, "workers", 0, "worker goroutines (default: number of CPUs)")
	f.BoolVar(&opts.sequential, "sequential", false, "run on the calling goroutine only")
	f.BoolVar(&opts.gpu, "gpu", false, "run float32 transforms on the WebGPU device when available")
	f.BoolVar(&opts.verify, "verify", false, "check results against the dense reference transform")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (a *app) runTransform(cmd *cobra.Command, opts transformOptions) error {
	axes, err := hadamard.ParseAxes(opts.axes)
	if err != nil {
		return err
	}

	et := hadamard.NativeType()
	if opts.dtype != "" {
		dt, err := tensor.ParseDataType(opts.dtype)
		if err != nil {
			return err
		}
		et = hadamard.As(dt)
	}

	h, release := a.newTransformer(opts)
	defer release()

	r, err := serialization.Open(opts.in)
	if err != nil {
		return err
	}
	defer r.Close()

	selected := r.TensorNames()
	if opts.tensor != "" {
		if _, err := r.TensorInfo(opts.tensor); err != nil {
			return err
		}
		selected = []string{opts.tensor}
	}

	outputs, err := r.LoadAll()
	if err != nil {
		return err
	}

	for _, name := range selected {
		x := outputs[name]
		start := time.Now()
		y, err := h.Transform(x, axes, et)
		if err != nil {
			return fmt.Errorf("tensor %s: %w", name, err)
		}
		a.logger.Info("transformed",
			"tensor", name, "shape", x.Shape(), "dtype", y.DType(), "axes", axes, "elapsed", time.Since(start))

		if opts.verify {
			if err := a.verify(name, x, y, axes); err != nil {
				return err
			}
		}
		outputs[name] = y
	}

	metadata := make(map[string]string)
	maps.Copy(metadata, r.Metadata())
	delete(metadata, serialization.ChecksumKey)
	metadata[axesKey] = axes.String()

	if opts.out == "-" {
		w := serialization.NewStreamWriter(cmd.OutOrStdout())
		if err := w.WriteTensors(outputs, metadata); err != nil {
			return err
		}
		a.logger.Info("written to stdout", "transformed", len(selected), "tensors", len(outputs))
		return w.Close()
	}

	if err := serialization.WriteSafeTensors(opts.out, outputs, metadata); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d of %d tensor(s) transformed\n", opts.out, len(selected), len(outputs))
	return nil
}

// newTransformer builds the Transformer described by the flags. The returned
// function releases the accelerator, if any.
func (a *app) newTransformer(opts transformOptions) (*hadamard.Transformer, func()) {
	par := parallel.DefaultConfig()
	if opts.workers > 0 {
		par.NumWorkers = opts.workers
		par.Enabled = opts.workers > 1
	}
	if opts.sequential {
		par = parallel.Sequential()
	}
	options := []hadamard.Option{hadamard.WithParallel(par)}
	release := func() {}

	if opts.gpu {
		acc, err := webgpu.New()
		if err != nil {
			a.logger.Warn("GPU unavailable, using CPU", "err", err)
		} else {
			a.logger.Debug("using accelerator", "name", acc.Name())
			options = append(options, hadamard.WithAccelerator(acc))
			release = acc.Release
		}
	}

	a.logger.Debug("transformer",
		"workers", par.NumWorkers, "parallel", par.Enabled, "gpu", opts.gpu)
	return hadamard.New(cpu.New(), options...), release
}

// verify compares y with the dense reference transform of x. Integer results
// may differ by one unit from truncation; float results by a relative 1e-4
// (float32) or 1e-9 (float64).
func (a *app) verify(name string, x, y *tensor.RawTensor, axes hadamard.AxisSpec) error {
	// The transform casts before it runs, so the reference starts from the cast input.
	if x.DType() != y.DType() {
		x = cpu.New().Cast(x, y.DType())
	}
	ref, err := hadamard.Reference(x, axes)
	if err != nil {
		return fmt.Errorf("tensor %s: %w", name, err)
	}

	want := ref.AsFloat64()
	got := tensor.Float64s(y)

	var maxAbs, maxDiff float64
	for i := range want {
		maxAbs = math.Max(maxAbs, math.Abs(want[i]))
		maxDiff = math.Max(maxDiff, math.Abs(want[i]-got[i]))
	}

	var tol float64
	switch y.DType() {
	case tensor.Float32:
		tol = 1e-4 * math.Max(1, maxAbs)
	case tensor.Float64:
		tol = 1e-9 * math.Max(1, maxAbs)
	default:
		tol = 1
	}

	a.logger.Debug("verified", "tensor", name, "max_diff", maxDiff, "tolerance", tol)
	if maxDiff > tol {
		return fmt.Errorf("%w: tensor %s differs from the reference by %g (tolerance %g)", errVerify, name, maxDiff, tol)
	}
	return nil
}
