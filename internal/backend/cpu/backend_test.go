package cpu

import (
	"slices"
	"testing"

	"github.com/born-ml/fht/internal/tensor"
)

// Helper to create test backend.
func newTestBackend() *CPUBackend {
	return New()
}

// TestCPUBackend_New tests backend creation.
func TestCPUBackend_New(t *testing.T) {
	backend := New()
	if backend == nil {
		t.Fatal("New() returned nil")
	}
	if backend.Name() != "CPU" {
		t.Errorf("Expected name 'CPU', got '%s'", backend.Name())
	}
	if backend.Device() != tensor.CPU {
		t.Errorf("Expected device CPU, got %v", backend.Device())
	}
}

// TestCPUBackend_Reshape tests that reshape keeps row-major order and copies.
func TestCPUBackend_Reshape(t *testing.T) {
	backend := newTestBackend()

	x, _ := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 2, 2})
	y := backend.Reshape(x, tensor.Shape{4, 2})

	if !slices.Equal(y.Shape(), tensor.Shape{4, 2}) {
		t.Fatalf("Expected shape (4, 2), got %v", y.Shape())
	}
	for i, v := range y.AsFloat64() {
		if v != float64(i+1) {
			t.Errorf("y[%d] = %v, want %v", i, v, i+1)
		}
	}

	y.AsFloat64()[0] = -1
	if x.AsFloat64()[0] != 1 {
		t.Error("Reshape result must not alias its input")
	}
}

// TestCPUBackend_ReshapeMismatchPanics tests element-count validation.
func TestCPUBackend_ReshapeMismatchPanics(t *testing.T) {
	backend := newTestBackend()
	x, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)

	defer func() {
		if recover() == nil {
			t.Error("Reshape to a different element count should panic")
		}
	}()
	backend.Reshape(x, tensor.Shape{4})
}

// TestCPUBackend_Transpose2D tests the default (reverse) permutation.
func TestCPUBackend_Transpose2D(t *testing.T) {
	backend := newTestBackend()

	// [[1, 2, 3],
	//  [4, 5, 6]]
	x, _ := tensor.FromSlice([]int32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	y := backend.Transpose(x)

	if !slices.Equal(y.Shape(), tensor.Shape{3, 2}) {
		t.Fatalf("Expected shape (3, 2), got %v", y.Shape())
	}
	want := []int32{1, 4, 2, 5, 3, 6}
	for i, v := range y.AsInt32() {
		if v != want[i] {
			t.Errorf("y[%d] = %d, want %d", i, v, want[i])
		}
	}
}

// TestCPUBackend_Transpose3D checks every permutation against explicit indexing.
func TestCPUBackend_Transpose3D(t *testing.T) {
	backend := newTestBackend()
	shape := tensor.Shape{2, 3, 4}

	data := make([]int64, shape.NumElements())
	for i := range data {
		data[i] = int64(i)
	}
	x, _ := tensor.FromSlice(data, shape)

	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}
	for _, perm := range perms {
		y := backend.Transpose(x, perm...)
		ys := y.Shape()
		strides := ys.ComputeStrides()
		src := x.Strides()
		out := y.AsInt64()

		for a := 0; a < ys[0]; a++ {
			for b := 0; b < ys[1]; b++ {
				for c := 0; c < ys[2]; c++ {
					dst := [3]int{a, b, c}
					var coords [3]int
					for k, ax := range perm {
						coords[ax] = dst[k]
					}
					want := int64(coords[0]*src[0] + coords[1]*src[1] + coords[2]*src[2])
					got := out[a*strides[0]+b*strides[1]+c*strides[2]]
					if got != want {
						t.Fatalf("perm %v at (%d,%d,%d): got %d, want %d", perm, a, b, c, got, want)
					}
				}
			}
		}
	}
}

// TestCPUBackend_SwapAxesRoundTrip tests that swapping twice is the identity.
func TestCPUBackend_SwapAxesRoundTrip(t *testing.T) {
	backend := newTestBackend()

	data := make([]float32, 24)
	for i := range data {
		data[i] = float32(i) * 0.5
	}
	x, _ := tensor.FromSlice(data, tensor.Shape{2, 3, 4})

	y := backend.SwapAxes(x, 1, 2)
	if !slices.Equal(y.Shape(), tensor.Shape{2, 4, 3}) {
		t.Fatalf("Expected shape (2, 4, 3), got %v", y.Shape())
	}

	z := backend.SwapAxes(y, 1, 2)
	for i, v := range z.AsFloat32() {
		if v != data[i] {
			t.Errorf("z[%d] = %v, want %v", i, v, data[i])
		}
	}

	same := backend.SwapAxes(x, 1, 1)
	same.AsFloat32()[0] = 42
	if x.AsFloat32()[0] != 0 {
		t.Error("SwapAxes(i, i) must return a copy")
	}
}

// TestCPUBackend_Cast tests conversion between dtypes.
func TestCPUBackend_Cast(t *testing.T) {
	backend := newTestBackend()

	t.Run("FloatToIntTruncates", func(t *testing.T) {
		x, _ := tensor.FromSlice([]float64{1.9, -1.9, 0.5, 3}, tensor.Shape{4})
		y := backend.Cast(x, tensor.Int32)
		want := []int32{1, -1, 0, 3}
		for i, v := range y.AsInt32() {
			if v != want[i] {
				t.Errorf("y[%d] = %d, want %d", i, v, want[i])
			}
		}
	})

	t.Run("IntToFloat", func(t *testing.T) {
		x, _ := tensor.FromSlice([]int64{-2, 0, 5}, tensor.Shape{3})
		y := backend.Cast(x, tensor.Float32)
		want := []float32{-2, 0, 5}
		for i, v := range y.AsFloat32() {
			if v != want[i] {
				t.Errorf("y[%d] = %v, want %v", i, v, want[i])
			}
		}
	})

	t.Run("BoolToInt64", func(t *testing.T) {
		x, _ := tensor.FromSlice([]bool{true, false}, tensor.Shape{2})
		y := backend.Cast(x, tensor.Int64)
		if got := y.AsInt64(); got[0] != 1 || got[1] != 0 {
			t.Errorf("Cast(bool) = %v", got)
		}
	})

	t.Run("SameDTypeCopies", func(t *testing.T) {
		x, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
		y := backend.Cast(x, tensor.Float64)
		y.AsFloat64()[0] = 7
		if x.AsFloat64()[0] != 1 {
			t.Error("Cast to the same dtype must return a copy")
		}
	})
}
