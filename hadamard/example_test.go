package hadamard_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/born-ml/fht/backend/cpu"
	"github.com/born-ml/fht/hadamard"
	"github.com/born-ml/fht/tensor"
)

func ExampleTransform() {
	x, err := tensor.FromSlice([]float64{1, 0, 0, 0}, tensor.Shape{4})
	if err != nil {
		log.Fatal(err)
	}

	y, err := hadamard.Transform(x, hadamard.DefaultAxes(), hadamard.NativeType())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(tensor.Values[float64](y))
	// Output: [0.5 0.5 0.5 0.5]
}

func ExampleTransform1D_involution() {
	x, _ := tensor.FromSlice([]int32{1, 2, 3, 4}, tensor.Shape{4})

	y, _ := hadamard.Transform1D(x, hadamard.NativeType())
	z, _ := hadamard.Transform1D(y, hadamard.NativeType())

	fmt.Println(tensor.Values[int32](y))
	fmt.Println(tensor.Values[int32](z))
	// Output:
	// [5 -1 -2 0]
	// [1 2 3 4]
}

func ExampleTransform2D() {
	x, _ := tensor.FromSlice([]float64{
		1, 1, 1, 1,
		1, 0, 0, 0,
	}, tensor.Shape{2, 4})

	y, err := hadamard.Transform2D(x, hadamard.Axis(1), hadamard.NativeType())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(y.Shape(), tensor.Values[float64](y))
	// Output: (2, 4) [2 0 0 0 0.5 0.5 0.5 0.5]
}

func ExampleNew() {
	h := hadamard.New(cpu.New(),
		hadamard.WithParallel(hadamard.SequentialParallel()),
		hadamard.WithFeatures(hadamard.GenericFeatures()),
	)

	x, _ := tensor.FromSlice([]int64{1, 2, 3, 4}, tensor.Shape{4})
	y, err := h.Transform(x, hadamard.AllAxes(), hadamard.As(tensor.Float32))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(y.DType(), tensor.Values[float32](y))
	// Output: float32 [5 -1 -2 0]
}

func ExampleParseAxes() {
	spec, err := hadamard.ParseAxes("(2, 0)")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(spec)
	// Output: 2,0
}

func ExampleAxisError() {
	x, _ := tensor.FromSlice([]float64{1, 2, 3}, tensor.Shape{3})

	_, err := hadamard.Transform(x, hadamard.DefaultAxes(), hadamard.NativeType())

	var axisErr *hadamard.AxisError
	fmt.Println(errors.Is(err, hadamard.ErrInvalidShape))
	fmt.Println(errors.As(err, &axisErr), axisErr.Axis, axisErr.Length)
	// Output:
	// true
	// true 0 3
}

func ExampleReference1D() {
	y, err := hadamard.Reference1D([]float64{0, 0, 2, 0})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(y)
	// Output: [1 1 -1 -1]
}

func ExampleButterfly() {
	x := []int32{1, 2, 3, 4}
	hadamard.Butterfly(x, x)
	fmt.Println(x)

	rows := []float64{1, 0, 0, 1}
	hadamard.ButterflyRows(rows, 2, hadamard.SequentialParallel())
	fmt.Println(rows)
	// Output:
	// [10 -2 -4 0]
	// [1 1 1 -1]
}
