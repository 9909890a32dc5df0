package tensor_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/fht/tensor"
)

func TestFromSlice(t *testing.T) {
	x, err := tensor.FromSlice([]int64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, tensor.Int64, x.DType())
	assert.Equal(t, tensor.CPU, x.Device())
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, tensor.Values[int64](x))

	_, err = tensor.FromSlice([]int64{1, 2}, tensor.Shape{3})
	assert.Error(t, err)
}

func TestCreation(t *testing.T) {
	z := tensor.Zeros[float32](tensor.Shape{2, 2})
	assert.Equal(t, []float32{0, 0, 0, 0}, tensor.View[float32](z))

	f := tensor.Full(tensor.Shape{3}, 1.5)
	assert.Equal(t, []float64{1.5, 1.5, 1.5}, tensor.Float64s(f))

	raw, err := tensor.NewRaw(tensor.Shape{4}, tensor.Int32, tensor.CPU)
	require.NoError(t, err)
	assert.Equal(t, 16, raw.ByteSize())
}

func TestDataTypes(t *testing.T) {
	dt, err := tensor.ParseDataType("float32")
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, dt)
	assert.Equal(t, tensor.Bool, tensor.DataTypeOf[bool]())

	_, err = tensor.ParseDataType("complex128")
	assert.Error(t, err)
}

func TestOneHotAndRand(t *testing.T) {
	oh := tensor.OneHot[float64](tensor.Shape{2, 2}, 2, 4)
	assert.Equal(t, []float64{0, 0, 4, 0}, tensor.Values[float64](oh))

	r := tensor.Rand[float32](tensor.Shape{16}, rand.New(rand.NewSource(1)))
	for _, v := range tensor.View[float32](r) {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.Less(t, v, float32(1))
	}
}
