package hadamard

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/fht/internal/parallel"
)

func randFloats[T float32 | float64](rng *rand.Rand, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = T(rng.NormFloat64())
	}
	return out
}

func TestButterflyMatchesMatrix(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 2; n <= 64; n <<= 1 {
		x := make([]int64, n)
		for i := range x {
			x[i] = rng.Int63n(201) - 100
		}
		got := make([]int64, n)
		Butterfly(got, x)

		h := Matrix(n)
		for i := range n {
			var want int64
			for j := range n {
				want += int64(h[i][j]) * x[j]
			}
			require.Equal(t, want, got[i], "n=%d i=%d", n, i)
		}
	}
}

func TestButterflyInPlace(t *testing.T) {
	x := []int32{0, 2, 0, 0}
	Butterfly(x, x)
	assert.Equal(t, []int32{2, -2, 2, -2}, x)
}

func TestButterflyPanics(t *testing.T) {
	assert.Panics(t, func() { Butterfly(make([]float64, 3), make([]float64, 3)) })
	assert.Panics(t, func() { Butterfly(make([]float64, 2), make([]float64, 4)) })
}

func TestRadix4MatchesRadix2(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 2; n <= 1<<12; n <<= 1 {
		t.Run("float32", func(t *testing.T) {
			a := randFloats[float32](rng, n)
			b := append([]float32(nil), a...)
			butterflyRadix2(a)
			butterflyRadix4(b)
			assert.Equal(t, a, b, "n=%d", n)
		})
		t.Run("float64", func(t *testing.T) {
			a := randFloats[float64](rng, n)
			b := append([]float64(nil), a...)
			butterflyRadix2(a)
			butterflyRadix4(b)
			assert.Equal(t, a, b, "n=%d", n)
		})
	}
}

func TestButterflyPairsMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
	for _, n := range []int{2, 64, 1 << 10, 1 << 13} {
		a := randFloats[float64](rng, n)
		b := append([]float64(nil), a...)
		butterflyRadix2(a)
		butterflyPairs(b, cfg)
		assert.Equal(t, a, b, "n=%d", n)
	}
}

func TestButterflyRows(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const rows, n = 37, 32
	data := randFloats[float32](rng, rows*n)

	want := append([]float32(nil), data...)
	for r := range rows {
		butterflyRadix2(want[r*n : (r+1)*n])
	}

	plans := map[string]rowPlan{
		"sequential":      {par: parallel.Sequential(), minParallel: 1},
		"parallel":        {par: parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}, minParallel: 64},
		"parallel radix4": {radix4: true, par: parallel.Config{Enabled: true, NumWorkers: 3, MinChunkSize: 1}, minParallel: 1},
	}
	for name, plan := range plans {
		t.Run(name, func(t *testing.T) {
			got := append([]float32(nil), data...)
			butterflyRows(got, n, plan)
			assert.Equal(t, want, got)
		})
	}

	t.Run("exported", func(t *testing.T) {
		got := append([]float32(nil), data...)
		ButterflyRows(got, n, parallel.DefaultConfig())
		assert.Equal(t, want, got)
	})

	t.Run("single long row", func(t *testing.T) {
		row := randFloats[float32](rng, 1<<12)
		seq := append([]float32(nil), row...)
		butterflyRadix2(seq)
		butterflyRows(row, len(row), rowPlan{
			par:         parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 16},
			minParallel: 256,
		})
		assert.Equal(t, seq, row)
	})

	assert.Panics(t, func() { ButterflyRows(make([]int32, 10), 4, parallel.Sequential()) })
}

func BenchmarkButterfly(b *testing.B) {
	rng := rand.New(rand.NewSource(9))
	x := randFloats[float32](rng, 1<<16)

	b.Run("radix2", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			butterflyRadix2(x)
		}
	})
	b.Run("radix4", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			butterflyRadix4(x)
		}
	})
	b.Run("pairs", func(b *testing.B) {
		cfg := parallel.DefaultConfig()
		for i := 0; i < b.N; i++ {
			butterflyPairs(x, cfg)
		}
	})
}
