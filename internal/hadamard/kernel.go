package hadamard

import (
	"fmt"

	"github.com/born-ml/fht/internal/parallel"
	"github.com/born-ml/fht/internal/tensor"
)

// Number is the set of element types the butterfly runs on.
type Number interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Butterfly writes the unnormalized Walsh-Hadamard transform of src into dst
// in natural (Sylvester) order. len(src) must be a power of two and dst must
// be at least as long; dst and src may be the same slice.
//
// Integer inputs wrap on overflow.
func Butterfly[T Number](dst, src []T) {
	n := len(src)
	if !IsPowerOfTwo(n) && n != 1 {
		panic(fmt.Sprintf("hadamard: butterfly length %d is not a power of two", n))
	}
	if len(dst) < n {
		panic(fmt.Sprintf("hadamard: butterfly dst length %d < %d", len(dst), n))
	}
	dst = dst[:n]
	copy(dst, src)
	butterflyRadix2(dst)
}

// butterflyRadix2 runs log2(n) passes with strides 1, 2, ..., n/2. Each pass
// replaces the pair (x[j], x[j+s]) with (x[j]+x[j+s], x[j]-x[j+s]).
func butterflyRadix2[T Number](x []T) {
	n := len(x)
	for s := 1; s < n; s <<= 1 {
		for block := 0; block < n; block += 2 * s {
			lo := x[block : block+s]
			hi := x[block+s : block+2*s]
			for i := range lo {
				a, b := lo[i], hi[i]
				lo[i], hi[i] = a+b, a-b
			}
		}
	}
}

// butterflyRadix4 fuses two consecutive radix-2 passes (strides s and 2s) so
// every element is loaded once per pair of passes. The additions happen in
// the same order as butterflyRadix2, so the results are bit-identical.
func butterflyRadix4[T Number](x []T) {
	n := len(x)
	s := 1
	for ; 4*s <= n; s <<= 2 {
		for block := 0; block < n; block += 4 * s {
			q0 := x[block : block+s]
			q1 := x[block+s : block+2*s]
			q2 := x[block+2*s : block+3*s]
			q3 := x[block+3*s : block+4*s]
			for i := range q0 {
				a0, a1, a2, a3 := q0[i], q1[i], q2[i], q3[i]
				b0, b1 := a0+a1, a0-a1
				b2, b3 := a2+a3, a2-a3
				q0[i], q2[i] = b0+b2, b0-b2
				q1[i], q3[i] = b1+b3, b1-b3
			}
		}
	}
	if s < n {
		// Odd number of passes: one radix-2 pass at stride n/2 remains.
		lo, hi := x[:s], x[s:]
		for i := range lo {
			a, b := lo[i], hi[i]
			lo[i], hi[i] = a+b, a-b
		}
	}
}

// butterflyPairs runs the radix-2 passes of a single long row with each pass
// split across workers. Pass stride s has n/2 independent pairs; pair p maps
// to the lower index j = (p/s)*2s + p%s.
func butterflyPairs[T Number](x []T, cfg parallel.Config) {
	n := len(x)
	for s := 1; s < n; s <<= 1 {
		shift := log2(s)
		mask := s - 1
		parallel.ForChunks(n/2, func(start, end int) {
			for p := start; p < end; p++ {
				j := (p>>shift)<<(shift+1) | p&mask
				a, b := x[j], x[j+s]
				x[j], x[j+s] = a+b, a-b
			}
		}, cfg)
	}
}

// rowPlan holds the per-call kernel choices.
type rowPlan struct {
	radix4      bool
	par         parallel.Config
	minParallel int // smallest element count worth splitting across workers
}

// ButterflyRows transforms, in place, every contiguous row of length n in
// data. len(data) must be a multiple of n. Rows are independent and are
// spread across workers; a single row long enough is split by pairs instead.
func ButterflyRows[T Number](data []T, n int, cfg parallel.Config) {
	butterflyRows(data, n, rowPlan{par: cfg, minParallel: cfg.MinChunkSize})
}

func butterflyRows[T Number](data []T, n int, plan rowPlan) {
	if n <= 0 || len(data)%n != 0 {
		panic(fmt.Sprintf("hadamard: %d elements do not split into rows of %d", len(data), n))
	}
	rows := len(data) / n

	kernel := butterflyRadix2[T]
	if plan.radix4 {
		kernel = butterflyRadix4[T]
	}

	if rows == 1 {
		if plan.par.Enabled && n >= plan.minParallel && n >= 2*plan.par.MinChunkSize {
			butterflyPairs(data, plan.par)
			return
		}
		kernel(data)
		return
	}

	// Aim for at least minParallel elements per worker.
	minRows := max(1, plan.minParallel/n)
	parallel.ForChunks(rows, func(start, end int) {
		for r := start; r < end; r++ {
			kernel(data[r*n : (r+1)*n])
		}
	}, plan.par.WithMinChunk(minRows))
}

// rowKernel transforms every row of length n of a contiguous tensor in place.
type rowKernel func(t *tensor.RawTensor, n int, plan rowPlan)

func rowsOf[T Number](t *tensor.RawTensor, n int, plan rowPlan) {
	butterflyRows(tensor.View[T](t), n, plan)
}

// rowKernels is the element-type dispatch table. Element types missing here
// are rejected with ErrUnsupportedElementType.
var rowKernels = map[tensor.DataType]rowKernel{
	tensor.Int32:   rowsOf[int32],
	tensor.Int64:   rowsOf[int64],
	tensor.Float32: rowsOf[float32],
	tensor.Float64: rowsOf[float64],
}
