package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestFor_SmallChunk(t *testing.T) {
	// Test that small work units fall back to sequential.
	cfg := DefaultConfig()

	var counter int64
	n := cfg.MinChunkSize - 1

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestForChunks_CoversRangeOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 7, MinChunkSize: 3}

	for _, n := range []int{0, 1, 5, 6, 64, 1001} {
		seen := make([]int32, n)
		var mu sync.Mutex
		var chunks [][2]int

		ForChunks(n, func(start, end int) {
			mu.Lock()
			chunks = append(chunks, [2]int{start, end})
			mu.Unlock()
			for i := start; i < end; i++ {
				atomic.AddInt32(&seen[i], 1)
			}
		}, cfg)

		for i, c := range seen {
			if c != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, c)
			}
		}
		for _, c := range chunks {
			if n > 0 && c[1]-c[0] < 1 {
				t.Errorf("n=%d: empty chunk %v", n, c)
			}
		}
	}
}

func TestSequentialRunsInline(t *testing.T) {
	calls := 0
	ForChunks(1<<12, func(start, end int) {
		calls++
		if start != 0 || end != 1<<12 {
			t.Errorf("chunk = [%d, %d), want the whole range", start, end)
		}
	}, Sequential())

	if calls != 1 {
		t.Errorf("Expected 1 call, got %d", calls)
	}
}

func TestWithMinChunk(t *testing.T) {
	cfg := DefaultConfig().WithMinChunk(0)
	if cfg.MinChunkSize != 1 {
		t.Errorf("Expected clamp to 1, got %d", cfg.MinChunkSize)
	}
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
