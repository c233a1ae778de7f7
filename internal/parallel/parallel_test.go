package parallel

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 100_000

	For(n, cfg, func(_ int) {
		atomic.AddInt64(&counter, 1)
	})

	assert.Equal(t, int64(n), counter)
}

func TestRange_CoversDisjoint(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinChunkSize: 10}
	n := 1003

	seen := make([]int32, n)
	var mu sync.Mutex
	var ranges [][2]int

	Range(n, cfg, func(lo, hi int) {
		mu.Lock()
		ranges = append(ranges, [2]int{lo, hi})
		mu.Unlock()
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})

	for i, c := range seen {
		require.Equal(t, int32(1), c, "index %d visited %d times", i, c)
	}
	assert.Len(t, ranges, 4)
}

func TestRange_Sequential(t *testing.T) {
	calls := 0
	Range(100, Sequential(), func(lo, hi int) {
		calls++
		assert.Equal(t, 0, lo)
		assert.Equal(t, 100, hi)
	})
	assert.Equal(t, 1, calls)
}

func TestRange_SmallInput(t *testing.T) {
	// Small work units fall back to a single call.
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.NumWorkers = 8

	calls := 0
	Range(cfg.MinChunkSize, cfg, func(_, _ int) {
		calls++
	})
	assert.Equal(t, 1, calls)
}

func TestRange_Empty(t *testing.T) {
	Range(0, DefaultConfig(), func(_, _ int) {
		t.Fatal("f must not be called for n == 0")
	})
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 1 << 20

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, cfg, func(j int) {
				atomic.AddInt64(&sum, int64(j&1))
			})
		}
	})

	b.Run("sequential", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, Sequential(), func(j int) {
				atomic.AddInt64(&sum, int64(j&1))
			})
		}
	})
}
