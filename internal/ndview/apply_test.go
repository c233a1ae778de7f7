package ndview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/views/internal/parallel"
)

func TestApply(t *testing.T) {
	buf := make([]int, 50_000)
	v, err := New(buf, [2]int{500, 100})
	require.NoError(t, err)

	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1000}
	Apply(v, cfg, func(i int, x *int) {
		*x = i * 2
	})

	for i, x := range buf {
		require.Equal(t, i*2, x)
	}
}

func TestApply_Section(t *testing.T) {
	buf := make([]int, 27)
	v, err := New3(buf, [3]int{3, 3, 3})
	require.NoError(t, err)

	s, err := v.CrossSection(1)
	require.NoError(t, err)
	Apply(s.View, parallel.Sequential(), func(_ int, x *int) {
		*x = 1
	})

	for i, x := range buf {
		if i >= 9 && i < 18 {
			assert.Equal(t, 1, x, "index %d", i)
		} else {
			assert.Equal(t, 0, x, "index %d", i)
		}
	}
}

func TestReduce(t *testing.T) {
	buf := make([]int64, 100_000)
	for i := range buf {
		buf[i] = int64(i)
	}
	v, err := New(buf, [1]int{len(buf)})
	require.NoError(t, err)

	cfg := parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 100}
	sum := Reduce(v, cfg,
		func() int64 { return 0 },
		func(acc int64, x int64) int64 { return acc + x },
		func(a, b int64) int64 { return a + b },
	)
	assert.Equal(t, int64(len(buf)*(len(buf)-1)/2), sum)
}

func TestReduce_MergeOrder(t *testing.T) {
	buf := make([]int, 1000)
	for i := range buf {
		buf[i] = i
	}
	v, err := New(buf, [1]int{1000})
	require.NoError(t, err)

	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 10}
	got := Reduce(v, cfg,
		func() []int { return nil },
		func(acc []int, x int) []int { return append(acc, x) },
		func(a, b []int) []int { return append(a, b...) },
	)
	assert.Equal(t, buf, got)
}

func TestReduce_Empty(t *testing.T) {
	v, err := New([]int{}, [1]int{0})
	require.NoError(t, err)

	got := Reduce(v, parallel.DefaultConfig(),
		func() int { return -1 },
		func(acc, x int) int { return acc + x },
		func(a, b int) int { return a + b },
	)
	assert.Equal(t, -1, got)
}
