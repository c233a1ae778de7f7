package ndview

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_StorageOrder(t *testing.T) {
	buf := iota27()
	v, err := New(buf, [3]int{3, 3, 3})
	require.NoError(t, err)

	n := 0
	for i, p := range v.All() {
		require.Same(t, &buf[i], p)
		require.Equal(t, n, i)
		n++
	}
	assert.Equal(t, v.Len(), n)
}

func TestAll_Restartable(t *testing.T) {
	buf := []int{1, 2, 3, 4}
	v, err := New(buf, [2]int{2, 2})
	require.NoError(t, err)

	first := slices.Collect(v.Values())
	buf[2] = 30
	second := slices.Collect(v.Values())

	assert.Equal(t, []int{1, 2, 3, 4}, first)
	assert.Equal(t, []int{1, 2, 30, 4}, second)
}

func TestAll_WriteThrough(t *testing.T) {
	buf := make([]int, 6)
	v, err := New(buf, [2]int{3, 2})
	require.NoError(t, err)

	for i, p := range v.All() {
		*p = i * i
	}
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25}, buf)
}

func TestBackward(t *testing.T) {
	v, err := New([]int{1, 2, 3, 4, 5, 6}, [2]int{3, 2})
	require.NoError(t, err)

	var idx, vals []int
	for i, p := range v.Backward() {
		idx = append(idx, i)
		vals = append(vals, *p)
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, idx)
	assert.Equal(t, []int{6, 5, 4, 3, 2, 1}, vals)
}

func TestIter_EarlyStop(t *testing.T) {
	v, err := New(iota27(), [1]int{27})
	require.NoError(t, err)

	seen := 0
	for _, x := range v.All() {
		seen++
		if *x == 4 {
			break
		}
	}
	assert.Equal(t, 5, seen)

	seen = 0
	for x := range v.Values() {
		seen++
		if x == 2 {
			break
		}
	}
	assert.Equal(t, 3, seen)
}

func TestIter_Empty(t *testing.T) {
	v, err := New([]float32{}, [1]int{0})
	require.NoError(t, err)

	assert.Empty(t, slices.Collect(v.Values()))
	for range v.Backward() {
		t.Fatal("empty view must not yield")
	}
}
