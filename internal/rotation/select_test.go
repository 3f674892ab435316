package rotation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPool(n int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	return pool
}

func TestPickOne(t *testing.T) {
	got, err := PickOne(intPool(7), "hello")
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	got, err = PickOne(intPool(10), "vendor_42-2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	words := []string{"alpha", "beta", "gamma"}
	word, err := PickOne(words, "")
	require.NoError(t, err)
	assert.Equal(t, "alpha", word, "empty seed hashes to zero and picks the first item")
}

func TestPickOneEmptyPool(t *testing.T) {
	_, err := PickOne([]string{}, "vendor-2025-01-15")
	require.Error(t, err)

	var poolErr *InvalidPoolError
	require.True(t, errors.As(err, &poolErr))
	assert.Equal(t, 0, poolErr.Size)
	assert.Contains(t, err.Error(), "pool is empty")
}

func TestPermutationReference(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		count    int
		seed     string
		expected []int
	}{
		{"Actions seed", 10, 3, "vendor_demo-actions-2025-01-15", []int{3, 7, 1}},
		{"Growth seed", 12, 4, "vendor_demo-growth-2025-01-15", []int{2, 4, 1, 10}},
		{"Short seed", 8, 2, "seed", []int{2, 3}},
		{"Empty seed still shuffles", 3, 2, "", []int{2, 0}},
		{"Count equals size keeps order", 6, 6, "a", []int{0, 1, 2, 3, 4, 5}},
		{"Count above size keeps order", 4, 9, "a", []int{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Permutation(tt.size, tt.count, tt.seed)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPermutationErrors(t *testing.T) {
	_, err := Permutation(0, 2, "x")
	assert.Error(t, err)

	_, err = Permutation(5, -1, "x")
	var poolErr *InvalidPoolError
	require.True(t, errors.As(err, &poolErr))
	assert.Equal(t, "count is negative", poolErr.Reason)
}

func TestPickManyProperties(t *testing.T) {
	for size := 1; size <= 30; size++ {
		pool := intPool(size)
		for count := 0; count <= 8; count++ {
			seed := fmt.Sprintf("vendor-%d-%d", size, count)
			picked, err := PickMany(pool, count, seed)
			require.NoError(t, err)

			expectedLen := count
			if size < count {
				expectedLen = size
			}
			require.Len(t, picked, expectedLen)

			seen := make(map[int]bool, len(picked))
			for _, v := range picked {
				assert.True(t, v >= 0 && v < size, "value %d outside pool", v)
				assert.False(t, seen[v], "duplicate value %d", v)
				seen[v] = true
			}

			if count >= size {
				assert.Equal(t, pool, picked, "pool must be returned verbatim")
			}
		}
	}
}

func TestPickManyDoesNotMutatePool(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f"}
	original := append([]string(nil), pool...)

	picked, err := PickMany(pool, 3, "vendor_demo-growth-2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, original, pool)

	picked[0] = "mutated"
	assert.Equal(t, original, pool)

	all, err := PickMany(pool, 10, "x")
	require.NoError(t, err)
	all[0] = "mutated"
	assert.Equal(t, original, pool, "returned slice must not alias the pool")
}

func TestPickManyDeterministic(t *testing.T) {
	pool := intPool(25)
	first, err := PickMany(pool, 4, "vendor_demo-risk-2025-01-15")
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := PickMany(pool, 4, "vendor_demo-risk-2025-01-15")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}

	other, err := PickMany(pool, 4, "vendor_demo-risk-2025-01-16")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}
