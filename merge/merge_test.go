package merge_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kata/merge"
)

func TestArrays(t *testing.T) {
	tests := []struct {
		name string
		in   [][]int
		want []int
	}{
		{"three arrays", [][]int{{1, 5, 7, 8}, {0, 6, 8}, {3, 7, 10}}, []int{0, 1, 3, 5, 6, 7, 7, 8, 8, 10}},
		{"with empty", [][]int{{1, 5}, {}, {3, 4}}, []int{1, 3, 4, 5}},
		{"all empty", [][]int{{}, {}}, []int{}},
		{"no arrays", [][]int{}, []int{}},
		{"nil", nil, []int{}},
		{"single", [][]int{{2, 4}}, []int{2, 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, merge.Arrays(tc.in))
		})
	}
}

func TestArrays_DoesNotAlias(t *testing.T) {
	in := [][]int{{1, 2, 3}}
	out := merge.Arrays(in)
	out[0] = 100
	assert.Equal(t, []int{1, 2, 3}, in[0])
}

func TestTwo(t *testing.T) {
	assert.Equal(t, []int{1, 2, 2, 2, 3}, merge.Two([]int{1, 2, 2}, []int{2, 3}))
	assert.Equal(t, []string{"a", "b", "b", "c"}, merge.Two([]string{"a", "b"}, []string{"b", "c"}))
	assert.Equal(t, []float64{0.5}, merge.Two(nil, []float64{0.5}))
	assert.Equal(t, []int{}, merge.Two[int](nil, nil))
}

func TestArrays_Random(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for round := 0; round < 500; round++ {
		var (
			arrays [][]int
			all    []int
		)
		for k := rnd.Intn(6); k > 0; k-- {
			a := make([]int, rnd.Intn(10))
			for i := range a {
				a[i] = rnd.Intn(30) - 10
			}
			sort.Ints(a)
			arrays = append(arrays, a)
			all = append(all, a...)
		}
		sort.Ints(all)
		if all == nil {
			all = []int{}
		}
		require.Equal(t, all, merge.Arrays(arrays))
	}
}
