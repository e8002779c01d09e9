package peak_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/kata/peak"
)

func is1DPeak(a []int, i int) bool {
	return (i == 0 || a[i] >= a[i-1]) && (i == len(a)-1 || a[i] >= a[i+1])
}

func is2DPeak(m [][]int, p peak.Peak2D) bool {
	r, c := p.Row, p.Column
	v := m[r][c]
	return (r == 0 || m[r-1][c] <= v) &&
		(r == len(m)-1 || m[r+1][c] <= v) &&
		(c == 0 || m[r][c-1] <= v) &&
		(c == len(m[0])-1 || m[r][c+1] <= v)
}

func TestFind1D(t *testing.T) {
	tests := []struct {
		in   []int
		want int
	}{
		{[]int{1, 2, 3, 0}, 2},
		{[]int{1, 2}, 1},
		{[]int{2, 1}, 0},
		{[]int{1, 2, 3, 4}, 3},
		{[]int{4, 3, 2, 1}, 0},
		{[]int{1}, 0},
	}
	for _, tc := range tests {
		got, ok := peak.Find1D(tc.in)
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "Find1D(%v)", tc.in)
	}

	_, ok := peak.Find1D([]int{})
	assert.False(t, ok)
	_, ok = peak.Find1D[int](nil)
	assert.False(t, ok)
}

func TestFind1D_RandomAlwaysPeak(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for round := 0; round < 2000; round++ {
		a := make([]int, 1+rnd.Intn(25))
		for i := range a {
			a[i] = rnd.Intn(6)
		}
		i, ok := peak.Find1D(a)
		require.True(t, ok)
		require.Truef(t, is1DPeak(a, i), "index %d of %v", i, a)
	}
}

func TestFind2D(t *testing.T) {
	tests := []struct {
		name string
		in   [][]int
		want peak.Peak2D
	}{
		{"center", [][]int{{1, 2, 3, 0}, {2, 3, 2, 0}, {1, 4, 7, 1}, {1, 5, 3, 0}}, peak.Peak2D{Row: 2, Column: 2}},
		{"top row", [][]int{{1, 2, 9, 0}, {1, 2, 2, 0}, {1, 1, 1, 1}, {1, 1, 1, 0}}, peak.Peak2D{Row: 0, Column: 2}},
		{"second row", [][]int{{1, 2, 1, 0}, {2, 8, 2, 0}, {1, 4, 2, 1}, {1, 5, 1, 0}}, peak.Peak2D{Row: 1, Column: 1}},
		{"single row", [][]int{{1, 2, 3, 0}}, peak.Peak2D{Row: 0, Column: 2}},
		{"single column", [][]int{{1}, {2}, {5}, {1}}, peak.Peak2D{Row: 2, Column: 0}},
		{"single cell", [][]int{{1}}, peak.Peak2D{Row: 0, Column: 0}},
		{"window stalls", [][]int{{3, 3, 2, 4}, {4, 0, 1, 1}}, peak.Peak2D{Row: 1, Column: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := peak.Find2D(tc.in)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
			assert.True(t, is2DPeak(tc.in, got))
		})
	}
}

func TestFind2D_Invalid(t *testing.T) {
	for name, in := range map[string][][]int{
		"nil":       nil,
		"no rows":   {},
		"empty row": {{}},
		"ragged":    {{1, 2}, {3}},
	} {
		_, ok := peak.Find2D(in)
		assert.False(t, ok, name)
	}

	assert.ErrorIs(t, peak.Check([][]int{{}}), peak.ErrEmpty)
	assert.ErrorIs(t, peak.Check([][]int{{1, 2}, {3}}), peak.ErrRagged)
	assert.NoError(t, peak.Check([][]int{{1, 2}, {3, 4}}))
}

func TestFind2D_RandomAlwaysPeak(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for round := 0; round < 5000; round++ {
		rows, cols := 1+rnd.Intn(6), 1+rnd.Intn(6)
		m := make([][]int, rows)
		for i := range m {
			m[i] = make([]int, cols)
			for j := range m[i] {
				m[i][j] = rnd.Intn(5)
			}
		}
		p, ok := peak.Find2D(m)
		require.True(t, ok)
		require.Truef(t, is2DPeak(m, p), "%v in %v", p, m)
	}
}

func TestFindInMatrix(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	p, ok := peak.FindInMatrix(m)
	require.True(t, ok)
	assert.Equal(t, peak.Peak2D{Row: 2, Column: 2}, p)

	p, ok = peak.FindInMatrix(m.T())
	require.True(t, ok)
	assert.Equal(t, peak.Peak2D{Row: 2, Column: 2}, p)

	_, ok = peak.FindInMatrix(nil)
	assert.False(t, ok)
}
