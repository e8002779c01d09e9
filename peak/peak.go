package peak

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Check.
var (
	ErrEmpty  = errors.New("peak: empty matrix")
	ErrRagged = errors.New("peak: rows have different lengths")
)

// Peak2D is the position of a peak in a matrix.
type Peak2D struct {
	Row    int
	Column int
}

func (p Peak2D) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}

// Find1D returns the index of a peak of a, or false when a is empty.
func Find1D[T constraints.Ordered](a []T) (int, bool) {
	n := len(a)
	if n == 0 {
		return 0, false
	}

	start, end := 0, n
	for {
		mid := (start + end) / 2
		switch {
		case mid > 0 && a[mid-1] > a[mid]:
			end = mid - 1
		case mid < n-1 && a[mid+1] > a[mid]:
			start = mid + 1
		default:
			return mid, true
		}
	}
}

// Check validates that m is a non-empty rectangular matrix.
func Check[T any](m [][]T) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return ErrEmpty
	}
	for i, row := range m {
		if len(row) != len(m[0]) {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, len(row), len(m[0]))
		}
	}

	return nil
}

// Find2D returns the position of a peak of m. It reports false when m is
// empty, has empty rows, or is ragged.
func Find2D[T constraints.Ordered](m [][]T) (Peak2D, bool) {
	if Check(m) != nil {
		return Peak2D{}, false
	}

	rows := len(m)
	seen := make(map[[2]int]bool)
	start, end := 0, rows
	for {
		mid := (start + end) / 2
		col, _ := Find1D(m[mid])

		window := [2]int{start, end}
		if seen[window] {
			return climb(m, mid, col), true
		}
		seen[window] = true

		switch {
		case mid > 0 && m[mid-1][col] > m[mid][col]:
			end = mid - 1
		case mid < rows-1 && m[mid+1][col] > m[mid][col]:
			start = mid + 1
		default:
			return Peak2D{Row: mid, Column: col}, true
		}
	}
}

// FindInMatrix runs Find2D over a gonum matrix.
func FindInMatrix(m mat.Matrix) (Peak2D, bool) {
	if m == nil {
		return Peak2D{}, false
	}
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return Peak2D{}, false
	}
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, m)
	}

	return Find2D(rows)
}

// climb moves from (r, c) to its largest strictly greater 4-neighbour until
// none is left.
func climb[T constraints.Ordered](m [][]T, r, c int) Peak2D {
	rows, cols := len(m), len(m[0])
	for {
		br, bc := r, c
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			nr, nc := r+d[0], c+d[1]
			if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
				continue
			}
			if m[nr][nc] > m[br][bc] {
				br, bc = nr, nc
			}
		}
		if br == r && bc == c {
			return Peak2D{Row: r, Column: c}
		}
		r, c = br, bc
	}
}
