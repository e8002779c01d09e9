// Package merge combines sorted slices into one sorted slice.
package merge

import "golang.org/x/exp/constraints"

// Arrays merges ascending-sorted arrays into a single ascending slice.
//
// The arrays are folded left to right, each pairwise merge taking from the
// accumulated side on ties, so equal elements keep their input order. The
// result never shares memory with the inputs; zero arrays yield an empty,
// non-nil slice.
func Arrays[T constraints.Ordered](arrays [][]T) []T {
	total := 0
	for _, a := range arrays {
		total += len(a)
	}

	merged := make([]T, 0, total)
	if len(arrays) == 0 {
		return merged
	}
	merged = append(merged, arrays[0]...)
	for _, next := range arrays[1:] {
		merged = Two(merged, next)
	}

	return merged
}

// Two merges two ascending slices into a new one, preferring first on ties.
func Two[T constraints.Ordered](first, second []T) []T {
	out := make([]T, 0, len(first)+len(second))
	i, j := 0, 0
	for i < len(first) && j < len(second) {
		if first[i] <= second[j] {
			out = append(out, first[i])
			i++
		} else {
			out = append(out, second[j])
			j++
		}
	}
	out = append(out, first[i:]...)
	out = append(out, second[j:]...)

	return out
}
