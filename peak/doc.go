// Package peak locates peaks in one- and two-dimensional arrays.
//
// A 1D peak is an index i with a[i] >= a[i-1] and a[i] >= a[i+1] (missing
// neighbours count as smaller). A 2D peak is a cell that is greater than or
// equal to its top, bottom, left and right neighbours. Every non-empty input
// has at least one peak; which one is returned depends on the search.
//
// Find1D halves the search window in O(log n). Find2D halves the row window
// and finds a 1D peak in the middle row, O(rows·log cols) in the common case.
// When the row window stops shrinking (possible with plateaus and crossing
// bounds) the search finishes with a steepest-ascent climb, which always
// terminates because every step strictly increases the value.
package peak
