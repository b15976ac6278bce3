// Package matrix provides a minimal dense float64 matrix substrate shared by
// every numeric stage of the DCPP pipeline (the weight matrix, the
// Floyd-Warshall distance matrix, and the Hungarian cost matrix all live in
// a *Dense).
package matrix

import "errors"

// Sentinel errors for matrix operations. Callers branch on these via
// errors.Is; messages are never matched as strings.
var (
	// ErrInvalidDimensions indicates requested dimensions are not strictly positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates two matrices (or a matrix and an index
	// set derived from it) disagree on shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare indicates an operation that requires a square matrix
	// (Floyd-Warshall, Hungarian on a balanced cost matrix) received a
	// rectangular one.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaN indicates a Set or Fill call tried to store NaN. +Inf and -Inf
	// are legitimate values throughout this module (they mark "no edge" in
	// a weight matrix), so only NaN is rejected.
	ErrNaN = errors.New("matrix: value is NaN")
)

// RequireSquare reports ErrNonSquare if m's row and column counts differ.
// Floyd-Warshall and the Hungarian assignment both operate on a single
// dimension n and have no defined behavior otherwise.
func RequireSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return ErrNonSquare
	}

	return nil
}
