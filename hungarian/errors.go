package hungarian

import "errors"

// Sentinel errors for the hungarian package. Callers branch via errors.Is.
var (
	// ErrNonSquare indicates Solve received a non-square cost matrix.
	ErrNonSquare = errors.New("hungarian: cost matrix is not square")

	// ErrEmptyMatrix indicates a 0x0 cost matrix; Solve requires n >= 1.
	ErrEmptyMatrix = errors.New("hungarian: empty cost matrix")

	// ErrNilMatrix indicates a nil cost matrix argument.
	ErrNilMatrix = errors.New("hungarian: nil cost matrix")
)
