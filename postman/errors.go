package postman

import "errors"

// Sentinel errors for the postman package. Callers branch via errors.Is.
var (
	// ErrNilGraph indicates Solve received a nil *graph.Graph.
	ErrNilGraph = errors.New("postman: nil graph")
)
