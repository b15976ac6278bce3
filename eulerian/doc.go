// Package eulerian constructs an Eulerian circuit on a balanced, strongly
// connected directed multigraph via Hierholzer's algorithm.
//
// Circuit operates on directed edges: because every edge in this package's
// input is one-directional and already fully described by a single
// successor-list entry, there is no half-edge/twin bookkeeping — consuming
// a successor once is sufficient to mark it used in both "directions"
// there are none of.
package eulerian
