package graph

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/dcpp-solver/matrix"
)

// ErrNodeOutOfRange indicates a node index outside [0, N()) was passed to a
// Graph accessor.
var ErrNodeOutOfRange = errors.New("graph: node index out of range")

// Graph is an immutable-after-build snapshot of a directed weighted
// multigraph: N nodes, a dense weight matrix W (W[i][j] = +Inf means no
// edge; parallel edges collapse to their last-declared weight), a parallel
// edge-count matrix C (C[i][j] = number of i->j edges, never collapsed),
// an out-degree vector, and node labels.
//
// Invariants:
//   - I1: C[i][j] >= 1 iff W[i][j] < +Inf.
//   - I2: out[i] = sum_j C[i][j] at all times.
//   - I3: after balancing (package postman), out[i] == InDegree(i) for all i.
type Graph struct {
	n      int
	w      *matrix.Dense
	c      [][]int
	outDeg []int
	labels []string
}

// N returns the number of nodes.
func (g *Graph) N() int { return g.n }

// Weight returns W[from][to] (+Inf if no edge).
func (g *Graph) Weight(from, to int) (float64, error) {
	if !g.inRange(from) || !g.inRange(to) {
		return 0, ErrNodeOutOfRange
	}

	return g.w.MustAt(from, to), nil
}

// WeightMatrix exposes the weight matrix as a read-only-by-convention
// matrix.Matrix view of the Graph's own storage (not a copy).
func (g *Graph) WeightMatrix() matrix.Matrix { return g.w }

// EdgeCount returns C[from][to], the number of parallel from->to edges.
func (g *Graph) EdgeCount(from, to int) (int, error) {
	if !g.inRange(from) || !g.inRange(to) {
		return 0, ErrNodeOutOfRange
	}

	return g.c[from][to], nil
}

// OutDegree returns out[node] = sum_j C[node][j].
func (g *Graph) OutDegree(node int) (int, error) {
	if !g.inRange(node) {
		return 0, ErrNodeOutOfRange
	}

	return g.outDeg[node], nil
}

// InDegree computes in[node] = sum_i C[i][node] on demand, rather than
// maintaining a running counter. Complexity: O(N).
func (g *Graph) InDegree(node int) (int, error) {
	if !g.inRange(node) {
		return 0, ErrNodeOutOfRange
	}
	in := 0
	for i := 0; i < g.n; i++ {
		in += g.c[i][node]
	}

	return in, nil
}

// Label returns the human label of node, defaulting to its decimal index.
func (g *Graph) Label(node int) (string, error) {
	if !g.inRange(node) {
		return "", ErrNodeOutOfRange
	}

	return g.labels[node], nil
}

// Labels returns the full label slice (index i -> label of node i), owned by
// the caller (a defensive copy).
func (g *Graph) Labels() []string {
	out := make([]string, g.n)
	copy(out, g.labels)

	return out
}

// EdgeMultiset returns, for each node, its successors listed once per
// parallel edge, sorted ascending by target index for determinism.
// Complexity: O(N^2) (dense scan), which is the same order as every other
// stage in this pipeline.
func (g *Graph) EdgeMultiset() [][]int {
	out := make([][]int, g.n)
	for i := 0; i < g.n; i++ {
		row := make([]int, 0, g.outDeg[i])
		for j := 0; j < g.n; j++ {
			for k := 0; k < g.c[i][j]; k++ {
				row = append(row, j)
			}
		}
		sort.Ints(row)
		out[i] = row
	}

	return out
}

// AddEdge duplicates an edge: increments C[from][to], sets W[from][to] (in
// practice re-asserting the existing detour weight), and increments
// out[from]. Reserved for the balancing stage (package postman), which
// duplicates edges along shortest-path detours to repair imbalance.
//
// Contract: from, to in [0, N()); callers are expected to have already
// confirmed a path exists between the nodes they duplicate an edge along.
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if !g.inRange(from) || !g.inRange(to) {
		return ErrNodeOutOfRange
	}
	if err := g.w.Set(from, to, weight); err != nil {
		return err
	}
	g.c[from][to]++
	g.outDeg[from]++

	return nil
}

// ImbalanceSet holds two multisets of node indices: Neg (out < in, appearing
// |out-in| times) and Pos (out > in, likewise). len(Neg) == len(Pos) always,
// since the sum of (out-in) over any digraph is zero.
type ImbalanceSet struct {
	Neg []int
	Pos []int
}

// Empty reports whether the graph is already balanced (every node has
// out-degree == in-degree).
func (s ImbalanceSet) Empty() bool { return len(s.Neg) == 0 && len(s.Pos) == 0 }

// ImbalancedNodes computes, for every node v, delta = out[v] - in[v]. Nodes
// with delta > 0 are pushed into Pos delta times; delta < 0 into Neg -delta
// times. Complexity: O(N^2).
func (g *Graph) ImbalancedNodes() ImbalanceSet {
	var set ImbalanceSet
	for v := 0; v < g.n; v++ {
		in, _ := g.InDegree(v) // v is always in range here
		delta := g.outDeg[v] - in
		switch {
		case delta > 0:
			for i := 0; i < delta; i++ {
				set.Pos = append(set.Pos, v)
			}
		case delta < 0:
			for i := 0; i < -delta; i++ {
				set.Neg = append(set.Neg, v)
			}
		}
	}

	return set
}

func (g *Graph) inRange(node int) bool { return node >= 0 && node < g.n }

// infinity is the sentinel "no edge" weight used throughout W.
var infinity = math.Inf(1)
