package graph

import (
	"strconv"

	"github.com/katalvlaran/dcpp-solver/matrix"
)

// pendingEdge is one declared (from, to, weight) triple, in declaration
// order. Order matters only for the "last declared weight wins" rule in W;
// C counts every declaration regardless of order.
type pendingEdge struct {
	from, to int
	weight   float64
}

// Builder accumulates edges until Build snapshots them into a Graph. It
// never rejects an edge: an index beyond the current node count simply
// grows the node count. Indices are not validated; a negative index makes
// Build panic.
type Builder struct {
	edges    []pendingEdge
	maxIndex int // highest node index observed via AddEdge; -1 if none
	labels   map[string]int
	order    []string // labels in first-seen order, index-aligned with assigned ids
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		maxIndex: -1,
		labels:   make(map[string]int),
	}
}

// AddEdge appends a pending (from, to, weight) edge and grows the observed
// node count to accommodate the larger of from/to. Returns the Builder so
// calls can be chained.
func (b *Builder) AddEdge(from, to int, weight float64) *Builder {
	if from > b.maxIndex {
		b.maxIndex = from
	}
	if to > b.maxIndex {
		b.maxIndex = to
	}
	b.edges = append(b.edges, pendingEdge{from: from, to: to, weight: weight})

	return b
}

// AddLabeledEdge assigns each previously-unseen label the next integer in
// introduction order, then delegates to AddEdge. Labels are unique and
// order-preserving.
func (b *Builder) AddLabeledEdge(fromLabel, toLabel string, weight float64) *Builder {
	from := b.labelIndex(fromLabel)
	to := b.labelIndex(toLabel)

	return b.AddEdge(from, to, weight)
}

// labelIndex returns the integer id for label, assigning the next available
// id on first sight.
func (b *Builder) labelIndex(label string) int {
	if idx, ok := b.labels[label]; ok {
		return idx
	}
	idx := len(b.order)
	b.labels[label] = idx
	b.order = append(b.order, label)

	return idx
}

// Build returns a Graph snapshot. N is max observed index + 1 (or the label
// count, when labels were used); W starts at +Inf everywhere, then each
// pending edge sets W[from][to] (last declaration wins) and increments
// C[from][to] (every declaration counts). Complexity: O(N^2 + E).
func (b *Builder) Build() *Graph {
	n := b.nodeCount()

	labels := make([]string, n)
	if len(b.order) == n && n > 0 {
		copy(labels, b.order)
	} else {
		for i := 0; i < n; i++ {
			labels[i] = strconv.Itoa(i)
		}
	}

	g := &Graph{
		n:      n,
		labels: labels,
		outDeg: make([]int, n),
	}
	if n > 0 {
		w, _ := matrix.NewDense(n, n) // n > 0 here, NewDense cannot fail
		fill := make([]float64, n*n)
		for i := range fill {
			fill[i] = infinity
		}
		_ = w.Fill(fill)
		g.w = w
	}
	g.c = make([][]int, n)
	for i := range g.c {
		g.c[i] = make([]int, n)
	}

	for _, e := range b.edges {
		_ = g.w.Set(e.from, e.to, e.weight) // last declared weight wins
		g.c[e.from][e.to]++                 // every declaration counts
		g.outDeg[e.from]++
	}

	return g
}

// nodeCount resolves N from either label introductions or raw indices,
// whichever source was used to build the edge list.
func (b *Builder) nodeCount() int {
	if len(b.order) > 0 {
		return len(b.order)
	}
	if b.maxIndex < 0 {
		return 0
	}

	return b.maxIndex + 1
}
