package postman

import (
	"strconv"
	"strings"
)

// Walk is a closed walk covering every edge of a solved instance at least
// once: an ordered sequence of node indices with Nodes()[0] == Nodes()[last]
// and a total Cost() equal to the sum of traversed edge weights.
type Walk struct {
	nodes []int
	cost  float64
}

// Nodes returns the walk's node sequence, owned by the caller (a defensive
// copy).
func (w *Walk) Nodes() []int {
	out := make([]int, len(w.nodes))
	copy(out, w.nodes)

	return out
}

// Cost returns the walk's total traversed weight.
func (w *Walk) Cost() float64 { return w.cost }

// Format renders the walk as labels joined by "->", followed by ", Cost: "
// and the decimal cost, with no forced decimal point when the cost is
// integral (e.g. "A->B->C, Cost: 3", not "Cost: 3.0"). Any prefix such as
// "Path: " is the caller's to add.
func (w *Walk) Format(labels []string) string {
	parts := make([]string, len(w.nodes))
	for i, node := range w.nodes {
		parts[i] = labels[node]
	}

	return strings.Join(parts, "->") + ", Cost: " + formatCost(w.cost)
}

func formatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'f', -1, 64)
}
