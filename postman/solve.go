package postman

import (
	"fmt"

	"github.com/katalvlaran/dcpp-solver/eulerian"
	"github.com/katalvlaran/dcpp-solver/graph"
)

// Solve runs the full DCPP pipeline on g: Floyd-Warshall, the solvability
// gate, imbalance repair, and Hierholzer's algorithm. It returns (nil, nil)
// for an unsolvable instance (not strongly connected, or a negative cycle)
// — this is a normal outcome, not a Go error.
//
// g is left unmodified unless the instance is solvable: the gate runs
// before any Graph.AddEdge call.
func Solve(g *graph.Graph) (*Walk, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	sp := g.AllPairsShortestPaths()
	if !sp.StronglyConnected() || sp.HasNegativeCycle() {
		return nil, nil
	}

	imbalance := g.ImbalancedNodes()
	if !imbalance.Empty() {
		if err := balance(g, sp, imbalance); err != nil {
			return nil, fmt.Errorf("postman: Solve: %w", err)
		}
	}

	successors := g.EdgeMultiset()
	outRemaining := make([]int, g.N())
	for i, s := range successors {
		outRemaining[i] = len(s)
	}

	var nodes []int
	if g.N() > 0 {
		nodes = eulerian.Circuit(successors, outRemaining, 0)
	}

	cost := 0.0
	for k := 0; k < len(nodes)-1; k++ {
		w, err := g.Weight(nodes[k], nodes[k+1])
		if err != nil {
			return nil, fmt.Errorf("postman: Solve: summing walk cost: %w", err)
		}
		cost += w
	}

	return &Walk{nodes: nodes, cost: cost}, nil
}
