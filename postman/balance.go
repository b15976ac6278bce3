package postman

import (
	"fmt"

	"github.com/katalvlaran/dcpp-solver/graph"
	"github.com/katalvlaran/dcpp-solver/hungarian"
	"github.com/katalvlaran/dcpp-solver/matrix"
)

// balance repairs g's out/in-degree imbalance in place: it builds the
// p x q cost matrix M[i][j] = D[neg[i]][pos[j]] over shortest-path
// distances, solves the minimum-weight assignment, and for every matched
// pair walks the Floyd-Warshall-reconstructed shortest path, duplicating
// each consecutive edge along it via Graph.AddEdge.
//
// A consistent digraph's imbalance set always has len(Neg) == len(Pos) (the
// sum of out-in over any digraph is zero), so this always calls the square
// hungarian.Solve, never SolveRectangular.
func balance(g *graph.Graph, sp *graph.ShortestPaths, imbalance graph.ImbalanceSet) error {
	if imbalance.Empty() {
		return nil
	}

	p := len(imbalance.Neg)
	cost, err := matrix.NewDense(p, p)
	if err != nil {
		return fmt.Errorf("balance: building cost matrix: %w", err)
	}
	for i, u := range imbalance.Neg {
		for j, v := range imbalance.Pos {
			d, err := sp.Distances().At(u, v)
			if err != nil {
				return fmt.Errorf("balance: reading shortest distance: %w", err)
			}
			if err := cost.Set(i, j, d); err != nil {
				return fmt.Errorf("balance: populating cost matrix: %w", err)
			}
		}
	}

	assignment, _, err := hungarian.Solve(cost)
	if err != nil {
		return fmt.Errorf("balance: matching imbalanced nodes: %w", err)
	}

	for i, j := range assignment {
		u, v := imbalance.Neg[i], imbalance.Pos[j]
		path := sp.PathBetween(u, v)
		for k := 0; k < len(path)-1; k++ {
			a, b := path[k], path[k+1]
			w, err := g.Weight(a, b)
			if err != nil {
				return fmt.Errorf("balance: reading detour weight: %w", err)
			}
			if err := g.AddEdge(a, b, w); err != nil {
				return fmt.Errorf("balance: duplicating detour edge: %w", err)
			}
		}
	}

	return nil
}
