package graph

import (
	"math"

	"github.com/katalvlaran/dcpp-solver/matrix"
)

// ShortestPaths is the result of running Floyd-Warshall over a Graph's
// weight matrix: all-pairs shortest distances, a next-hop table sufficient
// to reconstruct any shortest path, and the connectivity / negative-cycle
// flags the rest of the pipeline gates on.
type ShortestPaths struct {
	n    int
	dist *matrix.Dense
	next [][]int // next[i][j] == -1 means "no path" / undefined
}

// AllPairsShortestPaths runs Floyd-Warshall on a fresh distance matrix
// seeded from g's weights, leaving g itself untouched, and returns the
// resulting ShortestPaths.
//
// Loop order is fixed k -> i -> j for deterministic accumulation.
// Complexity: O(N^3) time, O(N^2) space.
func (g *Graph) AllPairsShortestPaths() *ShortestPaths {
	n := g.n
	dist, _ := matrix.NewDense(maxInt(n, 1), maxInt(n, 1))
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			w := g.w.MustAt(i, j)
			_ = dist.Set(i, j, w)
			if !math.IsInf(w, 1) {
				next[i][j] = j
			} else {
				next[i][j] = -1
			}
		}
	}

	// Triple loop, relaxing only through finite intermediates (both a
	// correctness guard against +Inf + +Inf and a performance shortcut).
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := dist.MustAt(i, k)
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				kj := dist.MustAt(k, j)
				if math.IsInf(kj, 1) {
					continue
				}
				cand := ik + kj
				if cand < dist.MustAt(i, j) {
					_ = dist.Set(i, j, cand)
					next[i][j] = next[i][k]
				}
			}
		}
	}

	return &ShortestPaths{n: n, dist: dist, next: next}
}

// Distances returns a read-only-by-convention view of the shortest-distance
// matrix D.
func (sp *ShortestPaths) Distances() matrix.Matrix { return sp.dist }

// PathBetween walks next[][] from s to reconstruct the shortest s->t path as
// [s, ..., t]. Returns nil if no path exists (an undefined next entry is hit
// mid-walk) or if s/t are out of range.
func (sp *ShortestPaths) PathBetween(s, t int) []int {
	if s < 0 || s >= sp.n || t < 0 || t >= sp.n {
		return nil
	}
	if sp.next[s][t] == -1 {
		return nil
	}

	path := []int{s}
	cur := s
	for cur != t {
		cur = sp.next[cur][t]
		if cur == -1 {
			return nil
		}
		path = append(path, cur)
	}

	return path
}

// StronglyConnected reports whether every D[i][j] is finite: every node can
// reach every other node.
func (sp *ShortestPaths) StronglyConnected() bool {
	for i := 0; i < sp.n; i++ {
		for j := 0; j < sp.n; j++ {
			if math.IsInf(sp.dist.MustAt(i, j), 1) {
				return false
			}
		}
	}

	return true
}

// HasNegativeCycle reports whether any D[i][i] < 0 after the single
// converged Floyd-Warshall pass: a node that can reach itself via a walk of
// negative total weight sits on a negative cycle. A second relaxation pass
// that flags any further improvement would false-positive on a graph that
// has not yet fully converged, so this checks only the converged diagonal.
func (sp *ShortestPaths) HasNegativeCycle() bool {
	for i := 0; i < sp.n; i++ {
		if sp.dist.MustAt(i, i) < 0 {
			return true
		}
	}

	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
