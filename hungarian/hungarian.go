package hungarian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dcpp-solver/matrix"
)

// Solve computes a minimum-weight perfect matching on a square n x n cost
// matrix via the shortest-augmenting-path (Jonker-Volgenant) formulation of
// the Hungarian algorithm. It returns assignment, where assignment[row] is
// the matched column, and the total matched cost.
//
// Determinism: row potentials u, column potentials v, and the minimal-slack
// scan over columns are all processed in ascending index order, so ties are
// broken by smallest column index.
//
// Complexity: O(n^3) time, O(n^2) space (the cost-matrix reads) plus O(n)
// potential/tracking arrays.
func Solve(cost matrix.Matrix) ([]int, float64, error) {
	if cost == nil {
		return nil, 0, ErrNilMatrix
	}
	if err := matrix.RequireSquare(cost); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}
	n := cost.Rows()
	if n == 0 {
		return nil, 0, ErrEmptyMatrix
	}

	at := func(i, j int) float64 {
		v, _ := cost.At(i, j) // shape already validated above
		return v
	}

	// 1-indexed internal arrays (classical formulation): row 0 / col 0 are
	// sentinels meaning "unmatched".
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1) // p[j] = 1-indexed row matched to column j
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]float64, n+1)
		for j := range minv {
			minv[j] = math.Inf(1)
		}
		used := make([]bool, n+1)

		for {
			used[j0] = true
			i0 := p[j0]
			delta := math.Inf(1)
			j1 := -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := at(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assignment := make([]int, n)
	total := 0.0
	for j := 1; j <= n; j++ {
		row := p[j] - 1
		assignment[row] = j - 1
		total += at(row, j-1)
	}

	return assignment, total, nil
}
