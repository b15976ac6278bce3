package hungarian

import (
	"math"

	"github.com/katalvlaran/dcpp-solver/matrix"
)

// Pair is one committed (row, col) match, in the original cost matrix's
// index space.
type Pair struct {
	Row, Col int
}

// SolveRectangular is the defensive size-mismatch entry point. A consistent
// digraph's imbalance sets always satisfy |neg| == |pos|, so package
// postman never needs this path — it exists to harden the module against
// misuse by a caller that cannot make that guarantee.
//
// When rows == cols, it delegates directly to Solve. When rows > cols, it
// greedily prematches the excess rows down to a square residual: repeatedly
// take the remaining row with the smallest row-minimum cost (ties: smallest
// row index), match it to its column-argmin, and remove the row (not the
// column — columns remain reusable by the square solve, since this path is
// inherently approximate) from further consideration; then it runs Solve on
// the square residual. cols > rows is handled by transposing, solving, and
// transposing the result back.
func SolveRectangular(cost matrix.Matrix) ([]Pair, float64, error) {
	if cost == nil {
		return nil, 0, ErrNilMatrix
	}
	rows, cols := cost.Rows(), cost.Cols()
	if rows == 0 || cols == 0 {
		return nil, 0, ErrEmptyMatrix
	}

	if rows == cols {
		assignment, total, err := Solve(cost)
		if err != nil {
			return nil, 0, err
		}
		pairs := make([]Pair, len(assignment))
		for r, c := range assignment {
			pairs[r] = Pair{Row: r, Col: c}
		}

		return pairs, total, nil
	}

	if cols > rows {
		transposed, err := transpose(cost)
		if err != nil {
			return nil, 0, err
		}
		pairs, total, err := SolveRectangular(transposed)
		if err != nil {
			return nil, 0, err
		}
		for i := range pairs {
			pairs[i].Row, pairs[i].Col = pairs[i].Col, pairs[i].Row
		}

		return pairs, total, nil
	}

	// rows > cols: greedily prematch (rows-cols) rows, then solve the
	// square residual over the remaining rows.
	premetched, remaining := greedyPrematchRows(cost, rows-cols)

	residual, _ := matrix.NewDense(len(remaining), cols)
	for ri, origRow := range remaining {
		for j := 0; j < cols; j++ {
			v, _ := cost.At(origRow, j)
			_ = residual.Set(ri, j, v)
		}
	}
	assignment, _, err := Solve(residual)
	if err != nil {
		return nil, 0, err
	}

	pairs := make([]Pair, 0, rows)
	total := 0.0
	for _, p := range premetched {
		pairs = append(pairs, p)
		v, _ := cost.At(p.Row, p.Col)
		total += v
	}
	for ri, col := range assignment {
		origRow := remaining[ri]
		v, _ := cost.At(origRow, col)
		total += v
		pairs = append(pairs, Pair{Row: origRow, Col: col})
	}

	return pairs, total, nil
}

// greedyPrematchRows removes k rows from [0, cost.Rows()) one at a time,
// each time picking the remaining row with the smallest row-minimum cost
// (ties: smallest row index) and matching it to its column-argmin (ties:
// smallest column index). Returns the committed pairs and the rows that
// were never removed, in ascending order.
func greedyPrematchRows(cost matrix.Matrix, k int) ([]Pair, []int) {
	rows, cols := cost.Rows(), cost.Cols()
	remaining := make([]int, rows)
	for i := range remaining {
		remaining[i] = i
	}

	pairs := make([]Pair, 0, k)
	for step := 0; step < k; step++ {
		bestRemIdx, bestCol := -1, -1
		bestMin := math.Inf(1)

		for ri, r := range remaining {
			rowMin := math.Inf(1)
			col := -1
			for j := 0; j < cols; j++ {
				v, _ := cost.At(r, j)
				if v < rowMin {
					rowMin = v
					col = j
				}
			}
			if rowMin < bestMin {
				bestMin = rowMin
				bestRemIdx = ri
				bestCol = col
			}
		}

		r := remaining[bestRemIdx]
		pairs = append(pairs, Pair{Row: r, Col: bestCol})
		remaining = append(remaining[:bestRemIdx], remaining[bestRemIdx+1:]...)
	}

	return pairs, remaining
}

// transpose returns a new Dense matrix with rows and columns swapped.
func transpose(m matrix.Matrix) (*matrix.Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	out, err := matrix.NewDense(cols, rows)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			if err = out.Set(j, i, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
