package matrix

import (
	"fmt"
	"math"
)

// Matrix is the narrow surface every numeric stage of the pipeline programs
// against: a square or rectangular float64 grid with bounds-checked access.
// Dense is the only implementation this module ships. The Hungarian solver
// is written against the interface; the Floyd-Warshall engine in package
// graph uses *Dense directly.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At retrieves the element at (row, col).
	At(row, col int) (float64, error)
	// Set assigns v at (row, col).
	Set(row, col int, v float64) error
	// Clone returns a deep, independent copy.
	Clone() Matrix
}

// Dense is a row-major float64 matrix backed by a single flat slice. Flat
// storage keeps Floyd-Warshall's O(n^3) hot loop allocation-free and cache
// friendly: data[i*c+j] is element (i, j).
type Dense struct {
	r, c int
	data []float64
}

// denseErrorf wraps err with the method and coordinates that triggered it,
// e.g. "Dense.At(3,7): matrix: index out of bounds".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense allocates an r x c Dense matrix initialized to zero.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Fill overwrites the whole backing slice in row-major order. len(values)
// must equal Rows()*Cols(). Used by callers that need to seed +Inf fixtures
// without a Set-per-cell loop. Rejects ErrNaN on the first NaN entry found;
// +Inf/-Inf pass through untouched.
func (m *Dense) Fill(values []float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(values) != m.r*m.c {
		return ErrDimensionMismatch
	}
	for i, v := range values {
		if math.IsNaN(v) {
			return fmt.Errorf("Dense.Fill: value %d: %w", i, ErrNaN)
		}
	}
	copy(m.data, values)

	return nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// inBounds reports whether (row, col) lies within [0, r) x [0, c).
func (m *Dense) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// offset is the row-major flat index for an already-validated (row, col).
func (m *Dense) offset(row, col int) int {
	return row*m.c + col
}

// At retrieves the element at (row, col). Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, denseErrorf("At", row, col, ErrIndexOutOfBounds)
	}

	return m.data[m.offset(row, col)], nil
}

// MustAt is At without an error return, for call sites that have already
// validated shape (e.g. the Floyd-Warshall hot loop). It panics on an
// out-of-bounds access, which would indicate a programmer error upstream.
func (m *Dense) MustAt(row, col int) float64 {
	if !m.inBounds(row, col) {
		panic(denseErrorf("MustAt", row, col, ErrIndexOutOfBounds))
	}

	return m.data[m.offset(row, col)]
}

// Set assigns v at (row, col). Rejects ErrNaN; +Inf/-Inf are valid "no
// edge" sentinels elsewhere in this module and are stored as given.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return denseErrorf("Set", row, col, ErrIndexOutOfBounds)
	}
	if math.IsNaN(v) {
		return denseErrorf("Set", row, col, ErrNaN)
	}
	m.data[m.offset(row, col)] = v

	return nil
}

// Clone returns a deep copy of m. Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	s := ""
	for i := 0; i < m.r; i++ {
		s += "["
		for j := 0; j < m.c; j++ {
			if j > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%g", m.data[i*m.c+j])
		}
		s += "]\n"
	}

	return s
}
