package spline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrShapeMismatch is returned by [Matrix.Mul] when the inner dimensions of
// the operands disagree.
var ErrShapeMismatch = errors.New("spline: matrix shape mismatch")

// Matrix is a dense, row-major matrix of float64 values.
//
// The zero value is a 0×0 matrix. [Matrix.SetShape] and [Matrix.Scale]
// modify the matrix in place and return it, so that they can be chained.
// All other methods leave the receiver untouched.
type Matrix struct {
	rows, cols int
	// dense is nil iff rows or cols is zero; gonum has no empty matrices.
	dense *mat.Dense
}

func newMatrix(rows, cols int) *Matrix {
	m := &Matrix{rows: rows, cols: cols}
	if rows > 0 && cols > 0 {
		m.dense = mat.NewDense(rows, cols, nil)
	}
	return m
}

// NewMatrix builds a matrix from a list of rows. The rows may have different
// lengths: the matrix has as many columns as the longest row, and shorter rows
// are padded with zeros. The values are copied; the matrix does not alias
// the caller's slices.
func NewMatrix(rows ...[]float64) *Matrix {
	m := newMatrix(len(rows), widest(rows))
	padRows(m, rows)
	return m
}

func widest(rows [][]float64) int {
	var n int
	for _, row := range rows {
		n = max(n, len(row))
	}
	return n
}

// padRows copies rows into the zero-initialized m, leaving the cells past the
// end of short rows at zero.
func padRows(m *Matrix, rows [][]float64) {
	for i, row := range rows {
		for j, v := range row {
			m.dense.Set(i, j, v)
		}
	}
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	if n == 0 {
		return newMatrix(0, 0)
	}
	data := make([]float64, n*n)
	for i := range n {
		data[i*n+i] = 1
	}
	return &Matrix{rows: n, cols: n, dense: mat.NewDense(n, n, data)}
}

// SetShape resizes the matrix to exactly d1 rows and d2 columns. Growing
// appends zero-filled rows and columns, shrinking truncates. It returns m.
//
// SetShape panics if either dimension is negative.
func (m *Matrix) SetShape(d1, d2 int) *Matrix {
	if d1 < 0 || d2 < 0 {
		panic(fmt.Sprintf("spline: negative matrix shape %dx%d", d1, d2))
	}
	resized := newMatrix(d1, d2)
	if resized.dense != nil && m.dense != nil {
		// Copy transfers the overlapping top-left block.
		resized.dense.Copy(m.dense)
	}
	*m = *resized
	return m
}

// Scale multiplies every element of m by k. It returns m.
func (m *Matrix) Scale(k float64) *Matrix {
	if m.dense != nil {
		m.dense.Scale(k, m.dense)
	}
	return m
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At returns the element at row i, column j. It panics if the indices are out
// of range.
func (m *Matrix) At(i, j int) float64 {
	if m.dense == nil {
		panic(mat.ErrIndexOutOfRange)
	}
	return m.dense.At(i, j)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	if m.dense == nil {
		if i < 0 || i >= m.rows {
			panic(mat.ErrRowAccess)
		}
		return []float64{}
	}
	return mat.Row(nil, i, m.dense)
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	c := newMatrix(m.rows, m.cols)
	if c.dense != nil {
		c.dense.Copy(m.dense)
	}
	return c
}

// Mul returns the matrix product m × o. It returns an error wrapping
// [ErrShapeMismatch] if m doesn't have as many columns as o has rows.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.cols != o.rows {
		return nil, fmt.Errorf("%w: %dx%d × %dx%d", ErrShapeMismatch, m.rows, m.cols, o.rows, o.cols)
	}
	out := newMatrix(m.rows, o.cols)
	// With an empty inner dimension the product is all zeros.
	if out.dense != nil && m.cols > 0 {
		out.dense.Mul(m.dense, o.dense)
	}
	return out, nil
}

// mustMul is Mul for operands whose shapes are fixed by construction.
func mustMul(a, b *Matrix) *Matrix {
	out, err := a.Mul(b)
	if err != nil {
		panic(err)
	}
	return out
}

// Equal reports whether m and o have the same shape and all elements are
// within tol of each other, absolutely or relatively.
func (m *Matrix) Equal(o *Matrix, tol float64) bool {
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	if m.dense == nil {
		return true
	}
	return mat.EqualApprox(m.dense, o.dense, tol)
}

func (m *Matrix) String() string {
	sb := &strings.Builder{}
	sb.WriteByte('[')
	for i := range m.rows {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('[')
		for j := range m.cols {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(m.dense.At(i, j), 'g', -1, 64))
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(']')
	return sb.String()
}
