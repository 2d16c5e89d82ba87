package mat

import (
	"fmt"

	"github.com/cwbudde/algo-glm/kind"
	"github.com/cwbudde/algo-glm/vec"
)

// Matrix is an R×C matrix stored column-major.
type Matrix[T kind.Number, R, C vec.Arity] struct {
	cols [4]vec.Vector[T, R]
}

// Zero returns the zero matrix.
func Zero[T kind.Number, R, C vec.Arity]() Matrix[T, R, C] {
	return Matrix[T, R, C]{}
}

// Identity returns ones on the main diagonal and zeros elsewhere. For
// non-square shapes the diagonal stops at the shorter side.
func Identity[T kind.Number, R, C vec.Arity]() Matrix[T, R, C] {
	return Diagonal[T, R, C](1)
}

// Diagonal puts s on the main diagonal.
func Diagonal[T kind.Number, R, C vec.Arity](s T) Matrix[T, R, C] {
	var m Matrix[T, R, C]
	for i := range min(m.Rows(), m.Cols()) {
		m.cols[i].SetAt(i, s)
	}
	return m
}

// Fill sets every entry to s.
func Fill[T kind.Number, R, C vec.Arity](s T) Matrix[T, R, C] {
	var m Matrix[T, R, C]
	for j := range m.Cols() {
		m.cols[j] = vec.Splat[T, R](s)
	}
	return m
}

// FromDiagonal returns the square matrix with d on its diagonal.
func FromDiagonal[T kind.Number, N vec.Arity](d vec.Vector[T, N]) Matrix[T, N, N] {
	var m Matrix[T, N, N]
	for i, x := range d.All() {
		m.cols[i].SetAt(i, x)
	}
	return m
}

// FromColumns builds a matrix from exactly C columns.
//
//	m := mat.FromColumns[vec.Three](c0, c1, c2)
func FromColumns[C vec.Arity, T kind.Number, R vec.Arity](cols ...vec.Vector[T, R]) Matrix[T, R, C] {
	var m Matrix[T, R, C]
	if len(cols) != m.Cols() {
		panic(fmt.Sprintf("mat: FromColumns got %d columns, want %d", len(cols), m.Cols()))
	}
	copy(m.cols[:], cols)
	return m
}

// FromRows builds a matrix from exactly R rows.
func FromRows[R vec.Arity, T kind.Number, C vec.Arity](rows ...vec.Vector[T, C]) Matrix[T, R, C] {
	var m Matrix[T, R, C]
	if len(rows) != m.Rows() {
		panic(fmt.Sprintf("mat: FromRows got %d rows, want %d", len(rows), m.Rows()))
	}
	for i, row := range rows {
		m.SetRow(i, row)
	}
	return m
}

// OuterProduct returns the matrix with entry (col j, row i) = c[i]*r[j].
func OuterProduct[T kind.Number, R, C vec.Arity](c vec.Vector[T, R], r vec.Vector[T, C]) Matrix[T, R, C] {
	var m Matrix[T, R, C]
	for j, x := range r.All() {
		m.cols[j] = vec.MulScalar(c, x)
	}
	return m
}

// Rows returns R.
func (m Matrix[T, R, C]) Rows() int { return vec.Dim[R]() }

// Cols returns C.
func (m Matrix[T, R, C]) Cols() int { return vec.Dim[C]() }

// At returns the entry in column col and row row. It panics when either is
// out of range.
func (m Matrix[T, R, C]) At(col, row int) T {
	m.checkCol(col)
	return m.cols[col].At(row)
}

// Set assigns the entry in column col and row row.
func (m *Matrix[T, R, C]) Set(col, row int, x T) {
	m.checkCol(col)
	m.cols[col].SetAt(row, x)
}

// Column returns column j.
func (m Matrix[T, R, C]) Column(j int) vec.Vector[T, R] {
	m.checkCol(j)
	return m.cols[j]
}

// SetColumn replaces column j.
func (m *Matrix[T, R, C]) SetColumn(j int, v vec.Vector[T, R]) {
	m.checkCol(j)
	m.cols[j] = v
}

// Row returns row i.
func (m Matrix[T, R, C]) Row(i int) vec.Vector[T, C] {
	var r vec.Vector[T, C]
	for j := range m.Cols() {
		r.SetAt(j, m.cols[j].At(i))
	}
	return r
}

// SetRow replaces row i.
func (m *Matrix[T, R, C]) SetRow(i int, v vec.Vector[T, C]) {
	for j, x := range v.All() {
		m.cols[j].SetAt(i, x)
	}
}

func (m Matrix[T, R, C]) checkCol(j int) {
	if n := m.Cols(); j < 0 || j >= n {
		panic(fmt.Errorf("%w: column %d not in [0,%d)", vec.ErrIndexOutOfRange, j, n))
	}
}
