package mat

import (
	"github.com/cwbudde/algo-glm/internal/kernel"
	"github.com/cwbudde/algo-glm/kind"
	"github.com/cwbudde/algo-glm/vec"
)

// Transpose swaps rows and columns.
func (m Matrix[T, R, C]) Transpose() Matrix[T, C, R] {
	var t Matrix[T, C, R]
	for i := range m.Rows() {
		t.cols[i] = m.Row(i)
	}
	return t
}

// MulVec returns m·v for a column vector v.
func MulVec[T kind.Number, R, C vec.Arity](m Matrix[T, R, C], v vec.Vector[T, C]) vec.Vector[T, R] {
	acc := make([]T, m.Rows())
	for j, x := range v.All() {
		kernel.AddScaled(acc, acc, m.cols[j].Slice(), x)
	}
	return vec.FromSlice[T, R](acc)
}

// VecMul returns v·m for a row vector v.
func VecMul[T kind.Number, R, C vec.Arity](v vec.Vector[T, R], m Matrix[T, R, C]) vec.Vector[T, C] {
	var r vec.Vector[T, C]
	for j := range m.Cols() {
		r.SetAt(j, vec.Dot(v, m.cols[j]))
	}
	return r
}

// Mul returns the product a·b.
func Mul[T kind.Number, R, K, C vec.Arity](a Matrix[T, R, K], b Matrix[T, K, C]) Matrix[T, R, C] {
	rows := make([][]T, a.Rows())
	for i := range rows {
		rows[i] = a.Row(i).Slice()
	}
	var p Matrix[T, R, C]
	for j := range b.Cols() {
		col := b.cols[j].Slice()
		for i, row := range rows {
			p.cols[j].SetAt(i, kernel.Dot(row, col))
		}
	}
	return p
}

// Add returns a + b entry-wise.
func Add[T kind.Number, R, C vec.Arity](a, b Matrix[T, R, C]) Matrix[T, R, C] {
	for j := range a.Cols() {
		a.cols[j] = vec.Add(a.cols[j], b.cols[j])
	}
	return a
}

// Sub returns a - b entry-wise.
func Sub[T kind.Number, R, C vec.Arity](a, b Matrix[T, R, C]) Matrix[T, R, C] {
	for j := range a.Cols() {
		a.cols[j] = vec.Sub(a.cols[j], b.cols[j])
	}
	return a
}

// Scale multiplies every entry by s.
func Scale[T kind.Number, R, C vec.Arity](m Matrix[T, R, C], s T) Matrix[T, R, C] {
	for j := range m.Cols() {
		m.cols[j] = vec.MulScalar(m.cols[j], s)
	}
	return m
}

// Equal reports whether a and b have identical entries.
func Equal[T kind.Number, R, C vec.Arity](a, b Matrix[T, R, C]) bool {
	return a == b
}
