package mat

import (
	"fmt"

	gonum "gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-glm/kind"
	"github.com/cwbudde/algo-glm/vec"
)

// ToDense copies m into a gonum dense matrix.
func ToDense[T kind.Number, R, C vec.Arity](m Matrix[T, R, C]) *gonum.Dense {
	tr := kind.Of[T]()
	r, c := m.Rows(), m.Cols()
	data := make([]float64, r*c)
	for j := range c {
		for i := range r {
			data[i*c+j] = tr.Float64(m.cols[j].At(i))
		}
	}
	return gonum.NewDense(r, c, data)
}

// FromDense copies a gonum matrix of matching shape. Integer kinds
// truncate the float64 entries toward zero.
func FromDense[T kind.Number, R, C vec.Arity](src gonum.Matrix) (Matrix[T, R, C], error) {
	var m Matrix[T, R, C]
	r, c := src.Dims()
	if r != m.Rows() || c != m.Cols() {
		return m, fmt.Errorf("%w: got %dx%d, want %dx%d", ErrShape, r, c, m.Rows(), m.Cols())
	}
	tr := kind.Of[T]()
	for j := range c {
		for i := range r {
			m.cols[j].SetAt(i, tr.Truncate(src.At(i, j)))
		}
	}
	return m, nil
}
