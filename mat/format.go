package mat

import (
	"github.com/cwbudde/algo-glm/kind"
	"github.com/cwbudde/algo-glm/vec"
)

// Slice returns the entries column by column.
func (m Matrix[T, R, C]) Slice() []T {
	out := make([]T, 0, m.Rows()*m.Cols())
	for j := range m.Cols() {
		out = append(out, m.cols[j].Slice()...)
	}
	return out
}

// String lists the entries column by column separated by ", ".
func (m Matrix[T, R, C]) String() string {
	return m.ToString(", ")
}

// ToString lists the entries column by column separated by sep.
func (m Matrix[T, R, C]) ToString(sep string, opts ...vec.FormatOption) string {
	return vec.FormatComponents(m.Slice(), sep, opts...)
}

// Parse reads R·C entries in column-major order. Errors wrap vec.ErrFormat.
func Parse[T kind.Number, R, C vec.Arity](s, sep string) (Matrix[T, R, C], error) {
	var m Matrix[T, R, C]
	xs, err := vec.ParseComponents[T](s, sep, m.Rows()*m.Cols())
	if err != nil {
		return Matrix[T, R, C]{}, err
	}
	r := m.Rows()
	for j := range m.Cols() {
		m.cols[j] = vec.FromSlice[T, R](xs[j*r : (j+1)*r])
	}
	return m, nil
}
