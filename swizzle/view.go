package swizzle

import (
	"fmt"

	"github.com/cwbudde/algo-glm/kind"
	"github.com/cwbudde/algo-glm/vec"
)

// View is a read projection over a copy of a vector.
type View[T kind.Scalar, N vec.Arity] struct {
	src vec.Vector[T, N]
}

// Of captures v.
func Of[T kind.Scalar, N vec.Arity](v vec.Vector[T, N]) View[T, N] {
	return View[T, N]{src: v}
}

// Source returns the captured vector.
func (w View[T, N]) Source() vec.Vector[T, N] { return w.src }

// Len returns the arity of the captured vector.
func (w View[T, N]) Len() int { return w.src.Len() }

// At returns component i; it panics like vec.Vector.At.
func (w View[T, N]) At(i int) T { return w.src.At(i) }

// Scalar returns the component named by a single letter, e.g. 'g' or 'w'.
func (w View[T, N]) Scalar(letter byte) (T, error) {
	idx, err := resolve(string([]byte{letter}), 1, w.Len())
	if err != nil {
		var zero T
		return zero, err
	}
	return w.src.At(idx[0]), nil
}

// Get selects M components by pattern. Letters may repeat.
//
//	xxyy, err := swizzle.Get[vec.Four](swizzle.Of(v), "xxyy")
func Get[M vec.Arity, T kind.Scalar, N vec.Arity](w View[T, N], pattern string) (vec.Vector[T, M], error) {
	idx, err := resolve(pattern, vec.Dim[M](), w.Len())
	if err != nil {
		return vec.Vector[T, M]{}, err
	}
	return gather[M](w.src, idx), nil
}

// MustGet is Get for patterns known to be valid; it panics on error.
func MustGet[M vec.Arity, T kind.Scalar, N vec.Arity](w View[T, N], pattern string) vec.Vector[T, M] {
	r, err := Get[M](w, pattern)
	if err != nil {
		panic(err)
	}
	return r
}

// Select picks M components by index. Indices may repeat.
func Select[M vec.Arity, T kind.Scalar, N vec.Arity](w View[T, N], idx ...int) (vec.Vector[T, M], error) {
	if m := vec.Dim[M](); len(idx) != m {
		return vec.Vector[T, M]{}, fmt.Errorf("%w: %d indices for %d components", ErrInvalidPattern, len(idx), m)
	}
	for _, i := range idx {
		if i < 0 || i >= w.Len() {
			return vec.Vector[T, M]{}, fmt.Errorf("%w: %d not in [0,%d)", vec.ErrIndexOutOfRange, i, w.Len())
		}
	}
	return gather[M](w.src, idx), nil
}

// Assign writes values into the components named by pattern and returns
// the result. The pattern must name every component exactly once, so "yx"
// on a 2-component vector swaps the values in. The captured vector is not
// modified.
func (w View[T, N]) Assign(pattern string, values vec.Vector[T, N]) (vec.Vector[T, N], error) {
	n := w.Len()
	idx, err := resolve(pattern, n, n)
	if err != nil {
		return w.src, err
	}
	var seen [4]bool
	for _, i := range idx {
		if seen[i] {
			return w.src, fmt.Errorf("%w: %q is not a permutation", ErrInvalidPattern, pattern)
		}
		seen[i] = true
	}
	out := w.src
	for k, i := range idx {
		out.SetAt(i, values.At(k))
	}
	return out, nil
}

// resolve parses pattern into m indices below n.
func resolve(pattern string, m, n int) ([]int, error) {
	idx, err := vec.ParsePattern(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	if len(idx) != m {
		return nil, fmt.Errorf("%w: %q has %d letters, want %d", ErrInvalidPattern, pattern, len(idx), m)
	}
	for _, i := range idx {
		if i >= n {
			return nil, fmt.Errorf("%w: %q addresses component %d of %d", vec.ErrIndexOutOfRange, pattern, i, n)
		}
	}
	return idx, nil
}

func gather[M vec.Arity, T kind.Scalar, N vec.Arity](src vec.Vector[T, N], idx []int) vec.Vector[T, M] {
	var r vec.Vector[T, M]
	for k, i := range idx {
		r.SetAt(k, src.At(i))
	}
	return r
}
