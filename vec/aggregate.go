package vec

import "github.com/cwbudde/algo-glm/kind"

// Sum adds the components pairwise: x+y, (x+y)+z or (x+y)+(z+w).
func Sum[T kind.Number, N Arity](v Vector[T, N]) T {
	return fold(v, add[T])
}

// Product multiplies the components in the same order as Sum.
func Product[T kind.Number, N Arity](v Vector[T, N]) T {
	return fold(v, mul[T])
}

// MinElement returns the smallest component.
func MinElement[T kind.Number, N Arity](v Vector[T, N]) T {
	return fold(v, func(x, y T) T { return min(x, y) })
}

// MaxElement returns the largest component.
func MaxElement[T kind.Number, N Arity](v Vector[T, N]) T {
	return fold(v, func(x, y T) T { return max(x, y) })
}

// Count returns the number of true components.
func Count[N Arity](v Vector[bool, N]) int {
	n := 0
	for _, b := range v.c[:v.Len()] {
		if b {
			n++
		}
	}
	return n
}
