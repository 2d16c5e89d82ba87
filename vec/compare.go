package vec

import "github.com/cwbudde/algo-glm/kind"

// Equal reports component-wise equality.
func Equal[T kind.Scalar, N Arity](a, b Vector[T, N]) Vector[bool, N] {
	return zip(a, b, func(x, y T) bool { return x == y })
}

// NotEqual reports component-wise inequality.
func NotEqual[T kind.Scalar, N Arity](a, b Vector[T, N]) Vector[bool, N] {
	return zip(a, b, func(x, y T) bool { return x != y })
}

func EqualScalar[T kind.Scalar, N Arity](v Vector[T, N], s T) Vector[bool, N] {
	return Equal(v, Splat[T, N](s))
}

func NotEqualScalar[T kind.Scalar, N Arity](v Vector[T, N], s T) Vector[bool, N] {
	return NotEqual(v, Splat[T, N](s))
}

func LessThan[T kind.Number, N Arity](a, b Vector[T, N]) Vector[bool, N] {
	return zip(a, b, func(x, y T) bool { return x < y })
}

func LessThanEqual[T kind.Number, N Arity](a, b Vector[T, N]) Vector[bool, N] {
	return zip(a, b, func(x, y T) bool { return x <= y })
}

func GreaterThan[T kind.Number, N Arity](a, b Vector[T, N]) Vector[bool, N] {
	return zip(a, b, func(x, y T) bool { return x > y })
}

func GreaterThanEqual[T kind.Number, N Arity](a, b Vector[T, N]) Vector[bool, N] {
	return zip(a, b, func(x, y T) bool { return x >= y })
}

// LessThanScalar compares every component of v against s (v < s).
func LessThanScalar[T kind.Number, N Arity](v Vector[T, N], s T) Vector[bool, N] {
	return LessThan(v, Splat[T, N](s))
}

func LessThanEqualScalar[T kind.Number, N Arity](v Vector[T, N], s T) Vector[bool, N] {
	return LessThanEqual(v, Splat[T, N](s))
}

func GreaterThanScalar[T kind.Number, N Arity](v Vector[T, N], s T) Vector[bool, N] {
	return GreaterThan(v, Splat[T, N](s))
}

func GreaterThanEqualScalar[T kind.Number, N Arity](v Vector[T, N], s T) Vector[bool, N] {
	return GreaterThanEqual(v, Splat[T, N](s))
}

// ScalarLessThan compares s against every component of v (s < v).
func ScalarLessThan[T kind.Number, N Arity](s T, v Vector[T, N]) Vector[bool, N] {
	return LessThan(Splat[T, N](s), v)
}

func ScalarLessThanEqual[T kind.Number, N Arity](s T, v Vector[T, N]) Vector[bool, N] {
	return LessThanEqual(Splat[T, N](s), v)
}

func ScalarGreaterThan[T kind.Number, N Arity](s T, v Vector[T, N]) Vector[bool, N] {
	return GreaterThan(Splat[T, N](s), v)
}

func ScalarGreaterThanEqual[T kind.Number, N Arity](s T, v Vector[T, N]) Vector[bool, N] {
	return GreaterThanEqual(Splat[T, N](s), v)
}

// Any reports whether at least one component is true.
func Any[N Arity](v Vector[bool, N]) bool {
	return fold(v, func(x, y bool) bool { return x || y })
}

// All reports whether every component is true.
func All[N Arity](v Vector[bool, N]) bool {
	return fold(v, func(x, y bool) bool { return x && y })
}

// Not negates every component.
func Not[N Arity](v Vector[bool, N]) Vector[bool, N] {
	return Map(v, func(x bool) bool { return !x })
}

// And is the component-wise logical conjunction.
func And[N Arity](a, b Vector[bool, N]) Vector[bool, N] {
	return zip(a, b, func(x, y bool) bool { return x && y })
}

// Or is the component-wise logical disjunction.
func Or[N Arity](a, b Vector[bool, N]) Vector[bool, N] {
	return zip(a, b, func(x, y bool) bool { return x || y })
}
