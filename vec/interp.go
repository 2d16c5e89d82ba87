package vec

import "github.com/cwbudde/algo-glm/kind"

// Mix interpolates linearly: lo*(1-a) + hi*a, evaluated in the arithmetic
// of T. For integer kinds only the weights 0 and 1 are meaningful; they
// return lo and hi exactly, and other weights extrapolate with wrapping.
func Mix[T kind.Number, N Arity](lo, hi, a Vector[T, N]) Vector[T, N] {
	return zip3(lo, hi, a, mix[T])
}

// Lerp is Mix.
func Lerp[T kind.Number, N Arity](lo, hi, a Vector[T, N]) Vector[T, N] {
	return Mix(lo, hi, a)
}

// MixScalar interpolates with one weight for every component.
func MixScalar[T kind.Number, N Arity](lo, hi Vector[T, N], a T) Vector[T, N] {
	return Mix(lo, hi, Splat[T, N](a))
}

// Smoothstep is the cubic Hermite step t²(3-2t) with
// t = clamp((v-edge0)/(edge1-edge0), 0, 1).
func Smoothstep[T kind.Number, N Arity](edge0, edge1, v Vector[T, N]) Vector[T, N] {
	return zip3(edge0, edge1, v, smoothstep[T])
}

// Smootherstep is the quintic step t³(t(6t-15)+10).
func Smootherstep[T kind.Number, N Arity](edge0, edge1, v Vector[T, N]) Vector[T, N] {
	return zip3(edge0, edge1, v, smootherstep[T])
}

// Step returns 0 where v < edge and 1 elsewhere.
func Step[T kind.Number, N Arity](edge, v Vector[T, N]) Vector[T, N] {
	return zip(edge, v, func(e, x T) T {
		if x < e {
			return 0
		}
		return 1
	})
}

// Clamp limits every component of v to [lo, hi].
func Clamp[T kind.Number, N Arity](v, lo, hi Vector[T, N]) Vector[T, N] {
	return zip3(v, lo, hi, clamp[T])
}

// ClampScalar limits every component of v to [lo, hi].
func ClampScalar[T kind.Number, N Arity](v Vector[T, N], lo, hi T) Vector[T, N] {
	return Clamp(v, Splat[T, N](lo), Splat[T, N](hi))
}

// Min returns the component-wise minimum.
func Min[T kind.Number, N Arity](a, b Vector[T, N]) Vector[T, N] {
	return zip(a, b, func(x, y T) T { return min(x, y) })
}

// Max returns the component-wise maximum.
func Max[T kind.Number, N Arity](a, b Vector[T, N]) Vector[T, N] {
	return zip(a, b, func(x, y T) T { return max(x, y) })
}

func clamp[T kind.Number](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func isFloat[T kind.Scalar]() bool {
	return kind.KindOf[T]().IsFloat()
}

func mix[T kind.Number](lo, hi, a T) T {
	return lo*(1-a) + hi*a
}

func smoothstep[T kind.Number](e0, e1, x T) T {
	if isFloat[T]() {
		t := clamp((x-e0)/(e1-e0), 0, 1)
		return t * t * (3 - 2*t)
	}
	tr := kind.Of[T]()
	t := unitRatio(tr, e0, e1, x)
	return tr.Truncate(t * t * (3 - 2*t))
}

func smootherstep[T kind.Number](e0, e1, x T) T {
	if isFloat[T]() {
		t := clamp((x-e0)/(e1-e0), 0, 1)
		return t * t * t * (t*(t*6-15) + 10)
	}
	tr := kind.Of[T]()
	t := unitRatio(tr, e0, e1, x)
	return tr.Truncate(t * t * t * (t*(t*6-15) + 10))
}

func unitRatio[T kind.Number](tr kind.Traits[T], e0, e1, x T) float64 {
	lo, hi := tr.Float64(e0), tr.Float64(e1)
	return clamp((tr.Float64(x)-lo)/(hi-lo), 0, 1)
}
