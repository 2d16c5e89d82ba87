package vec

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-glm/kind"
)

// Abs returns the absolute value of every component. Unsigned kinds are
// returned unchanged. The most negative integer stays negative, as in
// two's complement negation.
func Abs[T kind.Number, N Arity](v Vector[T, N]) Vector[T, N] {
	return Map(v, kind.Of[T]().Abs)
}

// Sign returns -1, 0 or 1 per component. NaN components stay NaN.
func Sign[T kind.Signed, N Arity](v Vector[T, N]) Vector[T, N] {
	return Map(v, func(x T) T {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return x - x
		}
	})
}

// Sqr returns v*v.
func Sqr[T kind.Number, N Arity](v Vector[T, N]) Vector[T, N] {
	return Mul(v, v)
}

// Sqrt returns the square root of every component. Integer kinds truncate
// toward zero; negative integers yield 0.
func Sqrt[T kind.Number, N Arity](v Vector[T, N]) Vector[T, N] {
	return unary(v, math.Sqrt, math32.Sqrt)
}

func Exp[T kind.Number, N Arity](v Vector[T, N]) Vector[T, N] {
	return unary(v, math.Exp, math32.Exp)
}

func Log[T kind.Number, N Arity](v Vector[T, N]) Vector[T, N] {
	return unary(v, math.Log, math32.Log)
}

// Pow raises every component of v to the matching component of e.
func Pow[T kind.Number, N Arity](v, e Vector[T, N]) Vector[T, N] {
	return binary(v, e, math.Pow, math32.Pow)
}

// PowScalar raises every component of v to e.
func PowScalar[T kind.Number, N Arity](v Vector[T, N], e T) Vector[T, N] {
	return Pow(v, Splat[T, N](e))
}

func Floor[T kind.Float, N Arity](v Vector[T, N]) Vector[T, N] {
	return unary(v, math.Floor, math32.Floor)
}

func Ceil[T kind.Float, N Arity](v Vector[T, N]) Vector[T, N] {
	return unary(v, math.Ceil, math32.Ceil)
}

// Round rounds half away from zero.
func Round[T kind.Float, N Arity](v Vector[T, N]) Vector[T, N] {
	return unary(v, math.Round, math32.Round)
}

func Trunc[T kind.Float, N Arity](v Vector[T, N]) Vector[T, N] {
	return unary(v, math.Trunc, math32.Trunc)
}

// Fract returns v - Floor(v), which lies in [0, 1) for finite input.
func Fract[T kind.Float, N Arity](v Vector[T, N]) Vector[T, N] {
	return Sub(v, Floor(v))
}

// unary evaluates f32 on float32 components and f64 on the other kinds,
// truncating integer results back to T.
func unary[T kind.Number, N Arity](v Vector[T, N], f64 func(float64) float64, f32 func(float32) float32) Vector[T, N] {
	tr := kind.Of[T]()
	return Map(v, func(x T) T {
		if xf, ok := any(x).(float32); ok {
			return any(f32(xf)).(T)
		}
		return tr.Truncate(f64(tr.Float64(x)))
	})
}

func binary[T kind.Number, N Arity](a, b Vector[T, N], f64 func(float64, float64) float64, f32 func(float32, float32) float32) Vector[T, N] {
	tr := kind.Of[T]()
	return zip(a, b, func(x, y T) T {
		if xf, ok := any(x).(float32); ok {
			return any(f32(xf, any(y).(float32))).(T)
		}
		return tr.Truncate(f64(tr.Float64(x), tr.Float64(y)))
	})
}
