package vec

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-glm/kind"
)

// Add returns a + b component-wise. Integer kinds wrap on overflow.
func Add[T kind.Number, N Arity](a, b Vector[T, N]) Vector[T, N] {
	return zip(a, b, add[T])
}

// Sub returns a - b component-wise.
func Sub[T kind.Number, N Arity](a, b Vector[T, N]) Vector[T, N] {
	return zip(a, b, sub[T])
}

// Mul returns the component-wise product.
func Mul[T kind.Number, N Arity](a, b Vector[T, N]) Vector[T, N] {
	return zip(a, b, mul[T])
}

// Div returns a / b component-wise. Integer division by zero panics with
// the runtime's divide error; float division yields ±Inf or NaN.
func Div[T kind.Number, N Arity](a, b Vector[T, N]) Vector[T, N] {
	return zip(a, b, div[T])
}

// Mod returns the component-wise remainder. Integers use %, floats fmod,
// so the result takes the sign of the dividend in both cases.
func Mod[T kind.Number, N Arity](a, b Vector[T, N]) Vector[T, N] {
	return zip(a, b, mod[T])
}

// AddScalar returns v + s for every component. Addition commutes, so it
// also serves the s + v shape; the same holds for MulScalar.
func AddScalar[T kind.Number, N Arity](v Vector[T, N], s T) Vector[T, N] {
	return Add(v, Splat[T, N](s))
}

func SubScalar[T kind.Number, N Arity](v Vector[T, N], s T) Vector[T, N] {
	return Sub(v, Splat[T, N](s))
}

func MulScalar[T kind.Number, N Arity](v Vector[T, N], s T) Vector[T, N] {
	return Mul(v, Splat[T, N](s))
}

func DivScalar[T kind.Number, N Arity](v Vector[T, N], s T) Vector[T, N] {
	return Div(v, Splat[T, N](s))
}

func ModScalar[T kind.Number, N Arity](v Vector[T, N], s T) Vector[T, N] {
	return Mod(v, Splat[T, N](s))
}

// ScalarSub returns s - v for every component.
func ScalarSub[T kind.Number, N Arity](s T, v Vector[T, N]) Vector[T, N] {
	return Sub(Splat[T, N](s), v)
}

// ScalarDiv returns s / v for every component.
func ScalarDiv[T kind.Number, N Arity](s T, v Vector[T, N]) Vector[T, N] {
	return Div(Splat[T, N](s), v)
}

// ScalarMod returns s mod v for every component.
func ScalarMod[T kind.Number, N Arity](s T, v Vector[T, N]) Vector[T, N] {
	return Mod(Splat[T, N](s), v)
}

// Neg returns -v.
func Neg[T kind.Signed, N Arity](v Vector[T, N]) Vector[T, N] {
	return Map(v, func(x T) T { return -x })
}

func add[T kind.Number](x, y T) T { return x + y }
func sub[T kind.Number](x, y T) T { return x - y }
func mul[T kind.Number](x, y T) T { return x * y }
func div[T kind.Number](x, y T) T { return x / y }

func mod[T kind.Number](x, y T) T {
	switch xv := any(x).(type) {
	case int32:
		return any(xv % any(y).(int32)).(T)
	case uint32:
		return any(xv % any(y).(uint32)).(T)
	case int64:
		return any(xv % any(y).(int64)).(T)
	case uint64:
		return any(xv % any(y).(uint64)).(T)
	case float32:
		return any(math32.Mod(xv, any(y).(float32))).(T)
	default:
		return any(math.Mod(any(x).(float64), any(y).(float64))).(T)
	}
}
