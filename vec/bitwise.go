package vec

import "github.com/cwbudde/algo-glm/kind"

// BitwiseAnd returns a & b component-wise; for bool it is logical and.
func BitwiseAnd[T kind.Bits, N Arity](a, b Vector[T, N]) Vector[T, N] {
	return zip(a, b, kind.BitsOf[T]().And)
}

// BitwiseOr returns a | b component-wise; for bool it is logical or.
func BitwiseOr[T kind.Bits, N Arity](a, b Vector[T, N]) Vector[T, N] {
	return zip(a, b, kind.BitsOf[T]().Or)
}

// Xor returns a ^ b component-wise; for bool it is inequality.
func Xor[T kind.Bits, N Arity](a, b Vector[T, N]) Vector[T, N] {
	return zip(a, b, kind.BitsOf[T]().Xor)
}

// BitwiseNot complements every component.
func BitwiseNot[T kind.Bits, N Arity](v Vector[T, N]) Vector[T, N] {
	return Map(v, kind.BitsOf[T]().Not)
}

func BitwiseAndScalar[T kind.Bits, N Arity](v Vector[T, N], s T) Vector[T, N] {
	return BitwiseAnd(v, Splat[T, N](s))
}

func BitwiseOrScalar[T kind.Bits, N Arity](v Vector[T, N], s T) Vector[T, N] {
	return BitwiseOr(v, Splat[T, N](s))
}

func XorScalar[T kind.Bits, N Arity](v Vector[T, N], s T) Vector[T, N] {
	return Xor(v, Splat[T, N](s))
}

// LeftShift shifts every component of v left by the matching component of
// amount. Counts are masked to the bit width of T, so shifting an int32 by
// 33 shifts by 1.
func LeftShift[T, S kind.Integer, N Arity](v Vector[T, N], amount Vector[S, N]) Vector[T, N] {
	return zip(v, amount, func(x T, s S) T { return x << shiftCount[T](s) })
}

// RightShift shifts right; signed kinds shift arithmetically.
func RightShift[T, S kind.Integer, N Arity](v Vector[T, N], amount Vector[S, N]) Vector[T, N] {
	return zip(v, amount, func(x T, s S) T { return x >> shiftCount[T](s) })
}

// LeftShiftScalar shifts every component left by s, which may be of any
// integer type.
func LeftShiftScalar[T kind.Integer, S kind.ShiftCount, N Arity](v Vector[T, N], s S) Vector[T, N] {
	n := shiftCount[T](s)
	return Map(v, func(x T) T { return x << n })
}

// RightShiftScalar shifts every component right by s.
func RightShiftScalar[T kind.Integer, S kind.ShiftCount, N Arity](v Vector[T, N], s S) Vector[T, N] {
	n := shiftCount[T](s)
	return Map(v, func(x T) T { return x >> n })
}

func shiftCount[T kind.Integer, S kind.ShiftCount](s S) uint {
	return uint(s) & uint(kind.KindOf[T]().Bits()-1)
}
