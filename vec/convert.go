package vec

import "github.com/cwbudde/algo-glm/kind"

// WidenInt64 converts v to int64 losslessly.
func WidenInt64[From kind.Int64Source, N Arity](v Vector[From, N]) Vector[int64, N] {
	return Map(v, func(x From) int64 { return int64(x) })
}

// WidenUint64 converts v to uint64 losslessly.
func WidenUint64[From kind.Uint64Source, N Arity](v Vector[From, N]) Vector[uint64, N] {
	return Map(v, func(x From) uint64 { return uint64(x) })
}

// WidenFloat64 converts v to float64 losslessly.
func WidenFloat64[From kind.Float64Source, N Arity](v Vector[From, N]) Vector[float64, N] {
	return Map(v, func(x From) float64 { return float64(x) })
}

// Narrow converts v to any kind with the rules of kind.Convert: integers
// wrap, floats truncate toward zero and saturate, nonzero becomes true.
//
//	u := vec.Narrow[uint32](v)
func Narrow[To, From kind.Scalar, N Arity](v Vector[From, N]) Vector[To, N] {
	return Map(v, kind.Convert[To, From])
}

// Resize changes the arity of v. Widening zero-fills new components and
// narrowing drops the trailing ones.
func Resize[M Arity, T kind.Scalar, N Arity](v Vector[T, N]) Vector[T, M] {
	var r Vector[T, M]
	n := min(r.Len(), v.Len())
	copy(r.c[:n], v.c[:n])
	return r
}
