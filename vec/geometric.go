package vec

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/cwbudde/algo-glm/internal/kernel"
	"github.com/cwbudde/algo-glm/kind"
)

// Dot returns the inner product of a and b in the arithmetic of T.
func Dot[T kind.Number, N Arity](a, b Vector[T, N]) T {
	n := a.Len()
	return kernel.Dot(a.c[:n], b.c[:n])
}

// LengthSqr returns the squared Euclidean length. It is evaluated in the
// norm precision of T: float32 for the 32-bit kinds, float64 otherwise.
// Integer components are converted before squaring and cannot overflow.
func LengthSqr[T kind.Number, N Arity](v Vector[T, N]) float64 {
	return DistanceSqr(v, Vector[T, N]{})
}

// Length returns the Euclidean length in the norm precision of T. For the
// 32-bit kinds the result is a float32 value widened to float64 exactly.
func Length[T kind.Number, N Arity](v Vector[T, N]) float64 {
	return Distance(v, Vector[T, N]{})
}

// Norm is Length; for the 32-bit kinds it is float32-exact.
func Norm[T kind.Number, N Arity](v Vector[T, N]) float64 { return Length(v) }

// Norm2 is Length; for the 32-bit kinds it is float32-exact.
func Norm2[T kind.Number, N Arity](v Vector[T, N]) float64 { return Length(v) }

// Norm1 returns the sum of absolute components in the arithmetic of T.
// Integer sums wrap, and the absolute value of a signed minimum is itself.
func Norm1[T kind.Number, N Arity](v Vector[T, N]) T {
	return Sum(Abs(v))
}

// NormMax returns the largest absolute component. A signed integer
// minimum outranks every other component and is returned unchanged, since
// its absolute value is not representable in T.
func NormMax[T kind.Number, N Arity](v Vector[T, N]) T {
	return kernel.MaxAbs(v.c[:v.Len()])
}

// NormP returns the p-norm (Σ|x|^p)^(1/p).
func NormP[T kind.Number, N Arity](v Vector[T, N], p float64) float64 {
	tr := kind.Of[T]()
	var s float64
	for i := 0; i < v.Len(); i++ {
		s += math.Pow(math.Abs(tr.Float64(v.c[i])), p)
	}
	return math.Pow(s, 1/p)
}

// DistanceSqr returns the squared Euclidean distance between a and b.
// Differences are taken after conversion, so unsigned kinds do not wrap.
// For the 32-bit kinds the sum is accumulated in float32 and the float64
// result holds that float32 value exactly.
func DistanceSqr[T kind.Number, N Arity](a, b Vector[T, N]) float64 {
	tr := kind.Of[T]()
	if tr.Kind().NormKind() == kind.Float32 {
		var s float32
		for i := 0; i < a.Len(); i++ {
			d := float32(tr.Float64(a.c[i]) - tr.Float64(b.c[i]))
			s += d * d
		}
		return float64(s)
	}
	var s float64
	for i := 0; i < a.Len(); i++ {
		d := tr.Float64(a.c[i]) - tr.Float64(b.c[i])
		s += d * d
	}
	return s
}

// Distance returns the Euclidean distance between a and b, float32-exact
// for the 32-bit kinds.
func Distance[T kind.Number, N Arity](a, b Vector[T, N]) float64 {
	s := DistanceSqr(a, b)
	if kind.KindOf[T]().NormKind() == kind.Float32 {
		return float64(math32.Sqrt(float32(s)))
	}
	return math.Sqrt(s)
}

// Normalize scales v to unit length. The zero vector yields NaN components.
func Normalize[T kind.Float, N Arity](v Vector[T, N]) Vector[T, N] {
	return DivScalar(v, T(Length(v)))
}

// Cross returns the cross product a × b.
func Cross[T kind.Signed](a, b Vector[T, Three]) Vector[T, Three] {
	return Vec3(
		a.c[1]*b.c[2]-a.c[2]*b.c[1],
		a.c[2]*b.c[0]-a.c[0]*b.c[2],
		a.c[0]*b.c[1]-a.c[1]*b.c[0],
	)
}

// Reflect returns i - 2*Dot(n, i)*n, the reflection of incident i about a
// surface with normal n. n should be normalized.
func Reflect[T kind.Signed, N Arity](i, n Vector[T, N]) Vector[T, N] {
	return Sub(i, MulScalar(n, 2*Dot(n, i)))
}

// Refract returns the refraction of incident i through a surface with
// normal n and ratio of indices eta. Total internal reflection yields the
// zero vector.
func Refract[T kind.Float, N Arity](i, n Vector[T, N], eta T) Vector[T, N] {
	d := Dot(n, i)
	k := 1 - eta*eta*(1-d*d)
	if k < 0 {
		return Vector[T, N]{}
	}
	return Sub(MulScalar(i, eta), MulScalar(n, eta*d+sqrt(k)))
}

// FaceForward returns n if Dot(nref, i) < 0 and -n otherwise.
func FaceForward[T kind.Signed, N Arity](n, i, nref Vector[T, N]) Vector[T, N] {
	if Dot(nref, i) < 0 {
		return n
	}
	return Neg(n)
}

func sqrt[T kind.Float](x T) T {
	if xf, ok := any(x).(float32); ok {
		return T(math32.Sqrt(xf))
	}
	return T(math.Sqrt(float64(x)))
}
