package vec

import (
	"math"
	"math/rand/v2"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/cwbudde/algo-glm/kind"
)

// The sampling functions draw every component independently from src.
// They keep no state of their own; src is advanced and otherwise left to
// the caller, who must serialise access to a shared source.

// Random draws each component uniformly from [0, hi). A zero bound yields
// zero for that component.
func Random[T kind.Number, N Arity](src rand.Source, hi Vector[T, N]) Vector[T, N] {
	return RandomBetween(src, Vector[T, N]{}, hi)
}

// RandomScalar draws each component uniformly from [0, hi).
func RandomScalar[T kind.Number, N Arity](src rand.Source, hi T) Vector[T, N] {
	return Random(src, Splat[T, N](hi))
}

// RandomBetween draws each component uniformly from [lo, hi). Equal bounds
// return lo; reversed bounds sample [hi, lo).
func RandomBetween[T kind.Number, N Arity](src rand.Source, lo, hi Vector[T, N]) Vector[T, N] {
	return zip(lo, hi, func(l, h T) T { return uniform(src, l, h) })
}

// RandomBetweenScalar draws each component uniformly from [lo, hi).
func RandomBetweenScalar[T kind.Number, N Arity](src rand.Source, lo, hi T) Vector[T, N] {
	return RandomBetween(src, Splat[T, N](lo), Splat[T, N](hi))
}

// RandomPoisson draws each component from a Poisson distribution with the
// matching rate. Non-positive rates yield zero.
func RandomPoisson[T kind.Number, N Arity](src rand.Source, lambda Vector[T, N]) Vector[T, N] {
	tr := kind.Of[T]()
	return Map(lambda, func(l T) T {
		rate := tr.Float64(l)
		if !(rate > 0) {
			return 0
		}
		return tr.Truncate(distuv.Poisson{Lambda: rate, Src: src}.Rand())
	})
}

// RandomPoissonScalar draws every component with rate lambda.
func RandomPoissonScalar[T kind.Number, N Arity](src rand.Source, lambda T) Vector[T, N] {
	return RandomPoisson(src, Splat[T, N](lambda))
}

// RandomNormal draws each component from a normal distribution with the
// matching mean and variance.
func RandomNormal[T kind.Float, N Arity](src rand.Source, mean, variance Vector[T, N]) Vector[T, N] {
	return zip(mean, variance, func(mu, v T) T {
		return T(distuv.Normal{Mu: float64(mu), Sigma: math.Sqrt(float64(v)), Src: src}.Rand())
	})
}

// RandomGaussian is RandomNormal.
func RandomGaussian[T kind.Float, N Arity](src rand.Source, mean, variance Vector[T, N]) Vector[T, N] {
	return RandomNormal(src, mean, variance)
}

// RandomBools draws each component as a fair coin.
func RandomBools[N Arity](src rand.Source) Vector[bool, N] {
	rng := rand.New(src)
	var v Vector[bool, N]
	for i := 0; i < v.Len(); i++ {
		v.c[i] = rng.Uint64()&1 == 1
	}
	return v
}

func uniform[T kind.Number](src rand.Source, lo, hi T) T {
	if lo == hi {
		return lo
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	switch l := any(lo).(type) {
	case float32:
		h := any(hi).(float32)
		x := float32(distuv.Uniform{Min: float64(l), Max: float64(h), Src: src}.Rand())
		if x >= h {
			x = math32.Nextafter(h, l)
		}
		return any(x).(T)
	case float64:
		h := any(hi).(float64)
		var x float64
		if math.IsInf(h-l, 0) {
			// The span overflows; blend the bounds instead of offsetting lo.
			u := distuv.Uniform{Min: 0, Max: 1, Src: src}.Rand()
			x = max(l*(1-u)+h*u, l)
		} else {
			x = distuv.Uniform{Min: l, Max: h, Src: src}.Rand()
		}
		if x >= h {
			x = math.Nextafter(h, l)
		}
		return any(x).(T)
	case int32:
		return any(uniformInt(src, l, any(hi).(int32))).(T)
	case uint32:
		return any(uniformInt(src, l, any(hi).(uint32))).(T)
	case int64:
		return any(uniformInt(src, l, any(hi).(int64))).(T)
	default:
		return any(uniformInt(src, any(lo).(uint64), any(hi).(uint64))).(T)
	}
}

// uniformInt samples [lo, hi) for lo < hi. The span is computed in
// two's complement so it is exact for every integer kind.
func uniformInt[I kind.Integer](src rand.Source, lo, hi I) I {
	span := uint64(hi) - uint64(lo)
	return lo + I(rand.New(src).Uint64N(span))
}
