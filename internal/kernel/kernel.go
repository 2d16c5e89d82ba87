package kernel

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-glm/kind"
)

// Dot returns sum(a[i] * b[i]) over the common length of a and b.
func Dot[T kind.Number](a, b []T) T {
	if af, ok := any(a).([]float64); ok {
		return any(vecmath.DotProduct(af, any(b).([]float64))).(T)
	}
	n := min(len(a), len(b))
	var sum T
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// MaxAbs returns max(|x[i]|), or zero for an empty slice. Signed integers
// are ranked by unsigned magnitude, so the minimum value wins and is
// returned as itself, the wrapped result of its absolute value.
func MaxAbs[T kind.Number](x []T) T {
	if xf, ok := any(x).([]float64); ok {
		return any(vecmath.MaxAbs(xf)).(T)
	}
	tr := kind.Of[T]()
	var m T
	for _, v := range x {
		if a := tr.Abs(v); largerMagnitude(a, m) {
			m = a
		}
	}
	return m
}

func largerMagnitude[T kind.Number](a, b T) bool {
	switch x := any(a).(type) {
	case int32:
		return magnitude(int64(x)) > magnitude(int64(any(b).(int32)))
	case int64:
		return magnitude(x) > magnitude(any(b).(int64))
	}
	return a > b
}

func magnitude(x int64) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}

// AddScaled computes dst[i] = a[i] + b[i]*scalar.
func AddScaled[T kind.Number](dst, a, b []T, scalar T) {
	if df, ok := any(dst).([]float64); ok {
		scaled := make([]float64, len(df))
		vecmath.ScaleBlock(scaled, any(b).([]float64), any(scalar).(float64))
		vecmath.AddBlock(df, any(a).([]float64), scaled)
		return
	}
	for i := range dst {
		dst[i] = a[i] + b[i]*scalar
	}
}
