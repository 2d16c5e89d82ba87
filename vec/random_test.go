package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cwbudde/algo-glm/internal/testutil"
)

func TestRandomStaysInRange(t *testing.T) {
	src := testutil.NewSource(1)
	hi := Vec4[int32](1, 5, 100, 0)
	for i := 0; i < 1000; i++ {
		v := Random(src, hi)
		assert.True(t, All(GreaterThanEqualScalar(v, 0)), "%v", v)
		assert.Equal(t, int32(0), v.X())
		assert.Less(t, v.Y(), int32(5))
		assert.Less(t, v.Z(), int32(100))
		assert.Equal(t, int32(0), v.W())
	}
}

func TestRandomBetween(t *testing.T) {
	src := testutil.NewSource(2)
	lo := Vec3(-2.0, 10.0, 3.0)
	hi := Vec3(2.0, 10.0, -3.0)
	for i := 0; i < 1000; i++ {
		v := RandomBetween(src, lo, hi)
		assert.GreaterOrEqual(t, v.X(), -2.0)
		assert.Less(t, v.X(), 2.0)
		assert.Equal(t, 10.0, v.Y())
		assert.GreaterOrEqual(t, v.Z(), -3.0)
		assert.Less(t, v.Z(), 3.0)
	}
}

func TestRandomBetweenSignedAndWide(t *testing.T) {
	src := testutil.NewSource(3)
	for i := 0; i < 1000; i++ {
		v := RandomBetweenScalar[int64, Two](src, -3, 3)
		assert.True(t, All(GreaterThanEqualScalar(v, -3)), "%v", v)
		assert.True(t, All(LessThanScalar(v, 3)), "%v", v)

		u := RandomBetweenScalar[uint64, Two](src, 0, 1<<63+5)
		assert.True(t, All(LessThanScalar(u, 1<<63+5)), "%v", u)

		f := RandomScalar[float32, Three](src, 1)
		assert.True(t, All(LessThanScalar(f, 1)), "%v", f)
	}
}

func TestRandomBetweenOverflowingSpan(t *testing.T) {
	src := testutil.NewSource(4)
	seen := make(map[float64]bool)
	var negative, positive int
	for i := 0; i < 100; i++ {
		v := RandomBetweenScalar[float64, Two](src, -math.MaxFloat64, math.MaxFloat64)
		testutil.RequireFinite(t, v.Slice())
		for _, x := range v.All() {
			assert.GreaterOrEqual(t, x, -math.MaxFloat64)
			assert.Less(t, x, math.MaxFloat64)
			seen[x] = true
			if x < 0 {
				negative++
			} else {
				positive++
			}
		}
	}
	assert.Greater(t, len(seen), 190)
	assert.Positive(t, negative)
	assert.Positive(t, positive)
}

func TestRandomIsDeterministicPerSource(t *testing.T) {
	a := RandomScalar[float64, Four](testutil.NewSource(9), 10)
	b := RandomScalar[float64, Four](testutil.NewSource(9), 10)
	assert.Equal(t, a, b)
}

func TestRandomPoisson(t *testing.T) {
	src := testutil.NewSource(4)
	const n = 4000
	xs := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := RandomPoisson(src, Vec2(4.0, 0.0))
		assert.Equal(t, 0.0, v.Y())
		xs = append(xs, v.X())
	}
	mean, variance := testutil.MeanVariance(xs)
	assert.InDelta(t, 4.0, mean, 0.2)
	assert.InDelta(t, 4.0, variance, 0.6)

	assert.Equal(t, Zero[int32, Three](), RandomPoissonScalar[int32, Three](src, -1))
}

func TestRandomNormal(t *testing.T) {
	src := testutil.NewSource(5)
	const n = 4000
	xs := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		v := RandomGaussian(src, Vec2(10.0, 0.0), Vec2(4.0, 0.0))
		assert.Equal(t, 0.0, v.Y())
		xs = append(xs, v.X())
	}
	mean, variance := testutil.MeanVariance(xs)
	assert.InDelta(t, 10.0, mean, 0.2)
	assert.InDelta(t, 4.0, variance, 0.5)
}

func TestRandomBools(t *testing.T) {
	src := testutil.NewSource(6)
	trues := 0
	for i := 0; i < 1000; i++ {
		trues += Count(RandomBools[Four](src))
	}
	assert.InDelta(t, 2000, trues, 200)
}
