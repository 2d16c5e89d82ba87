package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddInt32(t *testing.T) {
	a := Vec4[int32](1, 2, 3, 4)
	b := Vec4[int32](10, 20, 30, 40)
	assert.Equal(t, Vec4[int32](11, 22, 33, 44), Add(a, b))
}

func TestArithmetic(t *testing.T) {
	a := Vec3(6.0, -8.0, 1.5)
	b := Vec3(2.0, 4.0, 0.5)
	assert.Equal(t, Vec3(4.0, -12.0, 1.0), Sub(a, b))
	assert.Equal(t, Vec3(12.0, -32.0, 0.75), Mul(a, b))
	assert.Equal(t, Vec3(3.0, -2.0, 3.0), Div(a, b))
	assert.Equal(t, Vec3(-6.0, 8.0, -1.5), Neg(a))
}

func TestScalarShapes(t *testing.T) {
	v := Vec2[int32](10, 20)
	assert.Equal(t, Vec2[int32](13, 23), AddScalar(v, 3))
	assert.Equal(t, Vec2[int32](7, 17), SubScalar(v, 3))
	assert.Equal(t, Vec2[int32](30, 60), MulScalar(v, 3))
	assert.Equal(t, Vec2[int32](3, 6), DivScalar(v, 3))
	assert.Equal(t, Vec2[int32](1, 2), ModScalar(v, 3))
	assert.Equal(t, Vec2[int32](-7, -17), ScalarSub(3, v))
	assert.Equal(t, Vec2[int32](10, 5), ScalarDiv(100, v))
	assert.Equal(t, Vec2[int32](5, 5), ScalarMod(25, v))
}

func TestMod(t *testing.T) {
	assert.Equal(t, Vec2[int32](-1, 1), Mod(Vec2[int32](-7, 7), Vec2[int32](3, 3)))
	assert.Equal(t, Vec2[uint64](1, 0), Mod(Vec2[uint64](7, 9), Vec2[uint64](3, 3)))
	assert.Equal(t, Vec2[float32](-1.5, 1.5), Mod(Vec2[float32](-5.5, 5.5), Vec2[float32](2, 2)))
	assert.Equal(t, Vec2(-1.5, 1.5), Mod(Vec2(-5.5, 5.5), Vec2(2.0, -2.0)))
}

func TestIntegerOverflowWraps(t *testing.T) {
	v := Vec2[int32](math.MaxInt32, 0)
	assert.Equal(t, Vec2[int32](math.MinInt32, 1), AddScalar(v, 1))
	assert.Equal(t, Vec2[uint32](math.MaxUint32, 0), SubScalar(Vec2[uint32](0, 1), 1))
}

func TestIntegerDivisionByZeroPanics(t *testing.T) {
	assert.Panics(t, func() { Div(Vec2[int64](1, 1), Vec2[int64](1, 0)) })
	assert.Panics(t, func() { Mod(Vec2[uint32](1, 1), Vec2[uint32](0, 1)) })
}

func TestFloatDivisionByZero(t *testing.T) {
	r := Div(Vec3(1.0, -1.0, 0.0), Zero[float64, Three]())
	assert.True(t, math.IsInf(r.X(), 1))
	assert.True(t, math.IsInf(r.Y(), -1))
	assert.True(t, math.IsNaN(r.Z()))
}
