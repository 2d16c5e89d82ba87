package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitwiseIntegers(t *testing.T) {
	a := Vec2[uint32](0b1100, 0xFFFF0000)
	b := Vec2[uint32](0b1010, 0x00FFFF00)
	assert.Equal(t, Vec2[uint32](0b1000, 0x00FF0000), BitwiseAnd(a, b))
	assert.Equal(t, Vec2[uint32](0b1110, 0xFFFFFF00), BitwiseOr(a, b))
	assert.Equal(t, Vec2[uint32](0b0110, 0xFF00FF00), Xor(a, b))
	assert.Equal(t, Vec2[uint32](0xFFFFFFF3, 0x0000FFFF), BitwiseNot(a))
	assert.Equal(t, Vec2[int64](-1, -2), BitwiseNot(Vec2[int64](0, 1)))
	assert.Equal(t, Vec2[uint32](0b0100, 0), BitwiseAndScalar(a, 0b0111))
	assert.Equal(t, Vec2[uint32](0b1101, 0xFFFF0001), BitwiseOrScalar(a, 1))
	assert.Equal(t, Vec2[uint32](0b1101, 0xFFFF0001), XorScalar(a, 1))
}

func TestBitwiseBoolIsLogical(t *testing.T) {
	a := Vec4(true, true, false, false)
	b := Vec4(true, false, true, false)
	assert.Equal(t, Vec4(true, false, false, false), BitwiseAnd(a, b))
	assert.Equal(t, Vec4(true, true, true, false), BitwiseOr(a, b))
	assert.Equal(t, Vec4(false, true, true, false), Xor(a, b))
	assert.Equal(t, Vec4(false, false, true, true), BitwiseNot(a))
}

func TestShifts(t *testing.T) {
	v := Vec3[int32](1, -16, 3)
	assert.Equal(t, Vec3[int32](16, -256, 48), LeftShiftScalar(v, uint32(4)))
	assert.Equal(t, Vec3[int32](0, -4, 0), RightShiftScalar(v, int64(2)))
	assert.Equal(t, Vec3[int32](2, -32, 12), LeftShift(v, Vec3[uint64](1, 33, 2)))
	assert.Equal(t, Vec3[int32](1, -8, 1), RightShift(v, Vec3[int32](0, 1, 1)))
}

func TestShiftScalarAcceptsAnyIntegerType(t *testing.T) {
	type bitCount uint8
	v := Vec2[uint64](1, 6)
	assert.Equal(t, Vec2[uint64](8, 48), LeftShiftScalar(v, 3))
	assert.Equal(t, Vec2[uint64](0, 3), RightShiftScalar(v, uint8(1)))
	assert.Equal(t, Vec2[uint64](4, 24), LeftShiftScalar(v, bitCount(2)))
	assert.Equal(t, Vec2[uint64](2, 12), LeftShiftScalar(v, 65))
}

func TestShiftCountIsMasked(t *testing.T) {
	assert.Equal(t, Vec2[uint32](2, 1), LeftShift(Vec2[uint32](1, 1), Vec2[int32](33, 32)))
	assert.Equal(t, Vec2[uint64](1<<63, 1), LeftShiftScalar(Vec2[uint64](1<<63, 1), uint32(64)))
	assert.Equal(t, Vec2[int32](math.MinInt32, math.MinInt32), LeftShiftScalar(Vec2[int32](1, 1), int32(-1)))
}
