package kind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertFloatToInteger(t *testing.T) {
	assert.Equal(t, int32(-3), Convert[int32](-3.7))
	assert.Equal(t, uint32(0), Convert[uint32](float32(-3.7)))
	assert.Equal(t, int64(math.MaxInt64), Convert[int64](math.Inf(1)))
}

func TestConvertIntegerWraps(t *testing.T) {
	assert.Equal(t, uint32(math.MaxUint32), Convert[uint32](int32(-1)))
	assert.Equal(t, int32(-1), Convert[int32](uint64(math.MaxUint64)))
	assert.Equal(t, int64(4294967295), Convert[int64](uint32(math.MaxUint32)))
}

func TestConvertBool(t *testing.T) {
	assert.Equal(t, 1.0, Convert[float64](true))
	assert.Equal(t, int32(0), Convert[int32](false))
	assert.True(t, Convert[bool](int64(-7)))
	assert.False(t, Convert[bool](uint32(0)))
	assert.True(t, Convert[bool](0.5))
	assert.True(t, Convert[bool](true))
}

func TestConvertFloats(t *testing.T) {
	assert.Equal(t, 0.5, Convert[float64](float32(0.5)))
	assert.Equal(t, float32(0.25), Convert[float32](0.25))
	assert.Equal(t, float64(1<<40), Convert[float64](int64(1<<40)))
}
