package kind

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfReportsKind(t *testing.T) {
	assert.Equal(t, Bool, KindOf[bool]())
	assert.Equal(t, Int32, KindOf[int32]())
	assert.Equal(t, UInt32, KindOf[uint32]())
	assert.Equal(t, Int64, KindOf[int64]())
	assert.Equal(t, UInt64, KindOf[uint64]())
	assert.Equal(t, Float32, KindOf[float32]())
	assert.Equal(t, Float64, KindOf[float64]())
}

func TestLimits(t *testing.T) {
	assert.Equal(t, int32(math.MinInt32), Of[int32]().Min())
	assert.Equal(t, uint64(math.MaxUint64), Of[uint64]().Max())
	assert.Equal(t, uint32(0), Of[uint32]().Min())
	assert.Equal(t, float32(-math.MaxFloat32), Of[float32]().Min())
	assert.True(t, Of[bool]().Max())
	assert.Equal(t, int64(1), Of[int64]().One())
}

func TestTruncateIntegers(t *testing.T) {
	i32 := Of[int32]()
	assert.Equal(t, int32(2), i32.Truncate(2.9))
	assert.Equal(t, int32(-2), i32.Truncate(-2.9))
	assert.Equal(t, int32(0), i32.Truncate(math.NaN()))
	assert.Equal(t, int32(math.MaxInt32), i32.Truncate(1e20))
	assert.Equal(t, int32(math.MinInt32), i32.Truncate(math.Inf(-1)))

	u32 := Of[uint32]()
	assert.Equal(t, uint32(0), u32.Truncate(-5))
	assert.Equal(t, uint32(7), u32.Truncate(7.99))
	assert.Equal(t, uint32(math.MaxUint32), u32.Truncate(1e12))

	i64 := Of[int64]()
	assert.Equal(t, int64(math.MaxInt64), i64.Truncate(1e19))
	assert.Equal(t, int64(math.MinInt64), i64.Truncate(-1e19))

	u64 := Of[uint64]()
	assert.Equal(t, uint64(math.MaxUint64), u64.Truncate(math.Inf(1)))
	assert.Equal(t, uint64(1<<63), u64.Truncate(1<<63))
}

func TestTruncateFloatAndBool(t *testing.T) {
	assert.Equal(t, 2.75, Of[float64]().Truncate(2.75))
	assert.Equal(t, float32(0.5), Of[float32]().Truncate(0.5))
	assert.True(t, Of[bool]().Truncate(-0.25))
	assert.False(t, Of[bool]().Truncate(0))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, int32(5), Of[int32]().Abs(-5))
	assert.Equal(t, uint32(5), Of[uint32]().Abs(5))
	assert.Equal(t, uint64(math.MaxUint64), Of[uint64]().Abs(math.MaxUint64))
	assert.Equal(t, 1.5, Of[float64]().Abs(-1.5))
	assert.False(t, math.Signbit(Of[float64]().Abs(math.Copysign(0, -1))))
	assert.True(t, Of[bool]().Abs(true))
}

func TestLessBool(t *testing.T) {
	b := Of[bool]()
	assert.True(t, b.Less(false, true))
	assert.False(t, b.Less(true, false))
	assert.False(t, b.Less(true, true))
}

func TestFormatParseRoundTrip(t *testing.T) {
	f32 := Of[float32]()
	x := float32(0.1)
	got, err := f32.Parse(f32.Format(x))
	require.NoError(t, err)
	assert.Equal(t, x, got)

	i64 := Of[int64]()
	v, err := i64.Parse(" -9223372036854775808 ")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), v)
	assert.Equal(t, "-9223372036854775808", i64.Format(v))

	b, err := Of[bool]().Parse("True")
	require.NoError(t, err)
	assert.True(t, b)
}

func TestParseErrors(t *testing.T) {
	_, err := Of[int32]().Parse("3000000000")
	assert.ErrorIs(t, err, ErrParse)

	_, err = Of[uint32]().Parse("-1")
	assert.ErrorIs(t, err, ErrParse)

	_, err = Of[float64]().Parse("x")
	assert.ErrorIs(t, err, ErrParse)

	_, err = Of[bool]().Parse("maybe")
	assert.ErrorIs(t, err, ErrParse)
}
