package mat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-glm/internal/testutil"
	"github.com/cwbudde/algo-glm/vec"
)

func TestTransposeIsInvolution(t *testing.T) {
	m := FromColumns[vec.Three](vec.Vec2[int32](1, 2), vec.Vec2[int32](3, 4), vec.Vec2[int32](5, 6))
	tr := m.Transpose()
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, vec.Vec3[int32](1, 3, 5), tr.Column(0))
	assert.Equal(t, m, tr.Transpose())
}

func TestMulVec(t *testing.T) {
	m := FromRows[vec.Two](vec.Vec3(1.0, 2.0, 3.0), vec.Vec3(4.0, 5.0, 6.0))
	assert.Equal(t, vec.Vec2(14.0, 32.0), MulVec(m, vec.Vec3(1.0, 2.0, 3.0)))
	assert.Equal(t, vec.Vec3(9.0, 12.0, 15.0), VecMul(vec.Vec2(1.0, 2.0), m))

	mi := FromRows[vec.Two](vec.Vec2[int64](1, -1), vec.Vec2[int64](2, 3))
	assert.Equal(t, vec.Vec2[int64](-1, 8), MulVec(mi, vec.Vec2[int64](1, 2)))
}

func TestMul(t *testing.T) {
	a := FromRows[vec.Two](vec.Vec3[int32](1, 2, 3), vec.Vec3[int32](4, 5, 6))
	b := FromRows[vec.Three](vec.Vec2[int32](7, 8), vec.Vec2[int32](9, 10), vec.Vec2[int32](11, 12))
	p := Mul(a, b)
	assert.Equal(t, vec.Vec2[int32](58, 64), p.Row(0))
	assert.Equal(t, vec.Vec2[int32](139, 154), p.Row(1))

	f := FromRows[vec.Two](vec.Vec2(1.5, -2.0), vec.Vec2(0.25, 4.0))
	assert.Equal(t, f, Mul(Identity[float64, vec.Two, vec.Two](), f))
	assert.Equal(t, f, Mul(f, Identity[float64, vec.Two, vec.Two]()))
}

func TestMulMatchesRotationComposition(t *testing.T) {
	rot := func(theta float64) Matrix[float64, vec.Two, vec.Two] {
		c, s := math.Cos(theta), math.Sin(theta)
		return FromRows[vec.Two](vec.Vec2(c, -s), vec.Vec2(s, c))
	}
	got := Mul(rot(0.3), rot(0.4))
	diff, err := testutil.MaxAbsDiff(got.Slice(), rot(0.7).Slice())
	require.NoError(t, err)
	assert.Less(t, diff, 1e-14)

	got32 := Mul(FromRows[vec.Two](vec.Vec2[float32](0.1, 0.2), vec.Vec2[float32](0.3, 0.4)), Identity[float32, vec.Two, vec.Two]())
	diff, err = testutil.MaxAbsDiff(got32.Slice(), []float32{0.1, 0.3, 0.2, 0.4})
	require.NoError(t, err)
	assert.Zero(t, diff)
}

func TestEntryWise(t *testing.T) {
	a := Fill[float32, vec.Two, vec.Two](2)
	b := Identity[float32, vec.Two, vec.Two]()
	assert.Equal(t, []float32{3, 2, 2, 3}, Add(a, b).Slice())
	assert.Equal(t, []float32{1, 2, 2, 1}, Sub(a, b).Slice())
	assert.Equal(t, []float32{1, 0, 0, 1}, Scale(Scale(b, 4), 0.25).Slice())
	assert.True(t, Equal(a, Fill[float32, vec.Two, vec.Two](2)))
	assert.False(t, Equal(a, b))
}
