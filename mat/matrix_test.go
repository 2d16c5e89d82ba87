package mat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-glm/vec"
)

func TestOuterProduct(t *testing.T) {
	m := OuterProduct(vec.Vec2[int32](1, 2), vec.Vec2[int32](3, 4))
	assert.Equal(t, vec.Vec2[int32](3, 6), m.Column(0))
	assert.Equal(t, vec.Vec2[int32](4, 8), m.Column(1))
	assert.Equal(t, int32(6), m.At(0, 1))
	assert.Equal(t, "3, 6, 4, 8", m.String())
}

func TestOuterProductNonSquare(t *testing.T) {
	m := OuterProduct(vec.Vec3(1.0, 2.0, 3.0), vec.Vec2(10.0, -1.0))
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, vec.Vec2(20.0, -2.0), m.Row(1))
	assert.Equal(t, vec.Vec3(-1.0, -2.0, -3.0), m.Column(1))
}

func TestConstructors(t *testing.T) {
	id := Identity[float64, vec.Three, vec.Three]()
	assert.Equal(t, vec.Vec3(0.0, 1.0, 0.0), id.Column(1))

	d := Diagonal[int32, vec.Two, vec.Three](5)
	assert.Equal(t, []int32{5, 0, 0, 5, 0, 0}, d.Slice())

	f := Fill[uint32, vec.Two, vec.Two](7)
	assert.Equal(t, []uint32{7, 7, 7, 7}, f.Slice())

	fd := FromDiagonal(vec.Vec3[int64](1, 2, 3))
	assert.Equal(t, []int64{1, 0, 0, 0, 2, 0, 0, 0, 3}, fd.Slice())

	assert.Equal(t, []float32{0, 0, 0, 0}, Zero[float32, vec.Two, vec.Two]().Slice())
}

func TestFromColumnsAndRows(t *testing.T) {
	c := FromColumns[vec.Three](vec.Vec2(1.0, 2.0), vec.Vec2(3.0, 4.0), vec.Vec2(5.0, 6.0))
	r := FromRows[vec.Two](vec.Vec3(1.0, 3.0, 5.0), vec.Vec3(2.0, 4.0, 6.0))
	assert.Equal(t, c, r)
	assert.Equal(t, vec.Vec3(2.0, 4.0, 6.0), c.Row(1))

	assert.Panics(t, func() { FromColumns[vec.Two](vec.Vec2(1.0, 2.0)) })
	assert.Panics(t, func() { FromRows[vec.Three](vec.Vec2(1.0, 2.0)) })
}

func TestSetAndAccess(t *testing.T) {
	m := Zero[int32, vec.Two, vec.Two]()
	m.Set(1, 0, 9)
	m.SetColumn(0, vec.Vec2[int32](1, 2))
	m.SetRow(1, vec.Vec2[int32](7, 8))
	assert.Equal(t, []int32{1, 7, 9, 8}, m.Slice())

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0, 2) })
	assert.Panics(t, func() { m.Column(-1) })
}

func TestParse(t *testing.T) {
	m, err := Parse[int32, vec.Two, vec.Three]("1, 2, 3, 4, 5, 6", ", ")
	require.NoError(t, err)
	assert.Equal(t, vec.Vec2[int32](3, 4), m.Column(1))
	assert.Equal(t, "1;2;3;4;5;6", m.ToString(";"))

	_, err = Parse[int32, vec.Two, vec.Two]("1, 2, 3", ", ")
	assert.ErrorIs(t, err, vec.ErrFormat)

	round, err := Parse[float64, vec.Four, vec.Four](Identity[float64, vec.Four, vec.Four]().String(), ", ")
	require.NoError(t, err)
	assert.Equal(t, Identity[float64, vec.Four, vec.Four](), round)
}
