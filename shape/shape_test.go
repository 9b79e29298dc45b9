package shape_test

import (
	"testing"

	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/lycantropos/rene-sub000/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int64) point.Point[rational.Rat] {
	return point.New(rational.FromInt(x), rational.FromInt(y))
}

func square() shape.Contour[rational.Rat] {
	return shape.NewContour([]point.Point[rational.Rat]{
		pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4),
	})
}

func TestContourSegmentsAndArea(t *testing.T) {
	c := square()
	require.Equal(t, 4, c.Len())
	assert.Len(t, c.Segments(), 4)
	assert.True(t, c.IsCounterclockwise())
	assert.Equal(t, rational.FromInt(32), c.SignedDoubleArea())
}

func TestContourShrinksCollinearVertex(t *testing.T) {
	c := shape.NewContour([]point.Point[rational.Rat]{
		pt(0, 0), pt(2, 0), pt(4, 0), pt(4, 4), pt(0, 4),
	})
	assert.Equal(t, 4, c.Len())
}

func TestPolygonWithHole(t *testing.T) {
	hole := shape.NewContour([]point.Point[rational.Rat]{
		pt(1, 1), pt(1, 2), pt(2, 2), pt(2, 1),
	})
	poly := shape.NewPolygon(square(), []shape.Contour[rational.Rat]{hole})
	assert.Len(t, poly.Holes(), 1)
	assert.Len(t, poly.Segments(), 8)
}

func TestMultipolygonBBox(t *testing.T) {
	p1 := shape.NewPolygon(square(), nil)
	other := shape.NewContour([]point.Point[rational.Rat]{
		pt(10, 10), pt(12, 10), pt(12, 12), pt(10, 12),
	})
	p2 := shape.NewPolygon(other, nil)
	mp := shape.NewMultipolygon([]shape.Polygon[rational.Rat]{p1, p2})
	box := mp.BBox()
	assert.Equal(t, rational.FromInt(0), box.MinX)
	assert.Equal(t, rational.FromInt(12), box.MaxX)
}
