package relate_test

import (
	"testing"

	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/lycantropos/rene-sub000/relate"
	"github.com/lycantropos/rene-sub000/segment"
	"github.com/lycantropos/rene-sub000/shape"
	"github.com/lycantropos/rene-sub000/types"
	"github.com/stretchr/testify/assert"
)

func square(x0, y0, x1, y1 int64) shape.Contour[rational.Rat] {
	return shape.NewContour([]point.Point[rational.Rat]{
		pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1),
	})
}

// TestPolygonToPolygonHonorsHole covers the case ContourToContour can't:
// a donut and a square sitting exactly in its hole are Disjoint once
// holes are honored, where the bare-contour relation would report the
// donut's border as Cover.
func TestPolygonToPolygonHonorsHole(t *testing.T) {
	donut := shape.NewPolygon(square(0, 0, 10, 10), []shape.Contour[rational.Rat]{square(3, 3, 7, 7).Reversed()})
	inHole := shape.NewPolygon(square(4, 4, 6, 6), nil)
	assert.Equal(t, types.Disjoint, relate.PolygonToPolygon(donut, inHole))
}

func TestPolygonToPolygonCover(t *testing.T) {
	big := shape.NewPolygon(square(0, 0, 10, 10), nil)
	small := shape.NewPolygon(square(2, 2, 4, 4), nil)
	assert.Equal(t, types.Cover, relate.PolygonToPolygon(big, small))
	assert.Equal(t, types.Within, relate.PolygonToPolygon(small, big))
}

func TestPolygonToMultipolygonWithin(t *testing.T) {
	member1 := shape.NewPolygon(square(0, 0, 4, 4), nil)
	member2 := shape.NewPolygon(square(10, 0, 14, 4), nil)
	m := shape.NewMultipolygon([]shape.Polygon[rational.Rat]{member1, member2})
	probe := shape.NewPolygon(square(1, 1, 2, 2), nil)
	assert.Equal(t, types.Within, relate.PolygonToMultipolygon(probe, m))
}

func TestLinearToPolygonWithin(t *testing.T) {
	border := shape.NewPolygon(square(0, 0, 10, 10), nil)
	linear := []segment.Segment[rational.Rat]{seg(pt(2, 2), pt(4, 2)), seg(pt(4, 2), pt(4, 4))}
	assert.Equal(t, types.Within, relate.LinearToPolygon(linear, border))
}

func TestLinearToPolygonEnclosed(t *testing.T) {
	border := shape.NewPolygon(square(0, 0, 10, 10), nil)
	linear := []segment.Segment[rational.Rat]{seg(pt(0, 0), pt(2, 2))}
	assert.Equal(t, types.Enclosed, relate.LinearToPolygon(linear, border))
}

func TestLinearToPolygonCross(t *testing.T) {
	border := shape.NewPolygon(square(0, 0, 10, 10), nil)
	linear := []segment.Segment[rational.Rat]{seg(pt(-5, 5), pt(15, 5))}
	assert.Equal(t, types.Cross, relate.LinearToPolygon(linear, border))
}

func TestLinearToPolygonComponent(t *testing.T) {
	border := shape.NewPolygon(square(0, 0, 10, 10), nil)
	linear := []segment.Segment[rational.Rat]{seg(pt(0, 0), pt(10, 0))}
	assert.Equal(t, types.Component, relate.LinearToPolygon(linear, border))
}

func TestLinearToPolygonDisjoint(t *testing.T) {
	border := shape.NewPolygon(square(0, 0, 10, 10), nil)
	linear := []segment.Segment[rational.Rat]{seg(pt(20, 20), pt(21, 20))}
	assert.Equal(t, types.Disjoint, relate.LinearToPolygon(linear, border))
}
