package relate_test

import (
	"testing"

	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/lycantropos/rene-sub000/relate"
	"github.com/lycantropos/rene-sub000/shape"
	"github.com/lycantropos/rene-sub000/types"
	"github.com/stretchr/testify/assert"
)

func pt(x, y int64) point.Point[rational.Rat] {
	return point.New(rational.FromInt(x), rational.FromInt(y))
}

func square(x0, y0, x1, y1 int64) shape.Contour[rational.Rat] {
	return shape.NewContour([]point.Point[rational.Rat]{
		pt(x0, y0), pt(x1, y0), pt(x1, y1), pt(x0, y1),
	})
}

func TestSegmentToSegmentCross(t *testing.T) {
	rel := relate.SegmentToSegment(pt(0, 0), pt(4, 4), pt(0, 4), pt(4, 0))
	assert.Equal(t, types.Cross, rel)
}

func TestSegmentToSegmentDisjoint(t *testing.T) {
	rel := relate.SegmentToSegment(pt(0, 0), pt(1, 0), pt(5, 5), pt(6, 6))
	assert.Equal(t, types.Disjoint, rel)
}

func TestSegmentToSegmentOverlap(t *testing.T) {
	rel := relate.SegmentToSegment(pt(0, 0), pt(4, 0), pt(2, 0), pt(6, 0))
	assert.Equal(t, types.Overlap, rel)
}

func TestContourToContourDisjoint(t *testing.T) {
	a := square(0, 0, 2, 2)
	b := square(10, 10, 12, 12)
	assert.Equal(t, types.Disjoint, relate.ContourToContour(a, b))
}

func TestContourToContourWithin(t *testing.T) {
	outer := square(0, 0, 10, 10)
	inner := square(2, 2, 4, 4)
	assert.Equal(t, types.Within, relate.ContourToContour(inner, outer))
	assert.Equal(t, types.Cover, relate.ContourToContour(outer, inner))
}

func TestContourToContourEqual(t *testing.T) {
	a := square(0, 0, 4, 4)
	b := square(0, 0, 4, 4)
	assert.Equal(t, types.Equal, relate.ContourToContour(a, b))
}

func TestContourToContourOverlap(t *testing.T) {
	a := square(0, 0, 4, 4)
	b := square(2, 2, 6, 6)
	assert.Equal(t, types.Overlap, relate.ContourToContour(a, b))
}
