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

func pt(x, y int64) point.Point[rational.Rat] {
	return point.New(rational.FromInt(x), rational.FromInt(y))
}

func seg(a, b point.Point[rational.Rat]) segment.Segment[rational.Rat] {
	s, err := segment.New(a, b)
	if err != nil {
		panic(err)
	}
	return s
}

func TestLinearToLinearDisjoint(t *testing.T) {
	a := []segment.Segment[rational.Rat]{seg(pt(0, 0), pt(1, 0))}
	b := []segment.Segment[rational.Rat]{seg(pt(5, 5), pt(6, 5))}
	assert.Equal(t, types.Disjoint, relate.LinearToLinear(a, b))
}

func TestLinearToLinearCross(t *testing.T) {
	a := []segment.Segment[rational.Rat]{seg(pt(0, 0), pt(4, 4))}
	b := []segment.Segment[rational.Rat]{seg(pt(0, 4), pt(4, 0))}
	assert.Equal(t, types.Cross, relate.LinearToLinear(a, b))
}

func TestLinearToLinearComponent(t *testing.T) {
	a := []segment.Segment[rational.Rat]{seg(pt(1, 0), pt(2, 0))}
	b := []segment.Segment[rational.Rat]{seg(pt(0, 0), pt(4, 0))}
	assert.Equal(t, types.Component, relate.LinearToLinear(a, b))
}

func TestLinearToLinearComposite(t *testing.T) {
	a := []segment.Segment[rational.Rat]{seg(pt(0, 0), pt(4, 0))}
	b := []segment.Segment[rational.Rat]{seg(pt(1, 0), pt(2, 0))}
	assert.Equal(t, types.Composite, relate.LinearToLinear(a, b))
}

func TestLinearToLinearEqualAcrossSplitSegments(t *testing.T) {
	// a and b cover exactly the same point set even though b splits it
	// into two collinear pieces meeting in the middle, exercising
	// coveredByCollinear's interval merge rather than an endpoint-only
	// check.
	a := []segment.Segment[rational.Rat]{seg(pt(0, 0), pt(4, 0))}
	b := []segment.Segment[rational.Rat]{seg(pt(0, 0), pt(2, 0)), seg(pt(2, 0), pt(4, 0))}
	assert.Equal(t, types.Equal, relate.LinearToLinear(a, b))
}

func TestLinearToLinearEqual(t *testing.T) {
	a := []segment.Segment[rational.Rat]{seg(pt(0, 0), pt(4, 0))}
	b := []segment.Segment[rational.Rat]{seg(pt(0, 0), pt(4, 0))}
	assert.Equal(t, types.Equal, relate.LinearToLinear(a, b))
}

func TestLinearToLinearTouch(t *testing.T) {
	a := []segment.Segment[rational.Rat]{seg(pt(0, 0), pt(2, 0))}
	b := []segment.Segment[rational.Rat]{seg(pt(2, 0), pt(2, 2))}
	assert.Equal(t, types.Touch, relate.LinearToLinear(a, b))
}

func TestContourToContourLinearOverlapsAtSharedEdge(t *testing.T) {
	a := shape.NewContour([]point.Point[rational.Rat]{pt(0, 0), pt(2, 0), pt(2, 2), pt(0, 2)})
	b := shape.NewContour([]point.Point[rational.Rat]{pt(2, 0), pt(4, 0), pt(4, 2), pt(2, 2)})
	rel := relate.ContourToContourLinear(a, b)
	assert.Equal(t, types.Overlap, rel)
}
