package predicate_test

import (
	"testing"

	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/lycantropos/rene-sub000/types"
	"github.com/stretchr/testify/assert"
)

func pt(x, y int64) point.Point[rational.Rat] {
	return point.New(rational.FromInt(x), rational.FromInt(y))
}

func TestOrient(t *testing.T) {
	assert.Equal(t, types.Counterclockwise, predicate.Orient(pt(0, 0), pt(1, 0), pt(1, 1)))
	assert.Equal(t, types.Clockwise, predicate.Orient(pt(0, 0), pt(1, 1), pt(1, 0)))
	assert.Equal(t, types.Collinear, predicate.Orient(pt(0, 0), pt(1, 1), pt(2, 2)))
}

func TestIsPointInSegment(t *testing.T) {
	assert.True(t, predicate.IsPointInSegment(pt(1, 1), pt(0, 0), pt(2, 2)))
	assert.False(t, predicate.IsPointInSegment(pt(3, 3), pt(0, 0), pt(2, 2)))
	assert.False(t, predicate.IsPointInSegment(pt(1, 0), pt(0, 0), pt(2, 2)))
}

func TestIntersectCrossingSegments(t *testing.T) {
	got := predicate.IntersectCrossingSegments(pt(0, 0), pt(2, 2), pt(0, 2), pt(2, 0))
	assert.True(t, got.Eq(pt(1, 1)))
}

func TestLocatePointInCircumcircle(t *testing.T) {
	a, b, c := pt(0, 0), pt(4, 0), pt(0, 4)
	assert.Equal(t, types.Interior, predicate.LocatePointInCircumcircle(pt(1, 1), a, b, c))
	assert.Equal(t, types.Exterior, predicate.LocatePointInCircumcircle(pt(10, 10), a, b, c))
	assert.Equal(t, types.Boundary, predicate.LocatePointInCircumcircle(pt(4, 4), a, b, c))
}

func TestShrinkCollinearVertices(t *testing.T) {
	square := []point.Point[rational.Rat]{pt(0, 0), pt(1, 0), pt(2, 0), pt(2, 2), pt(0, 2)}
	got := predicate.ShrinkCollinearVertices(square)
	assert.Len(t, got, 4)
}

func TestToSortedPair(t *testing.T) {
	a, b := predicate.ToSortedPair(pt(2, 2), pt(1, 1))
	assert.True(t, a.Eq(pt(1, 1)))
	assert.True(t, b.Eq(pt(2, 2)))
}
