package trapezoid_test

import (
	"math/rand/v2"
	"testing"

	"github.com/lycantropos/rene-sub000/bbox"
	"github.com/lycantropos/rene-sub000/options"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/lycantropos/rene-sub000/trapezoid"
	"github.com/lycantropos/rene-sub000/types"
	"github.com/stretchr/testify/assert"
)

func r(n int64) rational.Rat { return rational.FromInt(n) }

func pt(x, y int64) point.Point[rational.Rat] {
	return point.New(r(x), r(y))
}

func TestLocateOutsideBox(t *testing.T) {
	box := bbox.New(r(0), r(10), r(0), r(10))
	m := trapezoid.Build[rational.Rat](box, nil)
	loc := m.LocatePointLocation(pt(20, 20))
	assert.Equal(t, types.Exterior, loc)
}

func TestLocateAboveAndBelowSegment(t *testing.T) {
	box := bbox.New(r(0), r(10), r(0), r(10))
	segs := []trapezoid.InputSegment[rational.Rat]{
		{Start: pt(0, 5), End: pt(10, 5), InteriorAbove: true},
	}
	m := trapezoid.Build(box, segs, options.WithRand(rand.New(rand.NewPCG(1, 2))))

	above, ok := m.Locate(pt(5, 8))
	assert.True(t, ok)
	below, ok := m.Locate(pt(5, 2))
	assert.True(t, ok)
	assert.NotEqual(t, above, below)
}

func TestLocatePointLocationBoundary(t *testing.T) {
	box := bbox.New(r(0), r(10), r(0), r(10))
	segs := []trapezoid.InputSegment[rational.Rat]{
		{Start: pt(0, 5), End: pt(10, 5), InteriorAbove: true},
	}
	m := trapezoid.Build(box, segs)
	assert.Equal(t, types.Boundary, m.LocatePointLocation(pt(5, 5)))
}

func TestLocatePointLocationInteriorAndExteriorSides(t *testing.T) {
	box := bbox.New(r(0), r(10), r(0), r(10))
	segs := []trapezoid.InputSegment[rational.Rat]{
		{Start: pt(0, 5), End: pt(10, 5), InteriorAbove: true},
	}
	m := trapezoid.Build(box, segs)
	assert.Equal(t, types.Interior, m.LocatePointLocation(pt(5, 8)))
	assert.Equal(t, types.Exterior, m.LocatePointLocation(pt(5, 2)))
}

// TestLocatePointLocationExteriorInsidePaddedBox reproduces the reported
// defect directly: a point that falls inside a padded bounding box but
// outside the triangle bounded by the inserted segments reports Exterior,
// not Interior — the padding margin, and the far side of each bounding
// segment, form trapezoids that were never marked as components of the
// triangle. Base edge (0,0)-(10,0) has the triangle's interior above it;
// the two slanted edges, read left-to-right once sorted, have the
// interior below, per the same CCW-border / sorted-direction convention
// rene.Trapezoidate derives InteriorAbove from.
func TestLocatePointLocationExteriorInsidePaddedBox(t *testing.T) {
	box := bbox.New(r(-5), r(15), r(-5), r(15))
	segs := []trapezoid.InputSegment[rational.Rat]{
		{Start: pt(0, 0), End: pt(10, 0), InteriorAbove: true},
		{Start: pt(10, 0), End: pt(5, 10), InteriorAbove: false},
		{Start: pt(5, 10), End: pt(0, 0), InteriorAbove: false},
	}
	m := trapezoid.Build(box, segs)

	assert.Equal(t, types.Interior, m.LocatePointLocation(pt(4, 2)))
	assert.Equal(t, types.Exterior, m.LocatePointLocation(pt(9, 9)))
	assert.Equal(t, types.Exterior, m.LocatePointLocation(pt(-2, 5)))
}
