package bentleyottmann

import (
	"github.com/lycantropos/rene-sub000/event"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/types"
)

// IsMultisegmentValid reports whether segments form a valid multisegment
// (spec §4.4): no two distinct segments may cross properly or overlap, and
// no segment may be degenerate. Touching at shared endpoints is allowed.
func IsMultisegmentValid[S types.Scalar[S]](segments [][2]point.Point[S]) bool {
	arena := event.NewArena[S](len(segments))
	for i, s := range segments {
		if s[0].Eq(s[1]) {
			return false
		}
		arena.AddSegment(s[0], s[1], i)
	}
	eng := New(arena)
	for _, it := range eng.Detect() {
		if it.Kind == ProperCrossing || it.Kind == Overlap {
			return false
		}
	}
	return true
}

// IsContourValid reports whether the closed polyline vertices (consecutive
// pairs plus the closing edge) form a valid simple contour (spec §4.4):
// at least 3 vertices, no two non-adjacent edges intersect at all, and
// adjacent edges may only touch at their shared vertex.
func IsContourValid[S types.Scalar[S]](vertices []point.Point[S]) bool {
	n := len(vertices)
	if n < 3 {
		return false
	}
	arena := event.NewArena[S](n)
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		if a.Eq(b) {
			return false
		}
		arena.AddSegment(a, b, i)
	}
	eng := New(arena)
	for _, it := range eng.Detect() {
		if it.Kind == Overlap {
			return false
		}
		if it.Kind == ProperCrossing {
			return false
		}
		// Touch is only legal between edges adjacent in the cycle, and
		// only at their shared vertex.
		d := it.FirstPiece - it.SecondPiece
		adjacent := d == 1 || d == -1 || d == n-1 || d == -(n-1)
		if !adjacent {
			return false
		}
	}
	return true
}
