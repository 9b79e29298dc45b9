// Package relate implements the 11-valued relation classifier (component
// H, spec §4.6 and §4.11): given two geometries, decide which of
// Disjoint/Touch/Cross/Overlap/Equal/Component/Composite/Cover/
// Within/Enclosed/Encloses describes how they meet, mirroring a DE-9IM
// classification without ever materializing the 3x3 intersection matrix.
//
// Segment-vs-segment classification reuses predicate.Orient directly, the
// same exact-orientation primitive the arrangement engine (F) and overlay
// engine (G) build on. Shape-vs-shape classification combines a bbox.Box
// pre-filter (component B) with boundary-intersection detection (F) and a
// ray-cast point-in-polygon test, following the same "bbox prunes, sweep
// confirms" structure the teacher's own relationship functions use for
// Rectangle before ever touching a LineSegment.
package relate

import (
	"github.com/lycantropos/rene-sub000/bbox"
	"github.com/lycantropos/rene-sub000/bentleyottmann"
	"github.com/lycantropos/rene-sub000/event"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/shape"
	"github.com/lycantropos/rene-sub000/types"
)

// SegmentToSegment classifies the relation between two segments, given by
// their endpoints. Only the five values two 1-dimensional, equal-extent
// geometries can realize are returned: Disjoint, Touch, Cross, Overlap,
// Equal.
func SegmentToSegment[S types.Scalar[S]](a1, b1, a2, b2 point.Point[S]) types.Relation {
	lo1, hi1 := predicate.ToSortedPair(a1, b1)
	lo2, hi2 := predicate.ToSortedPair(a2, b2)
	if lo1.Eq(lo2) && hi1.Eq(hi2) {
		return types.Equal
	}

	o1 := predicate.Orient(a1, b1, a2)
	o2 := predicate.Orient(a1, b1, b2)
	o3 := predicate.Orient(a2, b2, a1)
	o4 := predicate.Orient(a2, b2, b1)

	if o1 == types.Collinear && o2 == types.Collinear {
		start := lo1
		if lo2.Cmp(start) > 0 {
			start = lo2
		}
		end := hi1
		if hi2.Cmp(end) < 0 {
			end = hi2
		}
		switch {
		case start.Cmp(end) > 0:
			return types.Disjoint
		case start.Eq(end):
			return types.Touch
		default:
			return types.Overlap
		}
	}

	if o1 != o2 && o3 != o4 {
		if o1 == types.Collinear || o2 == types.Collinear || o3 == types.Collinear || o4 == types.Collinear {
			return types.Touch
		}
		return types.Cross
	}

	return types.Disjoint
}

// containsPoint reports whether p lies strictly inside contour c, via a
// standard parity ray cast using exact orientation comparisons: no
// epsilon anywhere, matching the kernel's exact-rational contract.
func containsPoint[S types.Scalar[S]](c shape.Contour[S], p point.Point[S]) bool {
	vertices := c.Vertices()
	n := len(vertices)
	inside := false
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		if predicate.IsPointInSegment(p, a, b) {
			return false // boundary: handled by the caller, not "interior"
		}
		if (a.Y().Cmp(p.Y()) > 0) != (b.Y().Cmp(p.Y()) > 0) {
			// x of the edge-ray crossing at p.Y(), compared via cross product sign
			// to avoid introducing a division.
			side := predicate.Orient(a, b, p)
			upward := b.Y().Cmp(a.Y()) > 0
			if (side == types.Counterclockwise) == upward {
				inside = !inside
			}
		}
	}
	return inside
}

// onBoundary reports whether p lies on any edge of c.
func onBoundary[S types.Scalar[S]](c shape.Contour[S], p point.Point[S]) bool {
	vertices := c.Vertices()
	n := len(vertices)
	for i := 0; i < n; i++ {
		if predicate.IsPointInSegment(p, vertices[i], vertices[(i+1)%n]) {
			return true
		}
	}
	return false
}

// locate classifies point p against contour c as Interior/Boundary/Exterior.
func locate[S types.Scalar[S]](c shape.Contour[S], p point.Point[S]) types.PointLocation {
	if onBoundary(c, p) {
		return types.Boundary
	}
	if containsPoint(c, p) {
		return types.Interior
	}
	return types.Exterior
}

// boundariesIntersect reports whether any edge of a crosses or touches
// any edge of b (without caring about the kind), using the arrangement
// engine (component F) over the combined edge set.
func boundariesIntersect[S types.Scalar[S]](a, b shape.Contour[S]) ([]bentleyottmann.Intersection[S], bool) {
	av, bv := a.Vertices(), b.Vertices()
	arena := event.NewArena[S](len(av) + len(bv))
	for i := range av {
		arena.AddSegment(av[i], av[(i+1)%len(av)], i)
	}
	for i := range bv {
		arena.AddSegment(bv[i], bv[(i+1)%len(bv)], len(av)+i)
	}
	eng := bentleyottmann.New(arena)
	var its []bentleyottmann.Intersection[S]
	for _, it := range eng.Detect() {
		if (it.FirstPiece < len(av)) != (it.SecondPiece < len(av)) {
			its = append(its, it)
		}
	}
	return its, len(its) > 0
}

// ContourToContour classifies the relation between two simple contours
// treated as areal shapes (their interiors), the spec's full 11-value
// relation (§4.6, §4.11).
func ContourToContour[S types.Scalar[S]](a, b shape.Contour[S]) types.Relation {
	boxA, boxB := a.BBox(), b.BBox()
	if boxA.Disjoint(boxB) {
		return types.Disjoint
	}

	its, intersects := boundariesIntersect(a, b)

	sampleA := a.Vertices()[0]
	sampleB := b.Vertices()[0]
	aInB := locate(b, sampleA)
	bInA := locate(a, sampleB)

	if !intersects {
		switch {
		case aInB == types.Interior:
			return types.Within
		case bInA == types.Interior:
			return types.Cover
		default:
			return types.Disjoint
		}
	}

	hasCross := false
	allOverlap := len(its) > 0
	for _, it := range its {
		if it.Kind == bentleyottmann.ProperCrossing {
			hasCross = true
			allOverlap = false
		}
		if it.Kind == bentleyottmann.Touch {
			allOverlap = false
		}
	}

	if allOverlap && sameVertexSet(a, b) {
		return types.Equal
	}
	if hasCross {
		return types.Overlap
	}

	// boundaries only touch: decide nesting from a sample interior point.
	switch {
	case aInB == types.Interior || aInB == types.Boundary:
		return types.Enclosed
	case bInA == types.Interior || bInA == types.Boundary:
		return types.Encloses
	default:
		return types.Touch
	}
}

func sameVertexSet[S types.Scalar[S]](a, b shape.Contour[S]) bool {
	av, bv := a.Vertices(), b.Vertices()
	if len(av) != len(bv) {
		return false
	}
	used := make([]bool, len(bv))
	for _, p := range av {
		found := false
		for j, q := range bv {
			if !used[j] && p.Eq(q) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// BoxRelation offers a cheap pre-classification using only bounding boxes
// (component B); callers use it to short-circuit Disjoint before ever
// building an Arena.
func BoxRelation[S types.Scalar[S]](a, b bbox.Box[S]) (types.Relation, bool) {
	if a.Disjoint(b) {
		return types.Disjoint, true
	}
	if a.Equal(b) {
		return types.Equal, false // boxes equal does not imply shapes equal
	}
	return types.Disjoint, false
}
