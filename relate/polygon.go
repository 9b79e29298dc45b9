package relate

import (
	"github.com/lycantropos/rene-sub000/bentleyottmann"
	"github.com/lycantropos/rene-sub000/event"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/segment"
	"github.com/lycantropos/rene-sub000/shape"
	"github.com/lycantropos/rene-sub000/types"
)

// polygonLocate classifies p against poly as Interior/Boundary/Exterior,
// the Polygon-with-holes generalization of the package's bare-Contour
// locate: a point inside the border but inside any hole too is Exterior.
func polygonLocate[S types.Scalar[S]](poly shape.Polygon[S], p point.Point[S]) types.PointLocation {
	if onBoundary(poly.Border(), p) {
		return types.Boundary
	}
	for _, h := range poly.Holes() {
		if onBoundary(h, p) {
			return types.Boundary
		}
	}
	if !containsPoint(poly.Border(), p) {
		return types.Exterior
	}
	for _, h := range poly.Holes() {
		if containsPoint(h, p) {
			return types.Exterior
		}
	}
	return types.Interior
}

func boundarySegmentsIntersect[S types.Scalar[S]](a, b []segment.Segment[S]) ([]bentleyottmann.Intersection[S], bool) {
	arena := event.NewArena[S](len(a) + len(b))
	for i, s := range a {
		arena.AddSegment(s.Start(), s.End(), i)
	}
	for i, s := range b {
		arena.AddSegment(s.Start(), s.End(), len(a)+i)
	}
	// keep only pairs with one piece from each operand: edges of the same
	// operand always touch at their shared vertices.
	var its []bentleyottmann.Intersection[S]
	for _, it := range bentleyottmann.New(arena).Detect() {
		if (it.FirstPiece < len(a)) != (it.SecondPiece < len(a)) {
			its = append(its, it)
		}
	}
	return its, len(its) > 0
}

func sameSegmentSet[S types.Scalar[S]](a, b []segment.Segment[S]) bool {
	if len(a) != len(b) {
		return false
	}
	count := make(map[string]int, len(a))
	for _, s := range a {
		lo, hi := s.CanonicalEndpoints()
		count[lo.Key()+"|"+hi.Key()]++
	}
	for _, s := range b {
		lo, hi := s.CanonicalEndpoints()
		key := lo.Key() + "|" + hi.Key()
		count[key]--
		if count[key] < 0 {
			return false
		}
	}
	for _, n := range count {
		if n != 0 {
			return false
		}
	}
	return true
}

// PolygonToPolygon classifies the relation between two Polygons (with
// holes), the "shaped" sweep variant of spec §4.6 generalized beyond bare
// contours: its border-vs-border cousin is ContourToContour, which treats
// every Contour as if it had no holes — this one subtracts each
// operand's holes before deciding containment, so a donut and the square
// sitting in its hole correctly come back Disjoint instead of Cover.
func PolygonToPolygon[S types.Scalar[S]](a, b shape.Polygon[S]) types.Relation {
	if a.BBox().Disjoint(b.BBox()) {
		return types.Disjoint
	}

	aBoundary, bBoundary := a.Segments(), b.Segments()
	its, intersects := boundarySegmentsIntersect(aBoundary, bBoundary)

	sampleA := a.Border().Vertices()[0]
	sampleB := b.Border().Vertices()[0]
	aInB := polygonLocate(b, sampleA)
	bInA := polygonLocate(a, sampleB)

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

	hasCross, allOverlap := false, len(its) > 0
	for _, it := range its {
		if it.Kind == bentleyottmann.ProperCrossing {
			hasCross = true
			allOverlap = false
		}
		if it.Kind == bentleyottmann.Touch {
			allOverlap = false
		}
	}

	if allOverlap && sameSegmentSet(aBoundary, bBoundary) {
		return types.Equal
	}
	if hasCross {
		return types.Overlap
	}

	switch {
	case aInB == types.Interior || aInB == types.Boundary:
		return types.Enclosed
	case bInA == types.Interior || bInA == types.Boundary:
		return types.Encloses
	default:
		return types.Touch
	}
}

// PolygonToMultipolygon classifies a Polygon against a Multipolygon by
// combining its relation to each member: any member it properly overlaps,
// crosses, touches or encloses/is-enclosed-by dominates; otherwise it is
// Within one member, Equal one member, Cover of every non-disjoint
// member, or Disjoint from all of them. This does not attempt full
// region-algebra composition across members (spec §12's multipolygon
// supplement does not specify one either) — it is accurate whenever a's
// interaction is with at most one member at a time, which holds for the
// disjoint-or-touching members a valid Multipolygon (spec §3) requires.
func PolygonToMultipolygon[S types.Scalar[S]](a shape.Polygon[S], b shape.Multipolygon[S]) types.Relation {
	coversAny := false
	for _, m := range b.Polygons() {
		switch rel := PolygonToPolygon(a, m); rel {
		case types.Disjoint:
			continue
		case types.Equal:
			return types.Equal
		case types.Within:
			return types.Within
		case types.Cover:
			coversAny = true
		default:
			return rel
		}
	}
	if coversAny {
		return types.Cover
	}
	return types.Disjoint
}

// MultipolygonToPolygon is PolygonToMultipolygon with the operands
// swapped, obtained via types.Relation.Complement rather than a second
// traversal.
func MultipolygonToPolygon[S types.Scalar[S]](a shape.Multipolygon[S], b shape.Polygon[S]) types.Relation {
	return PolygonToMultipolygon(b, a).Complement()
}

// MultipolygonToMultipolygon classifies two Multipolygons by aggregating
// each of a's members' relation to b as a whole (same simplifying
// assumption as PolygonToMultipolygon).
func MultipolygonToMultipolygon[S types.Scalar[S]](a, b shape.Multipolygon[S]) types.Relation {
	membersA := a.Polygons()
	if len(membersA) == 1 {
		return PolygonToMultipolygon(membersA[0], b)
	}
	coversAll, withinAll := true, true
	for _, ma := range membersA {
		switch rel := PolygonToMultipolygon(ma, b); rel {
		case types.Disjoint:
			withinAll, coversAll = false, false
		case types.Within, types.Equal:
			coversAll = false
		case types.Cover:
			withinAll = false
		default:
			return types.Overlap
		}
	}
	switch {
	case coversAll && withinAll:
		return types.Equal
	case coversAll:
		return types.Cover
	case withinAll:
		return types.Within
	default:
		return types.Disjoint
	}
}

// LinearToPolygon classifies a linear geometry (a Multisegment's edges,
// or a Contour walked as a boundary chain) against a Polygon's area, per
// spec §4.6's "mixed" sweep variant: group events by shared start, update
// subset/inside/outside flags per group, and stop once the outcome is
// determined. This samples each linear edge's midpoint against the
// polygon rather than threading per-event flags through the arrangement
// sweep directly — equivalent for straight edges, since a straight
// segment's location only changes where it crosses the polygon boundary,
// and any such crossing is caught separately as Cross.
func LinearToPolygon[S types.Scalar[S]](linear []segment.Segment[S], poly shape.Polygon[S]) types.Relation {
	if segmentsBBox(linear).Disjoint(poly.BBox()) {
		return types.Disjoint
	}

	boundary := poly.Segments()
	its, intersects := boundarySegmentsIntersect(linear, boundary)
	for _, it := range its {
		if it.Kind == bentleyottmann.ProperCrossing {
			return types.Cross
		}
	}

	var interiorCount, exteriorCount int
	for _, s := range linear {
		mid := midpoint(s.Start(), s.End())
		switch polygonLocate(poly, mid) {
		case types.Interior:
			interiorCount++
		case types.Exterior:
			exteriorCount++
		}
	}

	switch {
	case interiorCount == 0 && exteriorCount == 0:
		return types.Component
	case interiorCount > 0 && exteriorCount > 0:
		return types.Cross
	case exteriorCount > 0:
		if intersects {
			return types.Touch
		}
		return types.Disjoint
	default:
		if intersects {
			return types.Enclosed
		}
		return types.Within
	}
}

// LinearToMultipolygon classifies a linear geometry against a
// Multipolygon by delegating to whichever member it actually meets
// (same assumption as PolygonToMultipolygon: members are disjoint or
// touching, never overlapping).
func LinearToMultipolygon[S types.Scalar[S]](linear []segment.Segment[S], m shape.Multipolygon[S]) types.Relation {
	for _, p := range m.Polygons() {
		if rel := LinearToPolygon(linear, p); rel != types.Disjoint {
			return rel
		}
	}
	return types.Disjoint
}

func midpoint[S types.Scalar[S]](a, b point.Point[S]) point.Point[S] {
	return point.New(a.X().Add(b.X()).DivInt(2), a.Y().Add(b.Y()).DivInt(2))
}
