package relate

import (
	"sort"

	"github.com/lycantropos/rene-sub000/bbox"
	"github.com/lycantropos/rene-sub000/bentleyottmann"
	"github.com/lycantropos/rene-sub000/event"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/segment"
	"github.com/lycantropos/rene-sub000/shape"
	"github.com/lycantropos/rene-sub000/types"
)

// LinearToLinear classifies the relation between two linear geometries —
// a Multisegment's edges or a Contour's edges walked as a boundary chain
// rather than an areal region — per spec §4.6's "linear-vs-linear" sweep
// variant: a modified arrangement-engine pass that only needs to know
// whether each operand sits inside the other's continuum (Component,
// Composite), whether a proper crossing exists (Cross), and whether the
// shared material runs along (Overlap) or between (Touch) endpoints.
func LinearToLinear[S types.Scalar[S]](a, b []segment.Segment[S]) types.Relation {
	if segmentsBBox(a).Disjoint(segmentsBBox(b)) {
		return types.Disjoint
	}

	arena := event.NewArena[S](len(a) + len(b))
	for i, s := range a {
		arena.AddSegment(s.Start(), s.End(), i)
	}
	for i, s := range b {
		arena.AddSegment(s.Start(), s.End(), len(a)+i)
	}
	its := bentleyottmann.New(arena).Detect()
	if len(its) == 0 {
		return types.Disjoint
	}

	hasCross, hasOverlap, hasTouch := false, false, false
	for _, it := range its {
		if (it.FirstPiece < len(a)) == (it.SecondPiece < len(a)) {
			continue // both pieces from the same operand
		}
		switch it.Kind {
		case bentleyottmann.ProperCrossing:
			hasCross = true
		case bentleyottmann.Overlap:
			hasOverlap = true
		case bentleyottmann.Touch:
			hasTouch = true
		}
	}

	aInB := everyPointCovered(a, b)
	bInA := everyPointCovered(b, a)

	switch {
	case aInB && bInA:
		return types.Equal
	case hasCross:
		return types.Cross
	case aInB:
		return types.Component
	case bInA:
		return types.Composite
	case hasOverlap:
		return types.Overlap
	case hasTouch:
		return types.Touch
	default:
		return types.Disjoint
	}
}

// MultisegmentToMultisegment classifies two Multisegments as linear
// geometries.
func MultisegmentToMultisegment[S types.Scalar[S]](a, b shape.Multisegment[S]) types.Relation {
	return LinearToLinear(a.Segments(), b.Segments())
}

// ContourToContourLinear classifies two Contours as linear boundary
// chains rather than areal regions — the variant ContourToContour (areal)
// does not cover, and the one this kernel previously had no way to reach
// at all since ContourToContour always treated a bare Contour as a full
// shape.
func ContourToContourLinear[S types.Scalar[S]](a, b shape.Contour[S]) types.Relation {
	return LinearToLinear(a.Segments(), b.Segments())
}

func segmentsBBox[S types.Scalar[S]](segs []segment.Segment[S]) bbox.Box[S] {
	pts := make([]point.Point[S], 0, 2*len(segs))
	for _, s := range segs {
		pts = append(pts, s.Start(), s.End())
	}
	return bbox.OfPoints(pts)
}

// everyPointCovered reports whether every point of every segment in xs
// lies on some segment of ys, i.e. whether xs's point set is a subset of
// ys's.
func everyPointCovered[S types.Scalar[S]](xs, ys []segment.Segment[S]) bool {
	for _, s := range xs {
		if !coveredByCollinear(s, ys) {
			return false
		}
	}
	return true
}

// coveredByCollinear reports whether s is entirely covered by the union
// of the segments in others that are collinear with it, via an interval
// union along s's x axis (its y axis when s is vertical) — endpoint-only membership checks are not
// enough, since two others could each cover one of s's endpoints while
// leaving its middle uncovered.
func coveredByCollinear[S types.Scalar[S]](s segment.Segment[S], others []segment.Segment[S]) bool {
	a, b := s.Start(), s.End()
	useX := a.X().Cmp(b.X()) != 0
	param := func(p point.Point[S]) S {
		if useX {
			return p.X()
		}
		return p.Y()
	}
	pa, pb := param(a), param(b)
	if pa.Cmp(pb) > 0 {
		pa, pb = pb, pa
	}

	type interval struct{ lo, hi S }
	var intervals []interval
	for _, o := range others {
		oa, ob := o.Start(), o.End()
		if predicate.Orient(a, b, oa) != types.Collinear || predicate.Orient(a, b, ob) != types.Collinear {
			continue
		}
		lo, hi := param(oa), param(ob)
		if lo.Cmp(hi) > 0 {
			lo, hi = hi, lo
		}
		if lo.Cmp(pb) > 0 || hi.Cmp(pa) < 0 {
			continue
		}
		if lo.Cmp(pa) < 0 {
			lo = pa
		}
		if hi.Cmp(pb) > 0 {
			hi = pb
		}
		intervals = append(intervals, interval{lo, hi})
	}
	if len(intervals) == 0 {
		return false
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i].lo.Cmp(intervals[j].lo) < 0 })
	cur := pa
	for _, iv := range intervals {
		if iv.lo.Cmp(cur) > 0 {
			return false
		}
		if iv.hi.Cmp(cur) > 0 {
			cur = iv.hi
		}
	}
	return cur.Cmp(pb) >= 0
}
