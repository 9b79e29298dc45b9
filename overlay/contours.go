package overlay

import (
	"sort"

	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/segment"
	"github.com/lycantropos/rene-sub000/shape"
	"github.com/lycantropos/rene-sub000/types"
)

// Reconstruct turns the flat, direction-normalized edge set Operate
// returns (every edge already carrying the result's interior to its left)
// back into nested Polygon boundaries, per §4.5 steps 2-5: build the
// connectivity permutation between edges sharing a vertex, trace each
// contour with cycle-erasure, then nest contours that wind clockwise
// (holes) inside the outer boundary (counterclockwise) that contains them.
func Reconstruct[S types.Scalar[S]](edges []segment.Segment[S]) []shape.Polygon[S] {
	loops := traceLoops(edges)
	return nestLoops(loops)
}

type outEdge[S types.Scalar[S]] struct {
	target point.Point[S]
	dir    point.Point[S]
}

// vertexEdges groups a vertex with its angle-sorted outgoing edges, the
// connectivity permutation §4.5 step 2 asks for, rebuilt per vertex
// instead of as a single global event-index permutation.
type vertexEdges[S types.Scalar[S]] struct {
	point point.Point[S]
	edges []outEdge[S]
}

// traceLoops implements §4.5 step 2 (the connectivity permutation) and
// step 3 (the contour trace with cycle-erasure on a revisited vertex).
func traceLoops[S types.Scalar[S]](edges []segment.Segment[S]) []shape.Contour[S] {
	byVertex := make(map[string]*vertexEdges[S], len(edges))
	for _, e := range edges {
		a, b := e.Start(), e.End()
		key := a.Key()
		ve, ok := byVertex[key]
		if !ok {
			ve = &vertexEdges[S]{point: a}
			byVertex[key] = ve
		}
		ve.edges = append(ve.edges, outEdge[S]{target: b, dir: b.Sub(a)})
	}
	for _, ve := range byVertex {
		sort.Slice(ve.edges, func(i, j int) bool { return angleLess(ve.edges[i].dir, ve.edges[j].dir) })
	}
	// consumed[v] tracks how many of v's (already angle-sorted) outgoing
	// edges have been traced away, since a vertex can have more than one
	// outgoing edge when several result contours meet there.
	consumed := make(map[string]int, len(byVertex))

	var loops []shape.Contour[S]
	for key, ve := range byVertex {
		for consumed[key] < len(ve.edges) {
			verts, ok := traceOneLoop(byVertex, consumed, ve.point)
			if !ok {
				break
			}
			if len(verts) >= 3 {
				loops = append(loops, shape.NewContour(verts))
			}
		}
	}
	return loops
}

// traceOneLoop walks the functional graph of "next clockwise edge after
// the reversed incoming direction" starting from an arbitrary unconsumed
// edge leaving start, recording vertices until it returns to a vertex
// already on the current walk (closing the loop, or — for a
// self-intersection artifact per spec §9 — truncating to the cycle).
func traceOneLoop[S types.Scalar[S]](byVertex map[string]*vertexEdges[S], consumed map[string]int, start point.Point[S]) ([]point.Point[S], bool) {
	cur := start
	var verts []point.Point[S]
	seenAt := make(map[string]int, 8)
	var incoming point.Point[S]
	hasIncoming := false
	for {
		key := cur.Key()
		ve, ok := byVertex[key]
		if !ok {
			return verts, len(verts) > 0
		}
		list := ve.edges
		idx := consumed[key]
		if idx >= len(list) {
			return verts, len(verts) > 0
		}
		var chosen int
		if !hasIncoming {
			chosen = idx
		} else {
			chosen = pickNext(list, idx, incoming.Sub(cur))
		}
		e := list[chosen]
		list[chosen], list[idx] = list[idx], list[chosen]
		consumed[key] = idx + 1

		if at, ok := seenAt[key]; ok {
			verts = verts[at:]
			return verts, true
		}
		seenAt[key] = len(verts)
		verts = append(verts, cur)

		incoming = cur
		hasIncoming = true
		cur = e.target
		if cur.Eq(start) {
			return verts, true
		}
	}
}

// pickNext returns the index (within list[idx:]) of the outgoing edge
// whose direction is the immediate clockwise neighbor of reverseDir —
// the standard planar-subdivision face-tracing rule, which (given every
// edge already carries its face's interior to the left) always stays on
// the boundary of a single simple region instead of crossing into another.
func pickNext[S types.Scalar[S]](list []outEdge[S], idx int, reverseDir point.Point[S]) int {
	best := -1
	for i := idx; i < len(list); i++ {
		if angleLess(list[i].dir, reverseDir) {
			if best == -1 || angleLess(list[best].dir, list[i].dir) {
				best = i
			}
		}
	}
	if best == -1 {
		best = idx
		for i := idx + 1; i < len(list); i++ {
			if angleLess(list[best].dir, list[i].dir) {
				best = i
			}
		}
	}
	return best
}

// angleLess orders direction vectors by polar angle without trigonometry:
// split into the upper/lower half-plane first, then break ties within a
// half by the sign of the cross product (same trick predicate.Orient
// already uses for orientation).
func angleLess[S types.Scalar[S]](a, b point.Point[S]) bool {
	ha, hb := half(a), half(b)
	if ha != hb {
		return ha < hb
	}
	return a.CrossProduct(b).Sign() > 0
}

func half[S types.Scalar[S]](v point.Point[S]) int {
	ySign := v.Y().Sign()
	if ySign > 0 || (ySign == 0 && v.X().Sign() > 0) {
		return 0
	}
	return 1
}

// nestLoops implements §4.5 step 4/5's hole nesting: contours winding
// counterclockwise are outer boundaries, clockwise ones are holes, and
// each hole is assigned to the smallest outer boundary whose box covers
// it and that actually contains one of its vertices.
func nestLoops[S types.Scalar[S]](loops []shape.Contour[S]) []shape.Polygon[S] {
	var outers, holes []shape.Contour[S]
	for _, c := range loops {
		if c.IsCounterclockwise() {
			outers = append(outers, c)
		} else {
			holes = append(holes, c)
		}
	}
	polys := make([]shape.Polygon[S], len(outers))
	for i, o := range outers {
		polys[i] = shape.NewPolygon(o, nil)
	}
	for _, h := range holes {
		sample := h.Vertices()[0]
		best := -1
		for i, o := range outers {
			if !o.BBox().Covers(h.BBox()) || !containsPoint(o, sample) {
				continue
			}
			if best == -1 || outers[best].BBox().Covers(outers[i].BBox()) {
				best = i
			}
		}
		if best >= 0 {
			p := polys[best]
			polys[best] = shape.NewPolygon(p.Border(), append(p.Holes(), h))
		}
	}
	return polys
}

// containsPoint is a parity ray cast, duplicated in miniature from the
// relate package rather than imported from it, since it is a handful of
// lines and the two packages classify different things (areal membership
// here, full 11-valued relation there).
func containsPoint[S types.Scalar[S]](c shape.Contour[S], p point.Point[S]) bool {
	vertices := c.Vertices()
	n := len(vertices)
	inside := false
	for i := 0; i < n; i++ {
		a, b := vertices[i], vertices[(i+1)%n]
		if predicate.IsPointInSegment(p, a, b) {
			return true
		}
		if (a.Y().Cmp(p.Y()) > 0) != (b.Y().Cmp(p.Y()) > 0) {
			side := predicate.Orient(a, b, p)
			upward := b.Y().Cmp(a.Y()) > 0
			if (side == types.Counterclockwise) == upward {
				inside = !inside
			}
		}
	}
	return inside
}
