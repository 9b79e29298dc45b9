// Package delaunay implements the divide-and-conquer Delaunay
// triangulation builder (component J, spec §4.8) and the constrained
// Delaunay plus hole-carving pass built on top of it (component K, spec
// §4.9), following Guibas and Stolzi's original algorithm over the
// quadedge.Mesh from component I.
//
// Base cases (2 and 3 points) and the general n = 2s+3t decomposition,
// plus the zig-zag bubble-lifting merge step, are the textbook algorithm;
// what's kernel-specific here is running every orientation/in-circle
// decision through predicate.Orient and predicate.LocatePointInCircumcircle
// so the whole construction stays exact-rational end to end, instead of
// the epsilon-guarded float tests a floating-point implementation needs.
package delaunay

import (
	"sort"

	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/quadedge"
	"github.com/lycantropos/rene-sub000/types"
)

// Triangulation holds the quad-edge mesh built by Build, plus the two
// boundary edges of its convex hull.
type Triangulation[S types.Scalar[S]] struct {
	Mesh            *quadedge.Mesh[S]
	LeftMost        quadedge.EdgeID
	RightMost       quadedge.EdgeID
}

// Build triangulates points (which must contain at least 2 distinct
// points) via divide-and-conquer Delaunay triangulation.
func Build[S types.Scalar[S]](points []point.Point[S]) Triangulation[S] {
	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return points[order[i]].Less(points[order[j]])
	})
	sorted := make([]point.Point[S], len(points))
	for i, idx := range order {
		sorted[i] = points[idx]
	}

	mesh := quadedge.NewMesh(sorted)
	b := &builder[S]{mesh: mesh}
	left, right := b.triangulate(0, len(sorted))
	return Triangulation[S]{Mesh: mesh, LeftMost: left, RightMost: right}
}

type builder[S types.Scalar[S]] struct {
	mesh *quadedge.Mesh[S]
}

func (b *builder[S]) triangulate(lo, hi int) (quadedge.EdgeID, quadedge.EdgeID) {
	n := hi - lo
	switch {
	case n == 2:
		e := b.mesh.MakeEdge(lo, lo+1)
		return e, quadedge.Sym(e)
	case n == 3:
		return b.triangulateThree(lo)
	default:
		mid := lo + n/2
		ldoLeft, ldiLeft := b.triangulate(lo, mid)
		ldiRight, ldoRight := b.triangulate(mid, hi)
		return b.merge(ldoLeft, ldiLeft, ldoRight, ldiRight)
	}
}

func (b *builder[S]) triangulateThree(lo int) (quadedge.EdgeID, quadedge.EdgeID) {
	a, c, d := lo, lo+1, lo+2
	pa, pc, pd := b.mesh.PointAt(a), b.mesh.PointAt(c), b.mesh.PointAt(d)

	ea := b.mesh.MakeEdge(a, c)
	eb := b.mesh.MakeEdge(c, d)
	b.mesh.Splice(quadedge.Sym(ea), eb)

	switch predicate.Orient(pa, pc, pd) {
	case types.Counterclockwise:
		b.mesh.Connect(eb, ea)
		return ea, quadedge.Sym(eb)
	case types.Clockwise:
		ec := b.mesh.Connect(eb, ea)
		return quadedge.Sym(ec), ec
	default:
		// collinear: leave as a simple chain, no third edge.
		return ea, quadedge.Sym(eb)
	}
}

func (b *builder[S]) valid(e, basel quadedge.EdgeID) bool {
	return predicate.Orient(b.mesh.OriginPoint(basel), b.mesh.DestinationPoint(basel), b.mesh.DestinationPoint(e)) == types.Clockwise
}

// merge implements the zig-zag bubble-lifting merge of two adjacent
// Delaunay triangulations, per Guibas-Stolfi.
func (b *builder[S]) merge(ldoLeft, ldiLeft, ldoRight, ldiRight quadedge.EdgeID) (quadedge.EdgeID, quadedge.EdgeID) {
	// Compute the lower common tangent of the two triangulations.
	for {
		if b.leftOf(b.mesh.OriginPoint(ldiRight), ldiLeft) {
			ldiLeft = b.mesh.Lnext(ldiLeft)
		} else if b.rightOf(b.mesh.OriginPoint(ldiLeft), ldiRight) {
			ldiRight = b.mesh.Rprev(ldiRight)
		} else {
			break
		}
	}

	basel := b.mesh.Connect(quadedge.Sym(ldiRight), ldiLeft)
	if b.mesh.OriginPoint(ldiLeft).Eq(b.mesh.OriginPoint(ldoLeft)) {
		ldoLeft = quadedge.Sym(basel)
	}
	if b.mesh.OriginPoint(ldiRight).Eq(b.mesh.OriginPoint(ldoRight)) {
		ldoRight = basel
	}

	for {
		lcand := b.mesh.Onext(quadedge.Sym(basel))
		validLcand := b.valid(lcand, basel)
		if validLcand {
			for b.inCircle(b.mesh.DestinationPoint(basel), b.mesh.OriginPoint(basel), b.mesh.DestinationPoint(lcand), b.mesh.DestinationPoint(b.mesh.Onext(lcand))) {
				t := b.mesh.Onext(lcand)
				b.mesh.Delete(lcand)
				lcand = t
			}
		}

		rcand := b.mesh.Oprev(basel)
		validRcand := b.valid(rcand, basel)
		if validRcand {
			for b.inCircle(b.mesh.DestinationPoint(basel), b.mesh.OriginPoint(basel), b.mesh.DestinationPoint(rcand), b.mesh.DestinationPoint(b.mesh.Oprev(rcand))) {
				t := b.mesh.Oprev(rcand)
				b.mesh.Delete(rcand)
				rcand = t
			}
		}

		if !validLcand && !validRcand {
			break
		}

		if !validLcand || (validRcand && b.inCircle(b.mesh.DestinationPoint(lcand), b.mesh.OriginPoint(lcand), b.mesh.OriginPoint(rcand), b.mesh.DestinationPoint(rcand))) {
			basel = b.mesh.Connect(rcand, quadedge.Sym(basel))
		} else {
			basel = b.mesh.Connect(quadedge.Sym(basel), quadedge.Sym(lcand))
		}
	}

	return ldoLeft, ldoRight
}

// Triangles enumerates every triangular face of the mesh as its three
// vertices in counterclockwise order, walking each undirected edge's two
// left faces via Lnext and keeping only the 3-cycles that come back
// counterclockwise (the unbounded outer face, and any larger polygon left
// over from a degenerate/collinear merge, are skipped).
func (t Triangulation[S]) Triangles() [][3]point.Point[S] {
	mesh := t.Mesh
	visited := make(map[quadedge.EdgeID]bool, mesh.EdgeCount())
	var out [][3]point.Point[S]
	for e := 0; e < mesh.EdgeCount(); e += 4 {
		for _, start := range [2]quadedge.EdgeID{quadedge.EdgeID(e), quadedge.Sym(quadedge.EdgeID(e))} {
			if visited[start] {
				continue
			}
			b := mesh.Lnext(start)
			c := mesh.Lnext(b)
			if mesh.Lnext(c) != start {
				continue
			}
			visited[start], visited[b], visited[c] = true, true, true
			pa, pb, pc := mesh.OriginPoint(start), mesh.OriginPoint(b), mesh.OriginPoint(c)
			if predicate.Orient(pa, pb, pc) != types.Counterclockwise {
				continue
			}
			out = append(out, [3]point.Point[S]{pa, pb, pc})
		}
	}
	return out
}

func (b *builder[S]) leftOf(p point.Point[S], e quadedge.EdgeID) bool {
	return predicate.Orient(b.mesh.OriginPoint(e), b.mesh.DestinationPoint(e), p) == types.Counterclockwise
}

func (b *builder[S]) rightOf(p point.Point[S], e quadedge.EdgeID) bool {
	return predicate.Orient(b.mesh.OriginPoint(e), b.mesh.DestinationPoint(e), p) == types.Clockwise
}

func (b *builder[S]) inCircle(a, c, d, p point.Point[S]) bool {
	return predicate.LocatePointInCircumcircle(p, a, c, d) == types.Interior
}
