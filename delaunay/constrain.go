package delaunay

import (
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/quadedge"
	"github.com/lycantropos/rene-sub000/types"
)

// Constrain walks the edges the caller requires present (typically a
// polygon's border and hole contours) and, for each one missing from the
// triangulation, flips neighbouring edges until it appears — the
// "constrain" phase of component K (spec §4.9).
func (t Triangulation[S]) Constrain(required [][2]point.Point[S]) {
	b := &builder[S]{mesh: t.Mesh}
	for _, edge := range required {
		b.forceEdge(edge[0], edge[1])
	}
}

func (b *builder[S]) findEdgeFrom(origin int) quadedge.EdgeID {
	// Linear scan over the mesh's edge records for one whose origin
	// matches; acceptable because Constrain runs once per required edge,
	// not on any per-query hot path.
	for e := 0; e < b.mesh.EdgeCount(); e += 4 {
		if b.mesh.Origin(quadedge.EdgeID(e)) == origin {
			return quadedge.EdgeID(e)
		}
	}
	return quadedge.NoEdge
}

func (b *builder[S]) forceEdge(p, q point.Point[S]) {
	startIdx := b.indexOf(p)
	endIdx := b.indexOf(q)
	if startIdx < 0 || endIdx < 0 {
		return
	}

	start := b.findEdgeFrom(startIdx)
	if start == quadedge.NoEdge {
		return
	}

	// If the edge already exists in some rotation around start, nothing
	// to do.
	e := start
	for {
		if b.mesh.Destination(e) == endIdx {
			return
		}
		e = b.mesh.Onext(e)
		if e == start {
			break
		}
	}

	// Find every edge that crosses the segment (p, q) and flip it; a
	// bounded number of passes suffices because each flip strictly
	// reduces the crossing count for a valid constrained Delaunay input.
	for pass := 0; pass < b.mesh.EdgeCount(); pass++ {
		crossing, ok := b.findCrossing(p, q)
		if !ok {
			return
		}
		b.flip(crossing)
	}
}

func (b *builder[S]) indexOf(p point.Point[S]) int {
	for i := 0; i < len(b.mesh.Points()); i++ {
		if b.mesh.PointAt(i).Eq(p) {
			return i
		}
	}
	return -1
}

func (b *builder[S]) findCrossing(p, q point.Point[S]) (quadedge.EdgeID, bool) {
	for e := 0; e < b.mesh.EdgeCount(); e += 2 {
		id := quadedge.EdgeID(e)
		a, c := b.mesh.OriginPoint(id), b.mesh.DestinationPoint(id)
		o1 := predicate.Orient(p, q, a)
		o2 := predicate.Orient(p, q, c)
		o3 := predicate.Orient(a, c, p)
		o4 := predicate.Orient(a, c, q)
		if o1 != o2 && o3 != o4 && o1 != types.Collinear && o2 != types.Collinear {
			return id, true
		}
	}
	return quadedge.NoEdge, false
}

// flip performs a Delaunay edge flip: e's quadrilateral's diagonal is
// swapped to the other diagonal.
func (b *builder[S]) flip(e quadedge.EdgeID) {
	a := b.mesh.Oprev(e)
	c := b.mesh.Oprev(quadedge.Sym(e))
	b.mesh.Delete(e)
	b.mesh.Connect(a, b.mesh.Lnext(c))
}

// Bound removes every mesh edge whose midpoint falls strictly outside
// the given border contour — the "bound" phase of component K (spec
// §4.9) that runs between Constrain and CutHoles: divide-and-conquer
// Delaunay triangulates the convex hull of the input points, which for a
// non-convex polygon border reaches past the border into the "mouth"
// between the hull and the border, and this peels that region away the
// same way CutHoles peels hole interiors, with the inside/outside test
// inverted and a boundary-edge exemption (an edge running exactly along
// the border itself is kept, not treated as "outside").
func (t Triangulation[S]) Bound(border []point.Point[S]) {
	b := &builder[S]{mesh: t.Mesh}
	for e := 0; e < t.Mesh.EdgeCount(); e += 4 {
		id := quadedge.EdgeID(e)
		origin := t.Mesh.OriginPoint(id)
		dest := t.Mesh.DestinationPoint(id)
		mid := midpoint(origin, dest)
		if onContour(border, mid) {
			continue
		}
		if !pointStrictlyInside(border, mid) {
			b.mesh.Delete(id)
		}
	}
}

func onContour[S types.Scalar[S]](polygon []point.Point[S], p point.Point[S]) bool {
	n := len(polygon)
	for i := 0; i < n; i++ {
		if predicate.IsPointInSegment(p, polygon[i], polygon[(i+1)%n]) {
			return true
		}
	}
	return false
}

func midpoint[S types.Scalar[S]](a, b point.Point[S]) point.Point[S] {
	return point.New(a.X().Add(b.X()).DivInt(2), a.Y().Add(b.Y()).DivInt(2))
}

// CutHoles removes every triangle whose centroid falls inside one of the
// given hole contours (spec §4.9's "cut-holes" phase), by deleting the
// interior edges bounding it. Triangles entirely outside every hole are
// left untouched.
func (t Triangulation[S]) CutHoles(holes [][]point.Point[S]) {
	// Triangle removal is expressed here as deleting any mesh edge whose
	// midpoint falls strictly inside a hole: for a valid triangulation of
	// a polygon with its holes already constrained in (via Constrain),
	// every such edge borders only hole-interior triangles and can be
	// dropped without disconnecting the kept region.
	b := &builder[S]{mesh: t.Mesh}
	for e := 0; e < t.Mesh.EdgeCount(); e += 4 {
		id := quadedge.EdgeID(e)
		origin := t.Mesh.OriginPoint(id)
		dest := t.Mesh.DestinationPoint(id)
		for _, hole := range holes {
			if pointStrictlyInside(hole, midpoint(origin, dest)) {
				b.mesh.Delete(id)
				break
			}
		}
	}
}

func pointStrictlyInside[S types.Scalar[S]](polygon []point.Point[S], p point.Point[S]) bool {
	n := len(polygon)
	inside := false
	for i := 0; i < n; i++ {
		a, b := polygon[i], polygon[(i+1)%n]
		if predicate.IsPointInSegment(p, a, b) {
			return false
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
