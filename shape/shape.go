// Package shape defines the geometry-type collaborators the spec treats as
// external inputs/outputs (§3 "Contour", "Polygon", "Multisegment",
// "Multipolygon"): thin, mostly-data aggregates of the lower-level Point
// and Segment types, each able to report its own bounding box and iterate
// its segments.
//
// Grounded in the teacher's polygon/polytree split (a PolyTree holds a
// boundary Contour plus a list of hole Contours and child islands), pared
// down to the flat Non-goal-scoped model the spec calls for: at most one
// level of holes, no nested islands.
package shape

import (
	"fmt"

	"github.com/lycantropos/rene-sub000/bbox"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/segment"
	"github.com/lycantropos/rene-sub000/types"
)

// Contour is a closed polygonal chain, vertices in order, no implicit
// closing vertex repeated at the end.
type Contour[S types.Scalar[S]] struct {
	vertices []point.Point[S]
}

// NewContour builds a Contour from vertices, shrinking out any vertex that
// is collinear with both of its neighbours (spec §4.5 step 5).
func NewContour[S types.Scalar[S]](vertices []point.Point[S]) Contour[S] {
	return Contour[S]{vertices: predicate.ShrinkCollinearVertices(vertices)}
}

// Vertices returns the contour's vertices, in order.
func (c Contour[S]) Vertices() []point.Point[S] { return c.vertices }

// Len returns the number of vertices (== the number of edges).
func (c Contour[S]) Len() int { return len(c.vertices) }

// Segments returns the contour's edges as Segments, closing the cycle.
func (c Contour[S]) Segments() []segment.Segment[S] {
	n := len(c.vertices)
	out := make([]segment.Segment[S], 0, n)
	for i := 0; i < n; i++ {
		s, err := segment.New(c.vertices[i], c.vertices[(i+1)%n])
		if err != nil {
			continue // degenerate edge already filtered by ShrinkCollinearVertices's caller
		}
		out = append(out, s)
	}
	return out
}

// BBox returns the contour's axis-aligned bounding box.
func (c Contour[S]) BBox() bbox.Box[S] { return bbox.OfPoints(c.vertices) }

// SignedDoubleArea returns twice the contour's signed area (positive when
// counterclockwise), via the shoelace formula. Used to tell a boundary
// from a hole (§4.9's "holes wind opposite their boundary").
func (c Contour[S]) SignedDoubleArea() S {
	n := len(c.vertices)
	var sum S
	for i := 0; i < n; i++ {
		a, b := c.vertices[i], c.vertices[(i+1)%n]
		sum = sum.Add(a.X().Mul(b.Y())).Sub(b.X().Mul(a.Y()))
	}
	return sum
}

// IsCounterclockwise reports whether the contour winds counterclockwise.
func (c Contour[S]) IsCounterclockwise() bool { return c.SignedDoubleArea().Sign() > 0 }

// Reversed returns the contour with its vertex order flipped.
func (c Contour[S]) Reversed() Contour[S] {
	n := len(c.vertices)
	out := make([]point.Point[S], n)
	for i, v := range c.vertices {
		out[n-1-i] = v
	}
	return Contour[S]{vertices: out}
}

func (c Contour[S]) String() string {
	return fmt.Sprintf("Contour(%d vertices)", len(c.vertices))
}

// Polygon is a single simple contour (the border) plus zero or more hole
// contours nested directly inside it (§3 "Polygon": one level of holes,
// no nested islands — a Non-goal of multiply-nested polytrees).
type Polygon[S types.Scalar[S]] struct {
	border Contour[S]
	holes  []Contour[S]
}

// NewPolygon builds a Polygon from a border contour and its holes.
func NewPolygon[S types.Scalar[S]](border Contour[S], holes []Contour[S]) Polygon[S] {
	return Polygon[S]{border: border, holes: holes}
}

// Border returns the polygon's outer contour.
func (p Polygon[S]) Border() Contour[S] { return p.border }

// Holes returns the polygon's hole contours.
func (p Polygon[S]) Holes() []Contour[S] { return p.holes }

// BBox returns the polygon's bounding box (the border's box; holes are by
// construction contained within it).
func (p Polygon[S]) BBox() bbox.Box[S] { return p.border.BBox() }

// Segments returns every edge of the border followed by every edge of
// every hole.
func (p Polygon[S]) Segments() []segment.Segment[S] {
	out := p.border.Segments()
	for _, h := range p.holes {
		out = append(out, h.Segments()...)
	}
	return out
}

// Multisegment is an unordered collection of (possibly disjoint) segments.
type Multisegment[S types.Scalar[S]] struct {
	segments []segment.Segment[S]
}

// NewMultisegment builds a Multisegment from segments, as-is.
func NewMultisegment[S types.Scalar[S]](segments []segment.Segment[S]) Multisegment[S] {
	return Multisegment[S]{segments: segments}
}

// Segments returns the multisegment's segments.
func (m Multisegment[S]) Segments() []segment.Segment[S] { return m.segments }

// BBox returns the multisegment's bounding box; panics if it is empty.
func (m Multisegment[S]) BBox() bbox.Box[S] {
	points := make([]point.Point[S], 0, 2*len(m.segments))
	for _, s := range m.segments {
		points = append(points, s.Start(), s.End())
	}
	return bbox.OfPoints(points)
}

// Multipolygon is an unordered collection of polygons whose borders are
// pairwise disjoint or touching (never overlapping) — §12's multipolygon
// supplement to the base spec's single-Polygon operations.
type Multipolygon[S types.Scalar[S]] struct {
	polygons []Polygon[S]
}

// NewMultipolygon builds a Multipolygon from polygons, as-is.
func NewMultipolygon[S types.Scalar[S]](polygons []Polygon[S]) Multipolygon[S] {
	return Multipolygon[S]{polygons: polygons}
}

// Polygons returns the multipolygon's member polygons.
func (m Multipolygon[S]) Polygons() []Polygon[S] { return m.polygons }

// BBox returns the union of every member polygon's bounding box; panics if
// the multipolygon is empty.
func (m Multipolygon[S]) BBox() bbox.Box[S] {
	if len(m.polygons) == 0 {
		panic("shape: BBox of an empty Multipolygon")
	}
	box := m.polygons[0].BBox()
	for _, p := range m.polygons[1:] {
		box = bbox.Union(box, p.BBox())
	}
	return box
}

// Segments returns every edge of every member polygon.
func (m Multipolygon[S]) Segments() []segment.Segment[S] {
	var out []segment.Segment[S]
	for _, p := range m.polygons {
		out = append(out, p.Segments()...)
	}
	return out
}
