// Package rene is the kernel's public facade (spec §6): the surface a
// caller actually imports, wiring the lower-level component packages
// (predicate, bbox, event, bentleyottmann, overlay, relate, quadedge,
// delaunay, trapezoid) into the operations the spec's OVERVIEW promises —
// Boolean set operations, relation classification, point location, and
// triangulation/trapezoidation construction — over the rational.Rat exact
// scalar.
//
// Named after the project this kernel's spec is modeled on
// (lycantropos/rene); this package is that project's Go equivalent of its
// top-level `rene` Python package / `rene` Rust crate re-export surface.
package rene

import (
	"github.com/lycantropos/rene-sub000/bentleyottmann"
	"github.com/lycantropos/rene-sub000/delaunay"
	"github.com/lycantropos/rene-sub000/overlay"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/lycantropos/rene-sub000/relate"
	"github.com/lycantropos/rene-sub000/segment"
	"github.com/lycantropos/rene-sub000/shape"
	"github.com/lycantropos/rene-sub000/trapezoid"
	"github.com/lycantropos/rene-sub000/types"
)

// Scalar is the exact coordinate type every public rene operation works
// over, fixed to rational.Rat rather than left generic: the facade is
// where the kernel commits to one concrete exact-rational representation,
// matching the spec's DATA MODEL ("components never depend on a specific
// Scalar impl, but the product does").
type Scalar = rational.Rat

// Point, Segment, Contour, Polygon, Multisegment and Multipolygon are
// re-exported at the Scalar this facade fixes, so callers never have to
// spell out the generic instantiation themselves.
type (
	Point         = point.Point[Scalar]
	Segment       = segment.Segment[Scalar]
	Contour       = shape.Contour[Scalar]
	Polygon       = shape.Polygon[Scalar]
	Multisegment  = shape.Multisegment[Scalar]
	Multipolygon  = shape.Multipolygon[Scalar]
)

// NewPoint builds a Point from integer coordinates. Use rational.New
// directly for non-integer exact coordinates.
func NewPoint(x, y int64) Point {
	return point.New(rational.FromInt(x), rational.FromInt(y))
}

// Union returns the set-union of a and b as the natural output type (spec
// §6): a Multipolygon whose members are the result's outer boundaries,
// each carrying whatever holes the overlay's contour reconstruction (§4.5
// steps 2-5) nested inside it. A single-boundary result is simply a
// one-member Multipolygon; callers that know their inputs can only ever
// produce one boundary can take Polygons()[0].
func Union(a, b Polygon) Multipolygon { return booleanOp(overlay.Union, a, b) }

// Intersection returns the set-intersection of a and b.
func Intersection(a, b Polygon) Multipolygon { return booleanOp(overlay.Intersection, a, b) }

// Difference returns a minus b.
func Difference(a, b Polygon) Multipolygon { return booleanOp(overlay.Difference, a, b) }

// SymmetricDifference returns the region in exactly one of a, b.
func SymmetricDifference(a, b Polygon) Multipolygon {
	return booleanOp(overlay.SymmetricDifference, a, b)
}

// MultipolygonUnion returns the set-union of two multipolygons (spec §12's
// multipolygon-vs-multipolygon supplement to the base single-Polygon
// operations).
func MultipolygonUnion(a, b Multipolygon) Multipolygon { return multiBooleanOp(overlay.Union, a, b) }

// MultipolygonIntersection returns the set-intersection of two multipolygons.
func MultipolygonIntersection(a, b Multipolygon) Multipolygon {
	return multiBooleanOp(overlay.Intersection, a, b)
}

// MultipolygonDifference returns a minus b for two multipolygons.
func MultipolygonDifference(a, b Multipolygon) Multipolygon {
	return multiBooleanOp(overlay.Difference, a, b)
}

// MultipolygonSymmetricDifference returns the region in exactly one of a, b.
func MultipolygonSymmetricDifference(a, b Multipolygon) Multipolygon {
	return multiBooleanOp(overlay.SymmetricDifference, a, b)
}

func booleanOp(op overlay.Operation, a, b Polygon) Multipolygon {
	return multiBooleanOp(op, shape.NewMultipolygon([]Polygon{a}), shape.NewMultipolygon([]Polygon{b}))
}

func multiBooleanOp(op overlay.Operation, a, b Multipolygon) Multipolygon {
	firstSegs, firstCCW := flattenMultipolygon(a)
	secondSegs, secondCCW := flattenMultipolygon(b)
	survivors := overlay.Operate(op, firstSegs, secondSegs, firstCCW, secondCCW)
	return shape.NewMultipolygon(overlay.Reconstruct(survivors))
}

func flattenMultipolygon(m Multipolygon) ([]Segment, []bool) {
	var segs []Segment
	var ccw []bool
	for _, p := range m.Polygons() {
		segs = append(segs, p.Segments()...)
		ccw = append(ccw, polygonCCWFlags(p)...)
	}
	return segs, ccw
}

// polygonCCWFlags reports, for every segment polygonCCWFlags's caller
// passes in p.Segments() order (border first, then each hole in turn),
// whether that segment's own contour winds counterclockwise — holes wind
// clockwise by construction (§4.9), so this wires a polygon's holes into
// the overlay's interior-to-left bookkeeping instead of dropping them.
func polygonCCWFlags(p Polygon) []bool {
	var flags []bool
	borderCCW := p.Border().IsCounterclockwise()
	for range p.Border().Segments() {
		flags = append(flags, borderCCW)
	}
	for _, h := range p.Holes() {
		holeCCW := h.IsCounterclockwise()
		for range h.Segments() {
			flags = append(flags, holeCCW)
		}
	}
	return flags
}

// IsPolygonValid reports whether p's border and holes are each valid
// simple contours (spec §4.4), the border winds counterclockwise and
// every hole winds clockwise and is nested inside the border (§4.9) —
// the Go equivalent of the original project's contracts.rs
// polygon.IsValid predicate (§12).
func IsPolygonValid(p Polygon) bool {
	if !IsContourValid(p.Border().Vertices()) || !p.Border().IsCounterclockwise() {
		return false
	}
	for _, h := range p.Holes() {
		if !IsContourValid(h.Vertices()) || h.IsCounterclockwise() {
			return false
		}
		switch relate.ContourToContour(p.Border(), h) {
		case types.Cover, types.Encloses:
		default:
			return false
		}
	}
	return true
}

// IsMultipolygonValid reports whether every member polygon is valid and
// no two member borders overlap or cross (spec §12's multipolygon.IsValid).
func IsMultipolygonValid(m Multipolygon) bool {
	polys := m.Polygons()
	for _, p := range polys {
		if !IsPolygonValid(p) {
			return false
		}
	}
	for i := 0; i < len(polys); i++ {
		for j := i + 1; j < len(polys); j++ {
			switch relate.ContourToContour(polys[i].Border(), polys[j].Border()) {
			case types.Disjoint, types.Touch:
			default:
				return false
			}
		}
	}
	return true
}

// RelateSegments classifies the relation between two segments (spec
// §4.6).
func RelateSegments(a, b Segment) types.Relation {
	a1, a2 := a.Endpoints()
	b1, b2 := b.Endpoints()
	return relate.SegmentToSegment(a1, a2, b1, b2)
}

// RelateContours classifies the relation between two simple contours,
// treated areally as if neither had any holes (spec §4.6, §4.11). Use
// RelatePolygons when either side's holes matter to the answer.
func RelateContours(a, b Contour) types.Relation {
	return relate.ContourToContour(a, b)
}

// RelateContoursAsLinear classifies two contours as boundary chains
// rather than as shapes (spec §4.6's linear-vs-linear sweep variant
// applied to Contour): two squares that share only an edge come back
// Overlap here and Encloses/Enclosed under RelateContours.
func RelateContoursAsLinear(a, b Contour) types.Relation {
	return relate.ContourToContourLinear(a, b)
}

// RelateMultisegments classifies two multisegments as linear geometries
// (spec §4.6).
func RelateMultisegments(a, b Multisegment) types.Relation {
	return relate.MultisegmentToMultisegment(a, b)
}

// RelatePolygons classifies the relation between two polygons, honoring
// both sides' holes (spec §4.6's "shaped" sweep variant, §4.11).
func RelatePolygons(a, b Polygon) types.Relation {
	return relate.PolygonToPolygon(a, b)
}

// RelateMultipolygons classifies the relation between two multipolygons
// (spec §12's multipolygon supplement to component H).
func RelateMultipolygons(a, b Multipolygon) types.Relation {
	return relate.MultipolygonToMultipolygon(a, b)
}

// RelatePolygonToMultipolygon classifies a polygon against a multipolygon.
func RelatePolygonToMultipolygon(a Polygon, b Multipolygon) types.Relation {
	return relate.PolygonToMultipolygon(a, b)
}

// RelateLinearToPolygon classifies a multisegment's edges against a
// polygon's area (spec §4.6's "mixed" sweep variant).
func RelateLinearToPolygon(a Multisegment, b Polygon) types.Relation {
	return relate.LinearToPolygon(a.Segments(), b)
}

// RelateLinearToMultipolygon classifies a multisegment's edges against a
// multipolygon's area.
func RelateLinearToMultipolygon(a Multisegment, b Multipolygon) types.Relation {
	return relate.LinearToMultipolygon(a.Segments(), b)
}

// IsMultisegmentValid reports whether segments form a valid multisegment
// (spec §4.4): no crossings, no overlaps, no degenerate segments.
func IsMultisegmentValid(segments []Segment) bool {
	unique := segment.Deduplicate(segments)
	pairs := make([][2]Point, len(unique))
	for i, s := range unique {
		pairs[i][0], pairs[i][1] = s.Endpoints()
	}
	return bentleyottmann.IsMultisegmentValid(pairs)
}

// IsContourValid reports whether vertices form a valid simple contour
// (spec §4.4).
func IsContourValid(vertices []Point) bool {
	return bentleyottmann.IsContourValid(vertices)
}

// Trapezoidation wraps a trapezoid.Map at the facade's fixed Scalar, for
// repeated point-location queries against one polygon (spec §4.10).
type Trapezoidation struct {
	m *trapezoid.Map[Scalar]
}

// Trapezoidate builds a Trapezoidation of polygon's border and holes: the
// padded bounding box's margin, and every hole's interior, decompose into
// trapezoids marked as not components of the polygon (spec §4.10), so
// Locate correctly reports Exterior for points sitting in either.
func Trapezoidate(polygon Polygon) Trapezoidation {
	bounds := polygon.BBox()
	delta := bounds.MaxX.Sub(bounds.MinX)
	if h := bounds.MaxY.Sub(bounds.MinY); h.Cmp(delta) > 0 {
		delta = h
	}
	if delta.Sign() == 0 {
		delta = rational.FromInt(1)
	}
	box := bounds.Expanded(delta)
	segs := contourInputSegments(polygon.Border())
	for _, h := range polygon.Holes() {
		segs = append(segs, contourInputSegments(h)...)
	}
	return Trapezoidation{m: trapezoid.Build(box, segs)}
}

// contourInputSegments derives each edge's InteriorAbove bit from the
// same convention rene's Boolean facade uses for interior-to-left (a
// CCW-wound border, a CW-wound hole): an edge that already runs
// left-to-right keeps its interior-to-left as interior-above; an edge
// that runs right-to-left has its direction flipped by
// predicate.ToSortedPair before trapezoid.Build sees it, flipping
// interior-to-left into interior-below.
func contourInputSegments(c Contour) []trapezoid.InputSegment[Scalar] {
	ccw := c.IsCounterclockwise()
	segs := c.Segments()
	out := make([]trapezoid.InputSegment[Scalar], len(segs))
	for i, s := range segs {
		start, end := s.Endpoints()
		sorted, _ := predicate.ToSortedPair(start, end)
		interiorAbove := ccw
		if !sorted.Eq(start) {
			interiorAbove = !interiorAbove
		}
		out[i] = trapezoid.InputSegment[Scalar]{Start: start, End: end, InteriorAbove: interiorAbove}
	}
	return out
}

// Locate classifies p against the trapezoidated polygon's border as
// Interior/Boundary/Exterior (spec §4.10).
func (t Trapezoidation) Locate(p Point) types.PointLocation {
	return t.m.LocatePointLocation(p)
}

// Triangulation wraps a constrained Delaunay triangulation of a
// polygon's border and holes (spec §4.9, component K), giving access to
// the polygon's boundary points (P7) and the triangulation's faces.
type Triangulation struct {
	mesh     delaunay.Triangulation[Scalar]
	boundary []Point
}

// Triangulate builds the constrained Delaunay triangulation of polygon,
// running component K's three-phase pipeline in order: Constrain forces
// the border's and every hole's edges into the divide-and-conquer
// Delaunay mesh Build produces over the combined vertex set, Bound peels
// away the convex-hull "mouth" triangles that fall outside the border,
// and CutHoles removes the triangles inside each hole.
func Triangulate(polygon Polygon) Triangulation {
	border := polygon.Border().Vertices()
	points := append([]Point{}, border...)
	var holeLoops [][]Point
	for _, h := range polygon.Holes() {
		points = append(points, h.Vertices()...)
		holeLoops = append(holeLoops, h.Vertices())
	}

	tri := delaunay.Build(points)

	required := contourEdges(polygon.Border())
	for _, h := range polygon.Holes() {
		required = append(required, contourEdges(h)...)
	}
	tri.Constrain(required)
	tri.Bound(border)
	tri.CutHoles(holeLoops)

	return Triangulation{mesh: tri, boundary: border}
}

func contourEdges(c Contour) [][2]Point {
	vertices := c.Vertices()
	out := make([][2]Point, len(vertices))
	for i := range vertices {
		out[i] = [2]Point{vertices[i], vertices[(i+1)%len(vertices)]}
	}
	return out
}

// BoundaryPoints returns the triangulated polygon's border vertices (spec
// §4.9's P7).
func (t Triangulation) BoundaryPoints() []Point { return t.boundary }

// Triangles returns every triangular face of the constrained
// triangulation, each as its three vertices in counterclockwise order.
func (t Triangulation) Triangles() [][3]Point { return t.mesh.Triangles() }
