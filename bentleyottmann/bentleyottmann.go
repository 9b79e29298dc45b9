// Package bentleyottmann implements the arrangement/validator engine
// (component F, spec §4.4): detecting every pairwise intersection among a
// set of segments in O((n+k) log n), classifying each as a proper
// crossing, a T-touch, or an overlap, and using that to answer
// multisegment/contour validity.
//
// The control flow is grounded in mikenye/geom2d's
// linesegment/sweepline.go FindIntersectionsFast (handleEventPoint,
// findNewEvent, U(p)/L(p)/C(p) bookkeeping), generalized from the
// teacher's float64 statusItem slice scan to the exact-rational
// event.Arena/event.Queue/event.StatusStructure built in this module.
package bentleyottmann

import (
	"github.com/lycantropos/rene-sub000/event"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/types"
)

// IntersectionKind classifies how two segment-pieces meet.
type IntersectionKind uint8

const (
	// ProperCrossing: the segments cross at a single point interior to both.
	ProperCrossing IntersectionKind = iota
	// Touch: the intersection point is an endpoint of at least one segment.
	Touch
	// Overlap: the segments are collinear and share more than one point.
	Overlap
)

// Intersection records one pairwise intersection found by Detect.
type Intersection[S types.Scalar[S]] struct {
	FirstPiece, SecondPiece int
	Kind                    IntersectionKind
	Point                   point.Point[S] // zero value when Kind == Overlap
	OverlapStart, OverlapEnd point.Point[S] // valid only when Kind == Overlap
}

// union-find over segment-piece ids, used to group pieces that collapse
// into the same minimal collinear run (P3: at most two hops to the
// representative).
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]] // halve the path; union already keeps it at one hop
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	// relabel every member of ra's set directly to rb, so every slot stays
	// one hop from its representative (P3)
	for i, p := range u.parent {
		if p == ra {
			u.parent[i] = rb
		}
	}
}

// Engine runs the Bentley-Ottmann sweep over one Arena of segment-pieces.
type Engine[S types.Scalar[S]] struct {
	arena  *event.Arena[S]
	queue  *event.Queue
	status *event.StatusStructure
	uf     *unionFind

	intersections []Intersection[S]
}

// New builds an Engine ready to sweep every piece currently registered in
// arena. Engines are single-use: build a fresh one (and a fresh Arena) per
// query, matching the kernel's synchronous, non-re-entrant design (§5).
func New[S types.Scalar[S]](arena *event.Arena[S]) *Engine[S] {
	less := arena.EventsQueueLess(nil)
	slLess := arena.SweepLineLess(nil)
	q := event.NewQueue(less)
	pieces := len(arena.SegmentIDs)
	for p := 0; p < pieces; p++ {
		left := event.LeftEventOf(p)
		right := event.RightEventOf(p)
		if !arena.Start(left).Eq(arena.End(left)) {
			q.Push(left)
			q.Push(right)
		}
	}
	return &Engine[S]{
		arena:  arena,
		queue:  q,
		status: event.NewStatusStructure(slLess),
		uf:     newUnionFind(pieces),
	}
}

// Detect runs the sweep to completion and returns every pairwise
// intersection found, each tagged with its kind.
func (e *Engine[S]) Detect() []Intersection[S] {
	for !e.queue.Empty() {
		p := e.queue.Pop()
		e.handleEvent(p)
	}
	return e.intersections
}

// Representative returns the union-find representative of piece p, after
// Detect has run: two pieces share a representative iff they were found
// collinear-overlapping and so belong to the same minimal run (P3).
func (e *Engine[S]) Representative(piece int) int { return e.uf.find(piece) }

func (e *Engine[S]) handleEvent(ev event.ID) {
	piece := ev.PieceID()
	if ev.IsLeft() {
		e.status.Insert(ev)
		above, hasAbove := e.status.Above(ev)
		below, hasBelow := e.status.Below(ev)
		if hasAbove {
			e.checkPair(ev, above)
		}
		if hasBelow {
			e.checkPair(ev, below)
		}
		return
	}

	left := event.LeftEventOf(piece)
	above, hasAbove := e.status.Above(left)
	below, hasBelow := e.status.Below(left)
	e.status.Remove(left)
	if hasAbove && hasBelow {
		e.checkPair(above, below)
	}
}

func (e *Engine[S]) checkPair(e1, e2 event.ID) {
	p1, p2 := e1.PieceID(), e2.PieceID()
	if p1 == p2 {
		return
	}
	a1, b1 := e.arena.Start(event.LeftEventOf(p1)), e.arena.End(event.LeftEventOf(p1))
	a2, b2 := e.arena.Start(event.LeftEventOf(p2)), e.arena.End(event.LeftEventOf(p2))

	o1 := predicate.Orient(a1, b1, a2)
	o2 := predicate.Orient(a1, b1, b2)
	o3 := predicate.Orient(a2, b2, a1)
	o4 := predicate.Orient(a2, b2, b1)

	if o1 == types.Collinear && o2 == types.Collinear {
		e.checkCollinearOverlap(p1, p2, a1, b1, a2, b2)
		return
	}

	if o1 != o2 && o3 != o4 {
		pt := predicate.IntersectCrossingSegments(a1, b1, a2, b2)
		kind := ProperCrossing
		if o1 == types.Collinear || o2 == types.Collinear || o3 == types.Collinear || o4 == types.Collinear {
			kind = Touch
		}
		e.intersections = append(e.intersections, Intersection[S]{
			FirstPiece: p1, SecondPiece: p2, Kind: kind, Point: pt,
		})
	}
}

func (e *Engine[S]) checkCollinearOverlap(p1, p2 int, a1, b1, a2, b2 point.Point[S]) {
	lo1, hi1 := predicate.ToSortedPair(a1, b1)
	lo2, hi2 := predicate.ToSortedPair(a2, b2)

	start := lo1
	if lo2.Cmp(start) > 0 {
		start = lo2
	}
	end := hi1
	if hi2.Cmp(end) < 0 {
		end = hi2
	}
	if start.Cmp(end) >= 0 {
		if start.Eq(end) {
			e.intersections = append(e.intersections, Intersection[S]{
				FirstPiece: p1, SecondPiece: p2, Kind: Touch, Point: start,
			})
		}
		return
	}
	e.uf.union(p1, p2)
	e.intersections = append(e.intersections, Intersection[S]{
		FirstPiece: p1, SecondPiece: p2, Kind: Overlap,
		OverlapStart: start, OverlapEnd: end,
	})
}
