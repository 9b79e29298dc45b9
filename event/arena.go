package event

import (
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/types"
)

// Arena holds the parallel event arrays shared by every sweep engine (spec
// §3 "Arrangement state"): Endpoints, Opposites, and SegmentIDs. It is
// owned by a single engine for the duration of one query (§5: the kernel
// is synchronous and an engine is not re-entrant).
//
// Arena pre-reserves capacity for 2*(inputSegments) events on construction
// and grows only through Split, in plain append calls — safe precisely
// because nothing outside Arena ever holds a pointer into its slices (see
// the package doc and §9's design note on pointer-stable sweep keys).
type Arena[S types.Scalar[S]] struct {
	Endpoints  []point.Point[S]
	Opposites  []ID
	SegmentIDs []int
}

// NewArena returns an empty Arena sized for capacityHint input segments
// plus some headroom for splits.
func NewArena[S types.Scalar[S]](capacityHint int) *Arena[S] {
	cap2 := 2 * capacityHint
	return &Arena[S]{
		Endpoints:  make([]point.Point[S], 0, cap2+8),
		Opposites:  make([]ID, 0, cap2+8),
		SegmentIDs: make([]int, 0, capacityHint+4),
	}
}

// AddSegment registers one input segment (by its two endpoints, in
// whichever order the caller has them) under origin, an index the caller
// assigns meaning to (e.g. the position in the original input slice).
// It returns the new piece's left event id.
func (a *Arena[S]) AddSegment(p, q point.Point[S], origin int) ID {
	left, right := predicate.ToSortedPair(p, q)
	pieceID := len(a.SegmentIDs)
	leftID := LeftEventOf(pieceID)
	rightID := RightEventOf(pieceID)
	a.Endpoints = append(a.Endpoints, left, right)
	a.Opposites = append(a.Opposites, rightID, leftID)
	a.SegmentIDs = append(a.SegmentIDs, origin)
	return leftID
}

// Start returns the point at event e's side of its segment-piece.
func (a *Arena[S]) Start(e ID) point.Point[S] { return a.Endpoints[e] }

// End returns the point at the opposite side of e's segment-piece.
func (a *Arena[S]) End(e ID) point.Point[S] { return a.Endpoints[a.Opposites[e]] }

// Origin returns the original input index the segment-piece containing e
// descends from.
func (a *Arena[S]) Origin(e ID) int { return a.SegmentIDs[e.PieceID()] }

// Split divides the segment-piece owning left event `left` at point m,
// which must lie strictly between left's point and its opposite's point.
// It implements spec §4.3 exactly: two fresh ids are appended, wired so
// each half of the original piece becomes a self-consistent (left, right)
// pair, and the origin segment id is carried to the new piece.
//
// Split returns (newLeft, newRight): newLeft is the left event of the half
// ending at left's original opposite (i.e. "m as left of the right
// half"); newRight is the right event of the half starting at left (i.e.
// "m as right of the left half"). Both must be (re)inserted by the caller
// — newLeft and newRight into the event queue, and `left` is left in
// place in the sweep-line status structure (only its implicit "other
// endpoint" changed).
func (a *Arena[S]) Split(left ID, m point.Point[S]) (newLeft, newRight ID) {
	right := a.Opposites[left]
	n := ID(len(a.Endpoints))
	newLeft = n
	newRight = n + 1

	a.Endpoints = append(a.Endpoints, m, m)
	a.Opposites = append(a.Opposites, right, left) // Opposites[newLeft]=right, Opposites[newRight]=left
	a.Opposites[left] = newRight
	a.Opposites[right] = newLeft

	a.SegmentIDs = append(a.SegmentIDs, a.Origin(left))

	return newLeft, newRight
}

// CheckOppositesInvolution verifies P1 (opposites involution) for every
// event currently allocated; it exists for use in debug assertions and
// tests, not on any hot path.
func (a *Arena[S]) CheckOppositesInvolution() bool {
	for e := range a.Opposites {
		if a.Opposites[a.Opposites[e]] != ID(e) {
			return false
		}
	}
	return true
}

// CheckLeftBeforeRight verifies P2 for every left event currently
// allocated.
func (a *Arena[S]) CheckLeftBeforeRight() bool {
	for e := 0; e < len(a.Endpoints); e++ {
		id := ID(e)
		if !id.IsLeft() {
			continue
		}
		if !a.Endpoints[id].Less(a.Endpoints[a.Opposites[id]]) {
			return false
		}
	}
	return true
}
