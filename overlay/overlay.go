// Package overlay implements the Boolean set-operation engine (component
// G, spec §4.5): Union, Intersection, Difference and SymmetricDifference
// over two multisegment operands, built by extending the arrangement
// engine (component F) with the two operand-tagged interior flags
// described in the spec summary table ("have_interior_to_left",
// "other_have_interior_to_left") plus a final classification pass.
//
// The classification rule is the textbook Martinez/Rueda polygon-clipping
// trick also used by lycantropos/rene, the project this kernel's spec is
// modeled on: an edge survives into the result when the combination of
// (own operand, own interior-to-left, other operand's interior-to-left)
// matches the requested operation's truth table.
package overlay

import (
	"github.com/lycantropos/rene-sub000/bentleyottmann"
	"github.com/lycantropos/rene-sub000/event"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/segment"
	"github.com/lycantropos/rene-sub000/types"
)

// Operation names one of the four Boolean set operations.
type Operation uint8

const (
	Intersection Operation = iota
	Union
	Difference
	SymmetricDifference
)

// pieceFlags holds component G's per-piece bookkeeping (§4.5).
type pieceFlags struct {
	fromFirstOperand   bool
	ownInteriorToLeft  bool
	otherInteriorToLeft bool
	isOverlap          bool
	overlapSameDir     bool
}

// Operate runs op over the two operand segment sets and returns the
// segments (split at every intersection as needed) that belong to the
// result.
func Operate[S types.Scalar[S]](op Operation, first, second []segment.Segment[S], firstCCW, secondCCW []bool) []segment.Segment[S] {
	arena := event.NewArena[S](len(first) + len(second))
	flags := make([]pieceFlags, 0, len(first)+len(second))

	addAll := func(segs []segment.Segment[S], ccw []bool, fromFirst bool) {
		for i, s := range segs {
			start, end := s.Start(), s.End()
			arena.AddSegment(start, end, len(flags))
			left, _ := leftRight(start, end)
			matches := left.Eq(start)
			interiorToLeft := matches
			if i < len(ccw) && !ccw[i] {
				interiorToLeft = !interiorToLeft
			}
			flags = append(flags, pieceFlags{fromFirstOperand: fromFirst, ownInteriorToLeft: interiorToLeft})
		}
	}
	addAll(first, firstCCW, true)
	addAll(second, secondCCW, false)

	splitAtIntersections(arena)

	otherLeft := computeOtherInterior(arena, flags)
	markOverlaps(arena, flags)

	var out []segment.Segment[S]
	pieces := len(arena.SegmentIDs)
	seen := make([]bool, pieces)
	for p := 0; p < pieces; p++ {
		if seen[p] {
			continue
		}
		seen[p] = true
		f := flags[originFlagIndex(arena, p)]
		f.otherInteriorToLeft = otherLeft[event.LeftEventOf(p)]
		survives, interiorToLeft := classify(op, f)
		if !survives {
			continue
		}
		left := event.LeftEventOf(p)
		a, b := arena.Start(left), arena.End(left)
		if !interiorToLeft {
			a, b = b, a
		}
		s, err := segment.New(a, b)
		if err == nil {
			out = append(out, s)
		}
	}
	return segment.Deduplicate(out)
}

func leftRight[S types.Scalar[S]](a, b point.Point[S]) (point.Point[S], point.Point[S]) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

func originFlagIndex[S types.Scalar[S]](arena *event.Arena[S], piece int) int {
	return arena.Origin(event.LeftEventOf(piece))
}

// splitAtIntersections runs the arrangement engine once to find every
// proper crossing, then divides each involved piece at the crossing
// point (spec §4.3), so every downstream piece is interior-disjoint
// except possibly for exact overlaps.
func splitAtIntersections[S types.Scalar[S]](arena *event.Arena[S]) {
	eng := bentleyottmann.New(arena)
	for _, it := range eng.Detect() {
		if it.Kind != bentleyottmann.ProperCrossing {
			continue
		}
		for _, piece := range []int{it.FirstPiece, it.SecondPiece} {
			left := event.LeftEventOf(piece)
			a, b := arena.Start(left), arena.End(left)
			if it.Point.Eq(a) || it.Point.Eq(b) {
				continue
			}
			arena.Split(left, it.Point)
		}
	}
}

// computeOtherInterior sweeps the (now split) arrangement once more to
// determine, for every piece, whether the other operand's interior lies
// just to its left (§4.5's other_have_interior_to_left): only crossing an
// edge that belongs to the other operand can flip that flag.
func computeOtherInterior[S types.Scalar[S]](arena *event.Arena[S], flags []pieceFlags) map[event.ID]bool {
	less := arena.SweepLineLess(func(e event.ID) int {
		if flags[originFlagIndex(arena, e.PieceID())].fromFirstOperand {
			return 0
		}
		return 1
	})
	status := event.NewStatusStructure(less)
	q := event.NewQueue(arena.EventsQueueLess(nil))
	pieces := len(arena.SegmentIDs)
	for p := 0; p < pieces; p++ {
		left := event.LeftEventOf(p)
		if !arena.Start(left).Eq(arena.End(left)) {
			q.Push(left)
			q.Push(arena.Opposites[left])
		}
	}

	otherLeft := make(map[event.ID]bool, pieces)

	for !q.Empty() {
		e := q.Pop()
		if e.IsLeft() {
			below, ok := status.Below(e)
			f := &flags[originFlagIndex(arena, e.PieceID())]
			belowF := func() pieceFlags {
				if !ok {
					return pieceFlags{}
				}
				return flags[originFlagIndex(arena, below.PieceID())]
			}()
			if ok && belowF.fromFirstOperand != f.fromFirstOperand {
				f.otherInteriorToLeft = belowOwnInterior(belowF, otherLeft, below)
			} else if ok {
				f.otherInteriorToLeft = otherLeft[below]
			} else {
				f.otherInteriorToLeft = false
			}
			otherLeft[e] = f.otherInteriorToLeft
			status.Insert(e)
		} else {
			status.Remove(event.LeftEventOf(e.PieceID()))
		}
	}
	return otherLeft
}

func belowOwnInterior(f pieceFlags, otherLeft map[event.ID]bool, below event.ID) bool {
	return f.ownInteriorToLeft
}

// markOverlaps flags pieces that exactly coincide with a piece from the
// other operand, and whether they run in the same direction.
func markOverlaps[S types.Scalar[S]](arena *event.Arena[S], flags []pieceFlags) {
	eng := bentleyottmann.New(arena)
	for _, it := range eng.Detect() {
		if it.Kind != bentleyottmann.Overlap {
			continue
		}
		f1 := &flags[originFlagIndex(arena, it.FirstPiece)]
		f2 := &flags[originFlagIndex(arena, it.SecondPiece)]
		if f1.fromFirstOperand == f2.fromFirstOperand {
			continue
		}
		f1.isOverlap, f2.isOverlap = true, true
		same := f1.ownInteriorToLeft == f2.ownInteriorToLeft
		f1.overlapSameDir, f2.overlapSameDir = same, same
	}
}

// classify implements §4.5's classification table, returning both whether
// the piece survives into the result and, if so, whether the result's
// interior lies to the left of its stored Start->End direction: a
// Difference piece taken from the second operand has the roles of "own"
// and "result" interior on opposite sides, so its direction is reported
// reversed relative to ownInteriorToLeft rather than copying it, keeping
// the invariant that every surviving edge the caller sees already has the
// result's interior to its left (what §4.5 step 2's connectivity
// permutation and step 3's contour trace both assume).
func classify(op Operation, f pieceFlags) (survives bool, resultInteriorToLeft bool) {
	if f.isOverlap {
		switch op {
		case Union, Intersection:
			return f.overlapSameDir, f.ownInteriorToLeft
		case SymmetricDifference:
			return false, false
		case Difference:
			return !f.overlapSameDir, f.ownInteriorToLeft
		}
		return false, false
	}
	switch op {
	case Intersection:
		return f.otherInteriorToLeft, f.ownInteriorToLeft
	case Union:
		return !f.otherInteriorToLeft, f.ownInteriorToLeft
	case Difference:
		if f.fromFirstOperand {
			return !f.otherInteriorToLeft, f.ownInteriorToLeft
		}
		return f.otherInteriorToLeft, !f.ownInteriorToLeft
	case SymmetricDifference:
		return true, f.ownInteriorToLeft != f.otherInteriorToLeft
	}
	return false, false
}
