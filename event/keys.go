package event

import (
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/types"
)

// OperandOf is the tie-break hook the overlay and relation engines (G, H)
// plug in to prefer "second operand first" on exact ties (§4.2). F has no
// operands and passes nil, falling back to a simpler, still-deterministic
// piece-id tie-break, exactly as the spec calls out ("F uses a simpler
// rule; G/H must use operand tag").
type OperandOf func(ID) int

// EventsQueueLess builds the total order over events described in §4.2
// ("EventsQueueKey"): primarily by endpoint, then right-before-left on a
// tie, then by the orientation of the two segments at their shared start,
// falling back to operandOf (or piece id, if operandOf is nil) as the
// final tie-break.
func (a *Arena[S]) EventsQueueLess(operandOf OperandOf) func(e1, e2 ID) bool {
	return func(e1, e2 ID) bool {
		if e1 == e2 {
			return false
		}
		p1, p2 := a.Endpoints[e1], a.Endpoints[e2]
		if c := p1.Cmp(p2); c != 0 {
			return c < 0
		}

		left1, left2 := e1.IsLeft(), e2.IsLeft()
		if left1 != left2 {
			// the right event comes first
			return left2
		}

		o := predicate.Orient(p1, a.End(e1), a.End(e2))
		if o != types.Collinear {
			cw := o == types.Clockwise
			if left1 {
				// left events: CW -> e1 later, CCW -> e1 earlier
				return !cw
			}
			// right events: CW -> e1 earlier, CCW -> e1 later
			return cw
		}

		return eventTieBreak(e1, e2, operandOf)
	}
}

func eventTieBreak(e1, e2 ID, operandOf OperandOf) bool {
	if operandOf != nil {
		if op1, op2 := operandOf(e1), operandOf(e2); op1 != op2 {
			// second operand (1) sorts before first operand (0)
			return op1 > op2
		}
	}
	return e1.PieceID() < e2.PieceID()
}

// SweepLineLess builds the total order over active left events described
// in §4.2 ("SweepLineKey"): which segment-piece currently sits lower at
// the sweep line's x, falling back to the same operand/piece-id tie-break
// as EventsQueueLess when the two pieces are found to coincide or cross.
//
// Both arguments must be left events; the status structure (component E)
// only ever holds left events, by construction.
func (a *Arena[S]) SweepLineLess(operandOf OperandOf) func(e1, e2 ID) bool {
	return func(e1, e2 ID) bool {
		if e1 == e2 {
			return false
		}
		startA, endA := a.Start(e1), a.End(e1)
		startB, endB := a.Start(e2), a.End(e2)

		o1 := predicate.Orient(startA, endA, startB)
		o2 := predicate.Orient(startA, endA, endB)
		if o1 == o2 && o1 != types.Collinear {
			return o1 == types.Counterclockwise
		}

		o3 := predicate.Orient(startB, endB, startA)
		o4 := predicate.Orient(startB, endB, endA)
		if o3 == o4 && o3 != types.Collinear {
			return o3 == types.Clockwise
		}

		// the segments cross or are collinear within the sweep's current
		// view: tie-break deterministically rather than declare an order
		// that can't be made consistent locally.
		if c := startA.Cmp(startB); c != 0 {
			return c < 0
		}
		if operandOf != nil {
			if op1, op2 := operandOf(e1), operandOf(e2); op1 != op2 {
				return op1 > op2
			}
		}
		return e1 < e2
	}
}
