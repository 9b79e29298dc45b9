package event

import (
	"github.com/google/btree"
)

// Queue is the event queue (component D): a priority queue over event ids
// ordered by EventsQueueLess, popped lowest-first by the sweep loop.
//
// Grounded directly in mikenye/geom2d's linesegment/sweepline_eventqueue.go,
// which keeps its qItem values in a github.com/google/btree.BTreeG. This
// package keeps the same container, generalized from qItem to a bare ID:
// ordering lives entirely in the Less closure built by EventsQueueLess, not
// in the stored value, so the btree never needs to know about Arena.
type Queue struct {
	tree *btree.BTreeG[ID]
}

// NewQueue returns an empty Queue ordered by less, typically
// Arena.EventsQueueLess(...).
func NewQueue(less func(e1, e2 ID) bool) *Queue {
	return &Queue{tree: btree.NewG(32, less)}
}

// Push inserts e into the queue.
func (q *Queue) Push(e ID) { q.tree.ReplaceOrInsert(e) }

// Len returns the number of events currently queued.
func (q *Queue) Len() int { return q.tree.Len() }

// Empty reports whether the queue holds no events.
func (q *Queue) Empty() bool { return q.tree.Len() == 0 }

// Pop removes and returns the lowest-ordered event. It panics if the queue
// is empty; callers must check Empty first, matching the sweep loop's
// "while queue not empty" structure (§5).
func (q *Queue) Pop() ID {
	e, ok := q.tree.DeleteMin()
	if !ok {
		panic("event: Pop called on an empty Queue")
	}
	return e
}

// Peek returns the lowest-ordered event without removing it, and whether
// the queue held anything at all.
func (q *Queue) Peek() (ID, bool) {
	return q.tree.Min()
}

// Remove deletes e from the queue if present, reporting whether it was
// found. Used when a split (§4.3) invalidates a previously queued right
// event that must be replaced by its two halves.
func (q *Queue) Remove(e ID) bool {
	_, ok := q.tree.Delete(e)
	return ok
}
