package event

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
)

// StatusStructure is the sweep-line status structure (component E): the
// set of left events currently "active" (their sweep has passed the left
// endpoint but not yet the right one), ordered by SweepLineLess, queried
// for the neighbours immediately above/below a given event.
//
// Grounded directly in mikenye/geom2d's
// linesegment/sweepline_statusstructure_rbt.go, which keeps its active
// segments in a github.com/emirpasic/gods/trees/redblacktree.Tree with a
// custom comparator. This package keeps the same container and the same
// "box the key as interface{}, compare via a closure" approach, generalized
// from the teacher's statusItem to a bare ID.
//
// Neighbours are found without touching the tree's internal Node layout:
// gods's public API exposes only Floor/Ceiling/Get/Put/Remove, so
// Above/Below temporarily remove id, ask Floor/Ceiling of the gap that
// leaves, and reinsert id. This costs two extra O(log n) operations per
// query in exchange for never guessing at an unexported field layout.
type StatusStructure struct {
	tree *rbt.Tree
	less func(e1, e2 ID) bool
}

type idComparator struct {
	less func(e1, e2 ID) bool
}

func (c idComparator) compare(a, b interface{}) int {
	ea, eb := a.(ID), b.(ID)
	if ea == eb {
		return 0
	}
	if c.less(ea, eb) {
		return -1
	}
	return 1
}

// NewStatusStructure returns an empty StatusStructure ordered by less,
// typically Arena.SweepLineLess(...).
func NewStatusStructure(less func(e1, e2 ID) bool) *StatusStructure {
	c := idComparator{less: less}
	return &StatusStructure{
		tree: rbt.NewWith(func(a, b interface{}) int { return c.compare(a, b) }),
		less: less,
	}
}

// Insert adds e to the active set.
func (s *StatusStructure) Insert(e ID) { s.tree.Put(e, e) }

// Remove drops e from the active set.
func (s *StatusStructure) Remove(e ID) { s.tree.Remove(e) }

// Contains reports whether e is currently active.
func (s *StatusStructure) Contains(e ID) bool {
	_, found := s.tree.Get(e)
	return found
}

// Len returns the number of currently active events.
func (s *StatusStructure) Len() int { return s.tree.Size() }

// Above returns the active event immediately above e (the next one up in
// SweepLineLess order), and whether one exists.
func (s *StatusStructure) Above(e ID) (ID, bool) {
	s.tree.Remove(e)
	defer s.tree.Put(e, e)
	node, found := s.tree.Ceiling(e)
	if !found {
		return NoEvent, false
	}
	return node.Key.(ID), true
}

// Below returns the active event immediately below e (the next one down
// in SweepLineLess order), and whether one exists.
func (s *StatusStructure) Below(e ID) (ID, bool) {
	s.tree.Remove(e)
	defer s.tree.Put(e, e)
	node, found := s.tree.Floor(e)
	if !found {
		return NoEvent, false
	}
	return node.Key.(ID), true
}
