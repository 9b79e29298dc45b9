// Package event implements the kernel's shared sweep infrastructure:
// components C (event codec), D (event queue key), and E (sweep-line key)
// from spec §2–§4.3, plus the Queue and StatusStructure containers that
// the Bentley-Ottmann, overlay and relation engines (F, G, H) all build
// on.
//
// The container choices are grounded directly in the teacher library's own
// sweep: mikenye/geom2d's linesegment package keeps its event queue in a
// github.com/google/btree.BTreeG and its sweep-line status structure in a
// github.com/emirpasic/gods redblacktree — this package keeps exactly that
// split, generalized from the teacher's float64 qItem/statusItem points to
// an exact-rational, integer-event-id model.
//
// Per §9's design note on raw pointers in sweep-line keys, this package
// takes strategy (a): a key is never a pointer into the Arena's slices.
// It is an event ID plus a closure that re-reads Arena.Endpoints/Opposites
// at comparison time, through the *Arena the comparator closes over. That
// makes slice growth during the split path (§4.3) harmless: btree/gods
// never hold anything but IDs and a stable *Arena pointer.
package event

// ID names one endpoint of a segment-piece in a sweep (spec glossary
// "Event"). Segment-piece s (0-indexed) has left event 2s and right event
// 2s+1; dividing an event id by two recovers its segment-piece id.
type ID int

// NoEvent is the sentinel for "no such event" (e.g. no neighbour below).
const NoEvent ID = -1

// IsLeft reports whether id is the left (lexicographically smaller)
// endpoint of its segment-piece.
func (id ID) IsLeft() bool { return id%2 == 0 }

// IsRight reports whether id is the right (lexicographically larger)
// endpoint of its segment-piece.
func (id ID) IsRight() bool { return id%2 == 1 }

// PieceID returns the segment-piece id this event belongs to: id/2.
func (id ID) PieceID() int { return int(id) / 2 }

// LeftEventOf returns the left event id of segment-piece p.
func LeftEventOf(p int) ID { return ID(2 * p) }

// RightEventOf returns the right event id of segment-piece p.
func RightEventOf(p int) ID { return ID(2*p + 1) }
