// Package segment defines the Segment collaborator (spec §3 "Segment", §6).
//
// A Segment is an ordered pair (start, end) with start != end. The ordered
// pair conveys an "interior-to-left" bit the overlay and trapezoidation
// engines use to classify the shape whose edge the segment came from
// (§4.5, §4.10); the *canonical* endpoints — lexicographic min/max,
// independent of which was given as start — are what the sweep-line
// engines key on (§3). This mirrors the teacher's LineSegment, which
// always normalizes to an "upper"/"lower" pair internally but exposes the
// original endpoints through Start()/End(); here the asymmetry is load
// bearing rather than cosmetic, so both orderings are kept as distinct
// accessors.
package segment

import (
	"errors"
	"fmt"

	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/predicate"
	"github.com/lycantropos/rene-sub000/types"
)

// ErrDegenerate is returned by New when start equals end.
var ErrDegenerate = errors.New("segment: start and end coincide")

// Segment is a straight segment between two distinct points.
type Segment[S types.Scalar[S]] struct {
	start, end point.Point[S]
}

// New builds a Segment from start to end, preserving their order (and thus
// the interior-to-left convention described in the package doc).
func New[S types.Scalar[S]](start, end point.Point[S]) (Segment[S], error) {
	if start.Eq(end) {
		return Segment[S]{}, fmt.Errorf("%w: %s", ErrDegenerate, start)
	}
	return Segment[S]{start: start, end: end}, nil
}

// Start returns the segment's start point, in the order it was given to New.
func (s Segment[S]) Start() point.Point[S] { return s.start }

// End returns the segment's end point, in the order it was given to New.
func (s Segment[S]) End() point.Point[S] { return s.end }

// Endpoints returns (Start, End) as a pair, matching the Segment
// collaborator's endpoints() accessor from spec §6.
func (s Segment[S]) Endpoints() (point.Point[S], point.Point[S]) {
	return s.start, s.end
}

// CanonicalEndpoints returns (min, max) in lexicographic order, regardless
// of how the segment was constructed (spec §3).
func (s Segment[S]) CanonicalEndpoints() (point.Point[S], point.Point[S]) {
	return predicate.ToSortedPair(s.start, s.end)
}

// Eq reports whether two segments have the same endpoints, in the same
// order (so Eq does not consider a reversed segment equal — use
// CanonicalEndpoints first if order-independent comparison is needed).
func (s Segment[S]) Eq(other Segment[S]) bool {
	return s.start.Eq(other.start) && s.end.Eq(other.end)
}

// IsDegenerateChain reports whether a run of points would collapse into a
// degenerate (zero-length) segment.
func IsDegenerateChain[S types.Scalar[S]](a, b point.Point[S]) bool {
	return a.Eq(b)
}

// String renders the segment as "start-end".
func (s Segment[S]) String() string {
	return fmt.Sprintf("%s-%s", s.start, s.end)
}

// Deduplicate drops segments that repeat an earlier one's canonical
// endpoints, preserving the order of first occurrence.
func Deduplicate[S types.Scalar[S]](segments []Segment[S]) []Segment[S] {
	seen := make(map[string]struct{}, len(segments))
	result := make([]Segment[S], 0, len(segments))
	for _, s := range segments {
		lo, hi := s.CanonicalEndpoints()
		key := lo.Key() + "|" + hi.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, s)
	}
	return result
}
