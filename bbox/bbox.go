// Package bbox implements the bounding-box relator (component B, spec
// §2 and §4.6): cheap axis-aligned-box classification used to prune
// segment pairs before they are fed to any sweep, and to compute the
// Seidel trapezoidation's initial bounding trapezoid (§4.10 step 1).
//
// This plays the same pruning role the teacher's Rectangle type plays for
// its relationship functions, generalized to an exact Scalar and widened
// with the specific classification the spec's relation engines need
// (Disjoint/Touch/Overlap/Cover/Within) rather than the teacher's broader
// five-way Relationship enum.
package bbox

import (
	"fmt"

	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/types"
)

// Box is an axis-aligned bounding box, stored as (minX, maxX, minY, maxY).
type Box[S types.Scalar[S]] struct {
	MinX, MaxX, MinY, MaxY S
}

// New builds a Box, normalizing the corners so MinX <= MaxX and
// MinY <= MaxY regardless of argument order.
func New[S types.Scalar[S]](x1, x2, y1, y2 S) Box[S] {
	if x2.Cmp(x1) < 0 {
		x1, x2 = x2, x1
	}
	if y2.Cmp(y1) < 0 {
		y1, y2 = y2, y1
	}
	return Box[S]{MinX: x1, MaxX: x2, MinY: y1, MaxY: y2}
}

// OfPoints returns the smallest Box enclosing every point given. Panics on
// an empty slice — every geometric collaborator in this kernel requires at
// least one point to have a bounding box at all.
func OfPoints[S types.Scalar[S]](points []point.Point[S]) Box[S] {
	if len(points) == 0 {
		panic("bbox: OfPoints requires at least one point")
	}
	b := Box[S]{MinX: points[0].X(), MaxX: points[0].X(), MinY: points[0].Y(), MaxY: points[0].Y()}
	for _, p := range points[1:] {
		if p.X().Cmp(b.MinX) < 0 {
			b.MinX = p.X()
		}
		if p.X().Cmp(b.MaxX) > 0 {
			b.MaxX = p.X()
		}
		if p.Y().Cmp(b.MinY) < 0 {
			b.MinY = p.Y()
		}
		if p.Y().Cmp(b.MaxY) > 0 {
			b.MaxY = p.Y()
		}
	}
	return b
}

// Union returns the smallest Box enclosing both a and b.
func Union[S types.Scalar[S]](a, b Box[S]) Box[S] {
	out := a
	if b.MinX.Cmp(out.MinX) < 0 {
		out.MinX = b.MinX
	}
	if b.MaxX.Cmp(out.MaxX) > 0 {
		out.MaxX = b.MaxX
	}
	if b.MinY.Cmp(out.MinY) < 0 {
		out.MinY = b.MinY
	}
	if b.MaxY.Cmp(out.MaxY) > 0 {
		out.MaxY = b.MaxY
	}
	return out
}

// Disjoint reports whether a and b share no point, including boundary
// points. Used to prune segment pairs before a sweep ever sees them
// (§4.6 "they never feed disjoint-box segments into the sweep").
func (a Box[S]) Disjoint(b Box[S]) bool {
	return a.MaxX.Cmp(b.MinX) < 0 || b.MaxX.Cmp(a.MinX) < 0 ||
		a.MaxY.Cmp(b.MinY) < 0 || b.MaxY.Cmp(a.MinY) < 0
}

// Touches reports whether a and b intersect only along their boundaries,
// with no shared interior area.
func (a Box[S]) Touches(b Box[S]) bool {
	if a.Disjoint(b) {
		return false
	}
	overlapX := a.MinX.Cmp(b.MaxX) < 0 && b.MinX.Cmp(a.MaxX) < 0
	overlapY := a.MinY.Cmp(b.MaxY) < 0 && b.MinY.Cmp(a.MaxY) < 0
	return !(overlapX && overlapY)
}

// Covers reports whether b is fully contained within a (boundary-inclusive).
func (a Box[S]) Covers(b Box[S]) bool {
	return a.MinX.Cmp(b.MinX) <= 0 && a.MaxX.Cmp(b.MaxX) >= 0 &&
		a.MinY.Cmp(b.MinY) <= 0 && a.MaxY.Cmp(b.MaxY) >= 0
}

// Within reports whether a is fully contained within b; the mirror of Covers.
func (a Box[S]) Within(b Box[S]) bool {
	return b.Covers(a)
}

// Overlaps reports whether a and b share interior area without either
// covering the other.
func (a Box[S]) Overlaps(b Box[S]) bool {
	if a.Disjoint(b) || a.Touches(b) {
		return false
	}
	return !a.Covers(b) && !b.Covers(a)
}

// Equal reports whether a and b have identical corners.
func (a Box[S]) Equal(b Box[S]) bool {
	return a.MinX.Cmp(b.MinX) == 0 && a.MaxX.Cmp(b.MaxX) == 0 &&
		a.MinY.Cmp(b.MinY) == 0 && a.MaxY.Cmp(b.MaxY) == 0
}

// Expanded returns a Box padded outward by delta on every side. Used by
// the Seidel trapezoidation's initial bounding trapezoid (§4.10 step 1),
// which pads by max(width, height) or by 1 when the box is degenerate.
func (a Box[S]) Expanded(delta S) Box[S] {
	return Box[S]{
		MinX: a.MinX.Sub(delta),
		MaxX: a.MaxX.Add(delta),
		MinY: a.MinY.Sub(delta),
		MaxY: a.MaxY.Add(delta),
	}
}

// String renders the box as "[minX,maxX]x[minY,maxY]".
func (a Box[S]) String() string {
	return fmt.Sprintf("[%s,%s]x[%s,%s]", a.MinX, a.MaxX, a.MinY, a.MaxY)
}
