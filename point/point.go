// Package point defines the foundational geometric primitive in the kernel:
// an exact-coordinate Point. Every other geometric type (segment, contour,
// polygon, multipolygon) is built from it, the way the teacher library
// builds LineSegment, Rectangle and PolyTree on top of its own Point.
//
// Unlike the teacher's Point, which fixes its coordinates to float64 and
// leans on a package-global epsilon for comparisons, Point here is generic
// over any types.Scalar[S] and compares exactly: there is no tolerance
// parameter anywhere in this package, matching the kernel's exact-rational
// contract (spec §3).
package point

import (
	"fmt"

	"github.com/lycantropos/rene-sub000/types"
)

// Point is a pair (x, y) of an exact scalar type S. The zero value has
// whatever S's zero value is for x and y.
type Point[S types.Scalar[S]] struct {
	x, y S
}

// New creates a Point with the given coordinates.
func New[S types.Scalar[S]](x, y S) Point[S] {
	return Point[S]{x: x, y: y}
}

// X returns the point's x-coordinate.
func (p Point[S]) X() S { return p.x }

// Y returns the point's y-coordinate.
func (p Point[S]) Y() S { return p.y }

// Eq reports whether p and q have identical coordinates.
func (p Point[S]) Eq(q Point[S]) bool {
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// Less implements the lexicographic order required everywhere in the
// kernel: x first, then y (spec §3 "Point").
func (p Point[S]) Less(q Point[S]) bool {
	if c := p.x.Cmp(q.x); c != 0 {
		return c < 0
	}
	return p.y.Cmp(q.y) < 0
}

// Cmp returns -1, 0 or 1 following the same lexicographic order as Less.
func (p Point[S]) Cmp(q Point[S]) int {
	if c := p.x.Cmp(q.x); c != 0 {
		return c
	}
	return p.y.Cmp(q.y)
}

// Sub returns p - q, treating both as position vectors.
func (p Point[S]) Sub(q Point[S]) Point[S] {
	return Point[S]{x: p.x.Sub(q.x), y: p.y.Sub(q.y)}
}

// Add returns p + q, treating both as position vectors.
func (p Point[S]) Add(q Point[S]) Point[S] {
	return Point[S]{x: p.x.Add(q.x), y: p.y.Add(q.y)}
}

// CrossProduct returns the z-component of the 3D cross product of p and q
// treated as vectors from the origin: p.x*q.y - p.y*q.x.
func (p Point[S]) CrossProduct(q Point[S]) S {
	return p.x.Mul(q.y).Sub(p.y.Mul(q.x))
}

// DotProduct returns p.x*q.x + p.y*q.y.
func (p Point[S]) DotProduct(q Point[S]) S {
	return p.x.Mul(q.x).Add(p.y.Mul(q.y))
}

// SquaredDistanceTo returns the squared Euclidean distance between p and q,
// avoiding the square root so the result stays exact (component A).
func (p Point[S]) SquaredDistanceTo(q Point[S]) S {
	d := p.Sub(q)
	return d.x.Mul(d.x).Add(d.y.Mul(d.y))
}

// String renders the point as "(x, y)".
func (p Point[S]) String() string {
	return fmt.Sprintf("(%s, %s)", p.x.String(), p.y.String())
}

// Key returns a string uniquely identifying p's coordinates, for use as a
// map key or set element. Point itself cannot be used as a map key because
// an arbitrary Scalar implementation (e.g. rational.Rat, backed by
// math/big.Rat) is not guaranteed to be a comparable Go type.
func (p Point[S]) Key() string {
	return p.x.String() + "," + p.y.String()
}
