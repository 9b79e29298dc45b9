// Package predicate implements the kernel's primitive geometric predicates
// (component A, spec §4.1): exact orientation, the crossing-segments
// intersection point, point-in-circle location, point-in-segment
// membership, and a couple of small list helpers every sweep engine needs.
//
// Every predicate here is exact and infallible: given valid exact-rational
// input there is no tolerance parameter and no failure mode, which is the
// entire point of building the kernel on a types.Scalar rather than
// float64 (contrast the teacher's point.Orientation, which leans on an
// adaptive epsilon).
package predicate

import (
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/types"
)

// Orient returns the orientation of the triple (a, b, c): the sign of the
// cross product (b-a) x (c-a).
func Orient[S types.Scalar[S]](a, b, c point.Point[S]) types.Orientation {
	cross := b.Sub(a).CrossProduct(c.Sub(a))
	switch cross.Sign() {
	case 0:
		return types.Collinear
	case 1:
		return types.Counterclockwise
	default:
		return types.Clockwise
	}
}

// IsPointInSegment reports whether p lies on the closed segment [a, b]:
// collinear with a and b, and within their bounding box.
func IsPointInSegment[S types.Scalar[S]](p, a, b point.Point[S]) bool {
	if Orient(a, b, p) != types.Collinear {
		return false
	}
	return between(a.X(), p.X(), b.X()) && between(a.Y(), p.Y(), b.Y())
}

func between[S types.Scalar[S]](a, x, b S) bool {
	if a.Cmp(b) > 0 {
		a, b = b, a
	}
	return a.Cmp(x) <= 0 && x.Cmp(b) <= 0
}

// IntersectCrossingSegments returns the unique intersection point of two
// segments (p, q) and (r, s) that the caller has already established
// properly cross. It computes the affine scale factor
//
//	t = ((p - r) x (r - s)) / ((p - q) x (r - s))
//
// and returns p + t*(q - p), per spec §4.1.
//
// Callers must guarantee the segments actually cross; this function does
// not re-validate that and will divide by zero (panicking, via the Scalar
// implementation) if (p-q) and (r-s) are parallel.
func IntersectCrossingSegments[S types.Scalar[S]](p, q, r, s point.Point[S]) point.Point[S] {
	numerator := p.Sub(r).CrossProduct(r.Sub(s))
	denominator := p.Sub(q).CrossProduct(r.Sub(s))
	t := numerator.Div(denominator)
	direction := q.Sub(p)
	return point.New(p.X().Add(direction.X().Mul(t)), p.Y().Add(direction.Y().Mul(t)))
}

// LocatePointInCircumcircle returns whether p lies inside, on, or outside
// the circle through a, b and c, via the sign of the standard 4x4
// determinant (spec §4.1). a, b, c are assumed listed counterclockwise;
// callers that cannot guarantee that should orient the triple first.
func LocatePointInCircumcircle[S types.Scalar[S]](p, a, b, c point.Point[S]) types.PointLocation {
	ax, ay := a.X().Sub(p.X()), a.Y().Sub(p.Y())
	bx, by := b.X().Sub(p.X()), b.Y().Sub(p.Y())
	cx, cy := c.X().Sub(p.X()), c.Y().Sub(p.Y())

	aSq := ax.Mul(ax).Add(ay.Mul(ay))
	bSq := bx.Mul(bx).Add(by.Mul(by))
	cSq := cx.Mul(cx).Add(cy.Mul(cy))

	// Determinant of the translated rows (x, y, x²+y²) for a, b, c,
	// expanded along its first row: the standard 3x3 cofactor reduction of
	// the 4x4 in-circle determinant.
	det := ax.Mul(by.Mul(cSq).Sub(bSq.Mul(cy))).
		Sub(ay.Mul(bx.Mul(cSq).Sub(bSq.Mul(cx)))).
		Add(aSq.Mul(bx.Mul(cy).Sub(by.Mul(cx))))

	switch det.Sign() {
	case 0:
		return types.Boundary
	case 1:
		return types.Interior
	default:
		return types.Exterior
	}
}

// ToSortedPair returns (a, b) reordered so the lexicographically smaller
// point comes first.
func ToSortedPair[S types.Scalar[S]](a, b point.Point[S]) (point.Point[S], point.Point[S]) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}

// ShrinkCollinearVertices removes vertices from a closed polygonal chain
// that are collinear with both of their neighbours, per spec §3 "Contour"
// ("no three consecutive collinear") and §4.5 step 5 ("de-duplicated of
// collinearity"). The input is treated as cyclic.
func ShrinkCollinearVertices[S types.Scalar[S]](vertices []point.Point[S]) []point.Point[S] {
	n := len(vertices)
	if n < 3 {
		return vertices
	}
	keep := make([]bool, n)
	for i := range vertices {
		prev := vertices[(i-1+n)%n]
		cur := vertices[i]
		next := vertices[(i+1)%n]
		keep[i] = Orient(prev, cur, next) != types.Collinear
	}
	out := make([]point.Point[S], 0, n)
	for i, k := range keep {
		if k {
			out = append(out, vertices[i])
		}
	}
	if len(out) == 0 {
		// every vertex was collinear with its neighbours (degenerate
		// input); fall back to returning the original chain rather than
		// an empty contour.
		return vertices
	}
	return out
}

// PointVertexLineDividesAngle reports whether the directed line through
// vertex and through reports the "touch that is really a cross" case used
// by the segment-vs-contour relation (§4.6): it tests whether other lies
// strictly inside the angle formed at vertex by prev and next.
func PointVertexLineDividesAngle[S types.Scalar[S]](vertex, prev, next, other point.Point[S]) bool {
	o1 := Orient(vertex, prev, other)
	o2 := Orient(vertex, next, other)
	// other "divides" the angle (prev, vertex, next) when it falls on
	// opposite turns relative to the two rays, i.e. strictly between them.
	return o1 != o2 && o1 != types.Collinear && o2 != types.Collinear
}
