// Package types defines the core type constraints and small enumerations shared
// across the geometry kernel: the exact-scalar constraint every component is
// generic over, and the value types returned by the primitive predicates
// (orientation, circle location) and by the relation engines.
package types

// Scalar is the exact, ordered field every component in the kernel computes
// over. It is intentionally method-based rather than a native-type
// constraint (contrast [SignedNumber]): the kernel assumes exact rational
// arithmetic, and Go has no built-in type for that, so callers plug in a
// concrete implementation (see package rational) that satisfies this
// interface.
//
// S is the concrete scalar type itself (F-bounded), so that Add, Sub, etc.
// return the same concrete type rather than the interface.
type Scalar[S any] interface {
	// Add returns the sum of the receiver and other.
	Add(other S) S
	// Sub returns the receiver minus other.
	Sub(other S) S
	// Mul returns the product of the receiver and other.
	Mul(other S) S
	// Div returns the receiver divided by other. Behaviour is undefined
	// for division by zero; callers never divide by a value proven zero.
	Div(other S) S
	// DivInt returns the receiver divided by the integer literal n,
	// exact under a rational implementation. Exists because the
	// interface otherwise offers no way to build a literal integer
	// constant of S (needed for averaging, e.g. triangle centroids and
	// linear-geometry midpoints) without round-tripping through a
	// concrete Scalar constructor the generic code doesn't have.
	DivInt(n int64) S
	// Neg returns the additive inverse of the receiver.
	Neg() S
	// Sign returns -1, 0 or 1 according to the sign of the receiver.
	Sign() int
	// Cmp returns -1, 0 or 1 as the receiver is less than, equal to, or
	// greater than other.
	Cmp(other S) int
	// String returns a human-readable representation, used by the String
	// methods of Point, Segment and the shape collaborators.
	String() string
}

// SignedNumber is kept from the teacher's type constraint for working
// directly against native numeric types rather than the exact Scalar
// collaborator; its only user is numeric.Abs.
type SignedNumber interface {
	int | int32 | int64 | float32 | float64
}
