// Package rational provides the concrete Scalar collaborator the kernel
// needs for exact rational arithmetic (spec §3 "Scalar", §6 "External
// Interfaces").
//
// The kernel's design explicitly treats the scalar type as an external
// collaborator: the engines in package predicate, event, bentleyottmann,
// overlay, relate, delaunay and trapezoid are generic over
// types.Scalar[S], never over a concrete number type. This package supplies
// the one concrete implementation the rest of the module (and its tests)
// use, built on math/big.Rat — the standard library's arbitrary-precision
// rational type, and the only exact-rational building block available
// anywhere in the example corpus or its dependency closure (see DESIGN.md).
package rational

import (
	"math/big"
)

// Rat is an exact rational number implementing types.Scalar[Rat].
//
// The zero value is 0/1 and is safe to use, matching math/big.Rat's own
// zero-value contract.
type Rat struct {
	v big.Rat
}

// New returns the exact rational numerator/denominator.
func New(numerator, denominator int64) Rat {
	var r Rat
	r.v.SetFrac64(numerator, denominator)
	return r
}

// FromInt returns the exact rational equal to n.
func FromInt(n int64) Rat {
	var r Rat
	r.v.SetInt64(n)
	return r
}

// FromBigRat wraps an existing *big.Rat. The argument is copied.
func FromBigRat(v *big.Rat) Rat {
	var r Rat
	r.v.Set(v)
	return r
}

// BigRat returns a copy of the underlying *big.Rat, for callers that need
// to drop down to math/big (e.g. for decimal formatting).
func (r Rat) BigRat() *big.Rat {
	var out big.Rat
	out.Set(&r.v)
	return &out
}

// Add returns r + other.
func (r Rat) Add(other Rat) Rat {
	var out Rat
	out.v.Add(&r.v, &other.v)
	return out
}

// Sub returns r - other.
func (r Rat) Sub(other Rat) Rat {
	var out Rat
	out.v.Sub(&r.v, &other.v)
	return out
}

// Mul returns r * other.
func (r Rat) Mul(other Rat) Rat {
	var out Rat
	out.v.Mul(&r.v, &other.v)
	return out
}

// Div returns r / other. Panics if other is zero, matching big.Rat.Quo.
func (r Rat) Div(other Rat) Rat {
	var out Rat
	out.v.Quo(&r.v, &other.v)
	return out
}

// DivInt returns r / n, exact. Panics if n is zero, matching big.Rat.Quo.
func (r Rat) DivInt(n int64) Rat {
	var d big.Rat
	d.SetInt64(n)
	var out Rat
	out.v.Quo(&r.v, &d)
	return out
}

// Neg returns -r.
func (r Rat) Neg() Rat {
	var out Rat
	out.v.Neg(&r.v)
	return out
}

// Sign returns -1, 0 or 1 according to the sign of r.
func (r Rat) Sign() int {
	return r.v.Sign()
}

// Cmp returns -1, 0 or 1 as r is less than, equal to, or greater than other.
func (r Rat) Cmp(other Rat) int {
	return r.v.Cmp(&other.v)
}

// String renders r in "a/b" form, or "a" when the denominator is 1.
func (r Rat) String() string {
	return r.v.RatString()
}
