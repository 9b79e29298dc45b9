package numeric

import "github.com/lycantropos/rene-sub000/types"

// Abs computes the absolute value of a signed native number.
//
// It works on native numeric types only; no other package of the kernel
// calls it, and package rational has no absolute-value method of its own.
func Abs[T types.SignedNumber](n T) T {
	if n < 0 {
		return -n
	}
	return n
}
