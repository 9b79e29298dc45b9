// Package numeric provides small helper functions over native numbers
// (Abs, CeilLog2); no other package of the kernel imports it.
//
// Unlike the teacher's numeric package, this one carries no epsilon or
// floating-point tolerance machinery: the kernel assumes exact rational
// arithmetic end to end (spec Non-goals), so there is nothing here for
// precision adjustment to do.
package numeric
