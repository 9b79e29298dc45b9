// Package options provides the functional-options pattern used throughout
// the kernel to configure engine queries without growing their signatures.
//
// # Functional Options
//
//   - WithRand(r *rand.Rand): seeds the Seidel trapezoidation's edge shuffle.
//   - WithUniqueOnly(bool): sets the UniqueOnly flag, which no engine in
//     this module reads.
//
// Options are applied with ApplyGeometryOptions, which takes a default
// GeometryOptions struct and folds each functional option over it in order.
package options
