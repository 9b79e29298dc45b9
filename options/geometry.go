package options

import "math/rand/v2"

// GeometryOptionsFunc is a functional option type used to configure optional
// parameters in geometric operations, following the same pattern the
// teacher library uses for its Epsilon option.
type GeometryOptionsFunc func(*GeometryOptions)

// GeometryOptions carries configuration that affects how an engine query
// runs without affecting the exactness of its result.
type GeometryOptions struct {
	// Rand seeds the edge-insertion shuffle of the Seidel trapezoidation
	// (component L, §4.10 step 2). When nil, trapezoid.Build inserts the
	// edges in input order. Exposed as an option rather than a hidden global so
	// that repeated calls with the same Rand produce the same tree shape,
	// which test suites rely on for deterministic expected trees.
	Rand *rand.Rand

	// UniqueOnly is a flag for deduplicated Bentley-Ottmann output. No
	// engine in this module reads it: the Bentley-Ottmann engine
	// (component F) takes no options, so setting it changes no result.
	UniqueOnly bool
}

// ApplyGeometryOptions applies a set of functional options to a given
// defaults struct and returns the result.
func ApplyGeometryOptions(defaults GeometryOptions, opts ...GeometryOptionsFunc) GeometryOptions {
	for _, opt := range opts {
		opt(&defaults)
	}
	return defaults
}

// WithRand sets the random source used to shuffle edges before Seidel
// trapezoidation.
func WithRand(r *rand.Rand) GeometryOptionsFunc {
	return func(o *GeometryOptions) {
		o.Rand = r
	}
}

// WithUniqueOnly sets the UniqueOnly flag, which no engine in this module
// reads.
func WithUniqueOnly(unique bool) GeometryOptionsFunc {
	return func(o *GeometryOptions) {
		o.UniqueOnly = unique
	}
}
