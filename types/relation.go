package types

import "fmt"

// Relation is the eleven-valued topological classification the relation
// engines (component H) produce for a pair of shapes, a DE-9IM-like
// taxonomy. See §4.6 of the kernel design for the full case analysis and
// the complement law each pair below satisfies.
type Relation uint8

// Valid values for Relation.
const (
	// Disjoint: the shapes share no point. Self-complementary.
	Disjoint Relation = iota
	// Touch: the shapes meet only at boundary points, with no shared
	// interior. Self-complementary.
	Touch
	// Cross: the shapes' interiors meet along a lower-dimensional set
	// (e.g. two linear shapes crossing at a point). Self-complementary.
	Cross
	// Overlap: the shapes' interiors meet, but neither contains the
	// other. Self-complementary.
	Overlap
	// Equal: the shapes are identical as point sets. Self-complementary.
	Equal
	// Component: the first shape is a component (e.g. a segment) of the
	// second shape's boundary/interior-spanning structure; complements
	// [Composite].
	Component
	// Composite: the second shape is a component of the first; complements
	// [Component].
	Composite
	// Cover: the first shape fully contains the second, and they may
	// share boundary points; complements [Within].
	Cover
	// Within: the first shape is fully contained by the second, and they
	// may share boundary points; complements [Cover].
	Within
	// Enclosed: the first shape is fully contained by the second, with no
	// shared boundary points; complements [Encloses].
	Enclosed
	// Encloses: the first shape fully contains the second, with no shared
	// boundary points; complements [Enclosed].
	Encloses
)

// String returns the name of the Relation constant.
func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "Disjoint"
	case Touch:
		return "Touch"
	case Cross:
		return "Cross"
	case Overlap:
		return "Overlap"
	case Equal:
		return "Equal"
	case Component:
		return "Component"
	case Composite:
		return "Composite"
	case Cover:
		return "Cover"
	case Within:
		return "Within"
	case Enclosed:
		return "Enclosed"
	case Encloses:
		return "Encloses"
	default:
		panic(fmt.Errorf("unsupported Relation: %d", r))
	}
}

// Complement returns the relation that holds between B and A, given that r
// holds between A and B. Five of the eleven values are self-complementary;
// the other three pairs swap (P5 in the kernel's testable properties).
func (r Relation) Complement() Relation {
	switch r {
	case Component:
		return Composite
	case Composite:
		return Component
	case Cover:
		return Within
	case Within:
		return Cover
	case Enclosed:
		return Encloses
	case Encloses:
		return Enclosed
	default:
		return r
	}
}
