package types

import "fmt"

// Orientation represents the relative orientation of three points in the
// plane: whether they are collinear, or turn clockwise or counterclockwise.
// It is the return type of the primitive orient predicate (component A).
type Orientation uint8

// Valid values for Orientation.
const (
	// Collinear indicates the three points lie on a single straight line.
	Collinear Orientation = iota
	// Clockwise indicates the points make a clockwise turn.
	Clockwise
	// Counterclockwise indicates the points make a counterclockwise turn.
	Counterclockwise
)

// String returns the name of the Orientation constant.
func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "Collinear"
	case Clockwise:
		return "Clockwise"
	case Counterclockwise:
		return "Counterclockwise"
	default:
		panic(fmt.Errorf("unsupported Orientation: %d", o))
	}
}

// PointLocation represents where a point lies with respect to a circle or a
// closed region: strictly inside, exactly on the boundary, or strictly
// outside. It is shared by the circumcircle predicate (component A) and the
// Seidel point-location query (component L).
type PointLocation uint8

// Valid values for PointLocation.
const (
	// Interior indicates the point lies strictly inside the region.
	Interior PointLocation = iota
	// Boundary indicates the point lies exactly on the region's boundary.
	Boundary
	// Exterior indicates the point lies strictly outside the region.
	Exterior
)

// String returns the name of the PointLocation constant.
func (l PointLocation) String() string {
	switch l {
	case Interior:
		return "Interior"
	case Boundary:
		return "Boundary"
	case Exterior:
		return "Exterior"
	default:
		panic(fmt.Errorf("unsupported PointLocation: %d", l))
	}
}
