package rene_test

import (
	"testing"

	"github.com/lycantropos/rene-sub000/rene"
	"github.com/lycantropos/rene-sub000/shape"
	"github.com/lycantropos/rene-sub000/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 int64) rene.Contour {
	return shape.NewContour([]rene.Point{
		rene.NewPoint(x0, y0), rene.NewPoint(x1, y0), rene.NewPoint(x1, y1), rene.NewPoint(x0, y1),
	})
}

func TestUnionProducesEdges(t *testing.T) {
	a := shape.NewPolygon(square(0, 0, 4, 4), nil)
	b := shape.NewPolygon(square(2, 2, 6, 6), nil)
	out := rene.Union(a, b)
	assert.NotEmpty(t, out.Polygons())
}

// TestIntersectionRing reproduces spec.md's §8 scenario 2.
func TestIntersectionRing(t *testing.T) {
	a := shape.NewPolygon(square(0, 0, 4, 4), nil)
	b := shape.NewPolygon(square(2, 2, 6, 6), nil)
	out := rene.Intersection(a, b)
	require.Len(t, out.Polygons(), 1)
	assert.Empty(t, out.Polygons()[0].Holes())
}

// TestDifferenceLeavesAHole reproduces spec.md's §8 scenario 3: a large
// square minus a smaller one fully inside it leaves a single polygon
// whose border is the large square and whose hole is the small one.
func TestDifferenceLeavesAHole(t *testing.T) {
	a := shape.NewPolygon(square(0, 0, 10, 10), nil)
	b := shape.NewPolygon(square(2, 2, 4, 4), nil)
	out := rene.Difference(a, b)
	require.Len(t, out.Polygons(), 1)
	assert.Len(t, out.Polygons()[0].Holes(), 1)
}

func TestIsPolygonValid(t *testing.T) {
	border := square(0, 0, 10, 10)
	hole := square(2, 2, 4, 4).Reversed()
	p := shape.NewPolygon(border, []rene.Contour{hole})
	assert.True(t, rene.IsPolygonValid(p))
}

func TestRelateContours(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(2, 2, 4, 4)
	assert.Equal(t, types.Cover, rene.RelateContours(a, b))
}

func TestIsContourValid(t *testing.T) {
	vertices := []rene.Point{
		rene.NewPoint(0, 0), rene.NewPoint(4, 0), rene.NewPoint(4, 4), rene.NewPoint(0, 4),
	}
	assert.True(t, rene.IsContourValid(vertices))
}

func TestTrapezoidateLocate(t *testing.T) {
	poly := shape.NewPolygon(square(0, 0, 10, 10), nil)
	tr := rene.Trapezoidate(poly)
	loc := tr.Locate(rene.NewPoint(5, 5))
	require.NotEqual(t, types.Exterior, loc)
}

// TestTriangulate reproduces spec.md's §8 scenario 5: triangulating a
// square with a square hole produces a mesh whose boundary points are
// the square's corners and whose faces avoid the hole.
func TestTriangulate(t *testing.T) {
	border := square(0, 0, 10, 10)
	hole := square(4, 4, 6, 6).Reversed()
	poly := shape.NewPolygon(border, []rene.Contour{hole})

	tr := rene.Triangulate(poly)

	assert.ElementsMatch(t, border.Vertices(), tr.BoundaryPoints())
	assert.NotEmpty(t, tr.Triangles())
}
