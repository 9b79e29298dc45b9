package delaunay_test

import (
	"testing"

	"github.com/lycantropos/rene-sub000/delaunay"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int64) point.Point[rational.Rat] {
	return point.New(rational.FromInt(x), rational.FromInt(y))
}

func TestBuildTriangle(t *testing.T) {
	tri := delaunay.Build([]point.Point[rational.Rat]{pt(0, 0), pt(4, 0), pt(2, 4)})
	require.NotNil(t, tri.Mesh)
	assert.True(t, tri.Mesh.EdgeCount() > 0)
}

func TestBuildSquareGrid(t *testing.T) {
	points := []point.Point[rational.Rat]{
		pt(0, 0), pt(4, 0), pt(8, 0),
		pt(0, 4), pt(4, 4), pt(8, 4),
	}
	tri := delaunay.Build(points)
	assert.True(t, tri.Mesh.EdgeCount() > 0)
}

func TestTrianglesCoverASquare(t *testing.T) {
	points := []point.Point[rational.Rat]{pt(0, 0), pt(4, 0), pt(4, 4), pt(0, 4)}
	tri := delaunay.Build(points)
	triangles := tri.Triangles()
	assert.Len(t, triangles, 2)
}

func TestBoundRemovesMouthTriangles(t *testing.T) {
	// An L-shaped border with its (8, 8) corner cut away: the convex hull
	// of these six points also spans the notch triangle (8, 4), (4, 8),
	// (4, 4), so without Bound the mesh would still carry a triangle there.
	border := []point.Point[rational.Rat]{
		pt(0, 0), pt(8, 0), pt(8, 4), pt(4, 4), pt(4, 8), pt(0, 8),
	}
	tri := delaunay.Build(border)

	required := make([][2]point.Point[rational.Rat], len(border))
	for i := range border {
		required[i] = [2]point.Point[rational.Rat]{border[i], border[(i+1)%len(border)]}
	}
	tri.Constrain(required)

	beforeCount := len(tri.Triangles())
	tri.Bound(border)
	afterCount := len(tri.Triangles())

	assert.Less(t, afterCount, beforeCount)
}

func TestCutHolesRemovesHoleTriangles(t *testing.T) {
	border := []point.Point[rational.Rat]{pt(0, 0), pt(10, 0), pt(10, 10), pt(0, 10)}
	hole := []point.Point[rational.Rat]{pt(4, 4), pt(6, 4), pt(6, 6), pt(4, 6)}
	points := append(append([]point.Point[rational.Rat]{}, border...), hole...)
	tri := delaunay.Build(points)

	required := make([][2]point.Point[rational.Rat], 0, len(border)+len(hole))
	for i := range border {
		required = append(required, [2]point.Point[rational.Rat]{border[i], border[(i+1)%len(border)]})
	}
	for i := range hole {
		required = append(required, [2]point.Point[rational.Rat]{hole[i], hole[(i+1)%len(hole)]})
	}
	tri.Constrain(required)

	beforeCount := len(tri.Triangles())
	tri.CutHoles([][]point.Point[rational.Rat]{hole})
	afterCount := len(tri.Triangles())

	assert.Less(t, afterCount, beforeCount)
}
