package quadedge_test

import (
	"testing"

	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/quadedge"
	"github.com/lycantropos/rene-sub000/rational"
	"github.com/stretchr/testify/assert"
)

func pt(x, y int64) point.Point[rational.Rat] {
	return point.New(rational.FromInt(x), rational.FromInt(y))
}

func TestMakeEdgeOriginDestination(t *testing.T) {
	m := quadedge.NewMesh([]point.Point[rational.Rat]{pt(0, 0), pt(1, 0)})
	e := m.MakeEdge(0, 1)
	assert.Equal(t, 0, m.Origin(e))
	assert.Equal(t, 1, m.Destination(e))
	assert.True(t, m.OriginPoint(e).Eq(pt(0, 0)))
	assert.True(t, m.DestinationPoint(e).Eq(pt(1, 0)))
}

func TestSymInvolution(t *testing.T) {
	m := quadedge.NewMesh([]point.Point[rational.Rat]{pt(0, 0), pt(1, 0)})
	e := m.MakeEdge(0, 1)
	assert.Equal(t, e, quadedge.Sym(quadedge.Sym(e)))
	assert.Equal(t, e, quadedge.Rot(quadedge.Rot(quadedge.Rot(quadedge.Rot(e)))))
}

func TestConnectAndDelete(t *testing.T) {
	m := quadedge.NewMesh([]point.Point[rational.Rat]{pt(0, 0), pt(1, 0), pt(1, 1)})
	a := m.MakeEdge(0, 1)
	b := m.MakeEdge(1, 2)
	m.Splice(quadedge.Sym(a), b)
	c := m.Connect(b, a)
	assert.Equal(t, 2, m.Origin(c))
	assert.Equal(t, 0, m.Destination(c))
	m.Delete(c)
}
