// Package quadedge implements the Guibas-Stolfi edge-algebra data
// structure (component I, spec §4.7): the mesh representation the
// divide-and-conquer Delaunay builder (component J) and the constrained
// Delaunay/hole-carving pass (component K) both operate on.
//
// The free-list of recycled edge records is grounded in
// github.com/emirpasic/gods/lists/arraylist, generalizing the slice-backed
// scratch buffers the teacher keeps for its own polygon algorithms
// (polygon/simple) to an explicit, reusable free-list as the spec's
// "delete" operation calls for (§4.7: deleted edges must be recyclable
// without invalidating ids still in use elsewhere in the mesh).
package quadedge

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/lycantropos/rene-sub000/point"
	"github.com/lycantropos/rene-sub000/types"
)

// EdgeID names one of the four directed-edge records making up a quad-edge.
// Record r belongs to quad-edge r/4; r%4 selects which of the four
// rotations it is (0: the primal edge, 1: its dual, 2: its symmetric, 3:
// the dual's symmetric).
type EdgeID int

// NoEdge is the sentinel "no such edge" id.
const NoEdge EdgeID = -1

type edgeRecord struct {
	next   EdgeID
	origin int // index into Mesh.points; -1 for dual (face) edges
}

// Mesh is a quad-edge structure over a fixed set of points, built
// incrementally by MakeEdge/Splice/Connect/Delete.
type Mesh[S types.Scalar[S]] struct {
	points []point.Point[S]
	edges  []edgeRecord
	free   *arraylist.List
}

// NewMesh returns an empty Mesh whose vertices are drawn from points.
func NewMesh[S types.Scalar[S]](points []point.Point[S]) *Mesh[S] {
	return &Mesh[S]{points: points, free: arraylist.New()}
}

// Rot returns the dual of the edge e (rotating the quad-edge by one).
func Rot(e EdgeID) EdgeID { return EdgeID(int(e)/4*4 + (int(e)+1)%4) }

// Sym returns the reverse (symmetric) edge of e.
func Sym(e EdgeID) EdgeID { return EdgeID(int(e)/4*4 + (int(e)+2)%4) }

// InvRot returns the dual of e in the opposite rotational sense.
func InvRot(e EdgeID) EdgeID { return EdgeID(int(e)/4*4 + (int(e)+3)%4) }

// Onext returns the next edge counterclockwise around e's origin.
func (m *Mesh[S]) Onext(e EdgeID) EdgeID { return m.edges[e].next }

// Oprev returns the next edge clockwise around e's origin.
func (m *Mesh[S]) Oprev(e EdgeID) EdgeID { return Rot(m.Onext(Rot(e))) }

// Dnext returns the next edge counterclockwise around e's destination.
func (m *Mesh[S]) Dnext(e EdgeID) EdgeID { return Sym(m.Onext(Sym(e))) }

// Dprev returns the next edge clockwise around e's destination.
func (m *Mesh[S]) Dprev(e EdgeID) EdgeID { return InvRot(m.Onext(InvRot(e))) }

// Lnext returns the next edge counterclockwise around e's left face.
func (m *Mesh[S]) Lnext(e EdgeID) EdgeID { return Rot(m.Onext(InvRot(e))) }

// Lprev returns the next edge clockwise around e's left face.
func (m *Mesh[S]) Lprev(e EdgeID) EdgeID { return Sym(m.Onext(e)) }

// Rnext returns the next edge counterclockwise around e's right face.
func (m *Mesh[S]) Rnext(e EdgeID) EdgeID { return InvRot(m.Onext(Rot(e))) }

// Rprev returns the next edge clockwise around e's right face.
func (m *Mesh[S]) Rprev(e EdgeID) EdgeID { return m.Onext(Sym(e)) }

// PointAt returns the Point stored at vertex index i in the Mesh's point set.
func (m *Mesh[S]) PointAt(i int) point.Point[S] { return m.points[i] }

// Points returns the Mesh's full vertex set, in index order.
func (m *Mesh[S]) Points() []point.Point[S] { return m.points }

// EdgeCount returns the number of directed-edge records currently
// allocated (four per quad-edge, including recycled-but-not-reused slots).
func (m *Mesh[S]) EdgeCount() int { return len(m.edges) }

// Origin returns the index (into the Mesh's point set) of e's start vertex.
func (m *Mesh[S]) Origin(e EdgeID) int { return m.edges[e].origin }

// OriginPoint returns the Point at e's start vertex.
func (m *Mesh[S]) OriginPoint(e EdgeID) point.Point[S] { return m.points[m.Origin(e)] }

// Destination returns the index of e's end vertex: Origin(Sym(e)).
func (m *Mesh[S]) Destination(e EdgeID) int { return m.Origin(Sym(e)) }

// DestinationPoint returns the Point at e's end vertex.
func (m *Mesh[S]) DestinationPoint(e EdgeID) point.Point[S] { return m.points[m.Destination(e)] }

// MakeEdge allocates a fresh quad-edge from origin to destination,
// reusing a free-listed slot when one is available.
func (m *Mesh[S]) MakeEdge(origin, destination int) EdgeID {
	var base EdgeID
	if m.free.Size() > 0 {
		v, _ := m.free.Get(m.free.Size() - 1)
		m.free.Remove(m.free.Size() - 1)
		base = v.(EdgeID)
		m.edges[base] = edgeRecord{}
		m.edges[base+1] = edgeRecord{}
		m.edges[base+2] = edgeRecord{}
		m.edges[base+3] = edgeRecord{}
	} else {
		base = EdgeID(len(m.edges))
		m.edges = append(m.edges, edgeRecord{}, edgeRecord{}, edgeRecord{}, edgeRecord{})
	}
	e0, e1, e2, e3 := base, base+1, base+2, base+3
	m.edges[e0].next = e0
	m.edges[e1].next = e3
	m.edges[e2].next = e2
	m.edges[e3].next = e1
	m.edges[e0].origin = origin
	m.edges[e2].origin = destination
	m.edges[e1].origin = -1
	m.edges[e3].origin = -1
	return e0
}

// Splice combines or splits the edge rings containing a and b (the
// fundamental topological operator of the quad-edge structure).
func (m *Mesh[S]) Splice(a, b EdgeID) {
	alpha := Rot(m.Onext(a))
	beta := Rot(m.Onext(b))

	aNext, bNext := m.Onext(a), m.Onext(b)
	alphaNext, betaNext := m.Onext(alpha), m.Onext(beta)

	m.edges[a].next = bNext
	m.edges[b].next = aNext
	m.edges[alpha].next = betaNext
	m.edges[beta].next = alphaNext
}

// Connect creates a new edge from a's destination to b's origin, linking
// it into both edges' rings so that the new edge shares a's left face
// with b's left face.
func (m *Mesh[S]) Connect(a, b EdgeID) EdgeID {
	e := m.MakeEdge(m.Destination(a), m.Origin(b))
	m.Splice(e, m.Lnext(a))
	m.Splice(Sym(e), b)
	return e
}

// Delete removes edge e from the mesh and returns its quad-edge's four
// records to the free-list.
func (m *Mesh[S]) Delete(e EdgeID) {
	m.Splice(e, m.Oprev(e))
	m.Splice(Sym(e), m.Oprev(Sym(e)))
	base := EdgeID(int(e) / 4 * 4)
	m.free.Add(base)
}
