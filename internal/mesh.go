package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Mesh is the arena that owns every vertex, edge and triangle created during a
// single diagram computation. Ids are indexes into the arena slices, so they
// are handed out in increasing order and never reused. Deleted triangles stay
// in the arena (their ids must stay unique) but leave the live list.
type Mesh struct {
	vertices  []Vertex
	edges     []Edge
	triangles []Triangle

	// Live triangles in creation order, minus anything deleted. The position of
	// a triangle in this list is its triangulation index.
	live  []TriangleID
	alive []bool
}

func NewMesh() *Mesh {
	return &Mesh{}
}

func (m *Mesh) NewVertex(p Point) VertexID {
	id := VertexID(len(m.vertices))
	m.vertices = append(m.vertices, Vertex{ID: id, Point: p})
	return id
}

func (m *Mesh) NewEdge(v1, v2 VertexID) EdgeID {
	m.checkVertex(v1)
	m.checkVertex(v2)
	id := EdgeID(len(m.edges))
	m.edges = append(m.edges, Edge{ID: id, V1: v1, V2: v2})
	return id
}

// Create a triangle and add it to the end of the live list. The circumcircle
// is computed here, once.
func (m *Mesh) NewTriangle(vertices [3]VertexID, edges [3]EdgeID, neighbours [3]TriangleID) TriangleID {
	for _, e := range edges {
		m.checkEdge(e)
	}
	id := TriangleID(len(m.triangles))
	a, b, c := m.Point(vertices[0]), m.Point(vertices[1]), m.Point(vertices[2])
	m.triangles = append(m.triangles, Triangle{
		ID:           id,
		Vertices:     vertices,
		Edges:        edges,
		Neighbours:   neighbours,
		Circumcircle: NewCircumcircle(a, b, c),
	})
	m.live = append(m.live, id)
	m.alive = append(m.alive, true)
	return id
}

// Returns a copy. Holding a pointer into the arena across NewTriangle would be
// unsafe, since the backing slice can move.
func (m *Mesh) Triangle(id TriangleID) Triangle {
	m.checkTriangle(id)
	return m.triangles[id]
}

func (m *Mesh) Vertex(id VertexID) Vertex {
	m.checkVertex(id)
	return m.vertices[id]
}

func (m *Mesh) Point(id VertexID) Point {
	return m.Vertex(id).Point
}

func (m *Mesh) Edge(id EdgeID) Edge {
	m.checkEdge(id)
	return m.edges[id]
}

func (m *Mesh) Segment(id EdgeID) Segment {
	e := m.Edge(id)
	return Segment{m.Point(e.V1), m.Point(e.V2)}
}

// Two edges are equal if they join the same two vertices, in either order.
func (m *Mesh) EdgesEqual(a, b EdgeID) bool {
	ea, eb := m.Edge(a), m.Edge(b)
	return (ea.V1 == eb.V1 && ea.V2 == eb.V2) || (ea.V1 == eb.V2 && ea.V2 == eb.V1)
}

func (m *Mesh) Neighbour(t TriangleID, e EdgeID) TriangleID {
	m.checkTriangle(t)
	return m.triangles[t].Neighbours[m.edgeSlot(t, e)]
}

func (m *Mesh) SetNeighbour(t TriangleID, e EdgeID, other TriangleID) {
	m.checkTriangle(t)
	if other != NoTriangle {
		m.checkTriangle(other)
	}
	m.triangles[t].Neighbours[m.edgeSlot(t, e)] = other
}

// Live triangles in triangulation order. The returned slice must not be
// modified.
func (m *Mesh) Live() []TriangleID {
	return m.live
}

func (m *Mesh) IsLive(t TriangleID) bool {
	return t >= 0 && int(t) < len(m.alive) && m.alive[t]
}

func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

func (m *Mesh) EdgeCount() int {
	return len(m.edges)
}

func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Remove a set of triangles from the live list, preserving the order of the
// survivors. Any live triangle still linked to a deleted one has that link
// cleared, so the live set never points outside itself.
func (m *Mesh) DeleteTriangles(triangles map[TriangleID]struct{}) {
	if len(triangles) == 0 {
		return
	}
	for t := range triangles {
		if !m.IsLive(t) {
			fatalf("deleting triangle %d which is not live", t)
		}
		m.alive[t] = false
	}

	survivors := m.live[:0]
	for _, t := range m.live {
		if m.alive[t] {
			survivors = append(survivors, t)
		}
	}
	m.live = survivors

	for t := range triangles {
		tri := m.triangles[t]
		for i, n := range tri.Neighbours {
			if n == NoTriangle || !m.alive[n] {
				continue
			}
			if slot, ok := m.findEdgeSlot(n, tri.Edges[i]); ok && m.triangles[n].Neighbours[slot] == t {
				m.triangles[n].Neighbours[slot] = NoTriangle
			}
		}
	}
}

// The triangle vertex that is not on the given edge.
func (m *Mesh) OppositeVertex(t TriangleID, e EdgeID) VertexID {
	tri := m.Triangle(t)
	edge := m.Edge(e)
	for _, v := range tri.Vertices {
		if v != edge.V1 && v != edge.V2 {
			return v
		}
	}
	fatalf("triangle %d has no vertex opposite edge %d", t, e)
	return 0 // unreachable
}

// Snapshot of a triangle's geometry.
func (m *Mesh) DelaunayTriangle(t TriangleID) DelaunayTriangle {
	tri := m.Triangle(t)
	return DelaunayTriangle{
		Vertices: [3]Point{
			m.Point(tri.Vertices[0]),
			m.Point(tri.Vertices[1]),
			m.Point(tri.Vertices[2]),
		},
		Circumcenter: tri.Circumcircle.Center,
		Radius:       tri.Circumcircle.Radius,
	}
}

// Check that adjacency between live triangles is symmetric, that every link
// points at a live triangle, and that linked triangles really share the edge.
// Returns the first violation found.
func (m *Mesh) CheckAdjacency() error {
	for _, t := range m.live {
		tri := m.triangles[t]
		for i, n := range tri.Neighbours {
			if n == NoTriangle {
				continue
			}
			if !m.IsLive(n) {
				return errors.Wrapf(ErrInvariant, "triangle %d links to deleted triangle %d", t, n)
			}
			slot, ok := m.findEdgeSlot(n, tri.Edges[i])
			if !ok {
				return errors.Wrapf(ErrInvariant, "triangle %d links to %d across edge %d, which %d does not have", t, n, tri.Edges[i], n)
			}
			if back := m.triangles[n].Neighbours[slot]; back != t {
				return errors.Wrapf(ErrInvariant, "asymmetric adjacency: %d -> %d across edge %d, but %d -> %d", t, n, tri.Edges[i], n, back)
			}
		}
	}
	return nil
}

func (m *Mesh) String() string {
	return fmt.Sprintf("Mesh{vertices: %d, edges: %d, triangles: %d, live: %d}",
		len(m.vertices), len(m.edges), len(m.triangles), len(m.live))
}

func (m *Mesh) edgeSlot(t TriangleID, e EdgeID) int {
	slot, ok := m.findEdgeSlot(t, e)
	if !ok {
		fatalf("edge %d is not an edge of triangle %d", e, t)
	}
	return slot
}

func (m *Mesh) findEdgeSlot(t TriangleID, e EdgeID) (int, bool) {
	for i, edge := range m.triangles[t].Edges {
		if edge == e {
			return i, true
		}
	}
	return 0, false
}

func (m *Mesh) checkVertex(id VertexID) {
	if id < 0 || int(id) >= len(m.vertices) {
		fatalf("unknown vertex %d", id)
	}
}

func (m *Mesh) checkEdge(id EdgeID) {
	if id < 0 || int(id) >= len(m.edges) {
		fatalf("unknown edge %d", id)
	}
}

func (m *Mesh) checkTriangle(id TriangleID) {
	if id < 0 || int(id) >= len(m.triangles) {
		fatalf("unknown triangle %d", id)
	}
}
