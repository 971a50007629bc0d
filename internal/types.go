package internal

// Points are plain values. Vertices in the triangulation are distinguished by
// id rather than coordinates, so two coincident seeds are still two distinct
// vertices.
type Point struct {
	X float64
	Y float64
}

type Segment struct {
	Start Point
	End   Point
}

type (
	VertexID   int
	EdgeID     int
	TriangleID int
)

// Sentinel for an absent neighbour. A triangle edge with no neighbour lies on
// the outer boundary of the triangulation.
const NoTriangle TriangleID = -1

type Vertex struct {
	ID VertexID
	Point
}

// Edges are unordered. The order of V1 and V2 reflects creation only.
type Edge struct {
	ID     EdgeID
	V1, V2 VertexID
}

// A circle, as cached on a triangle.
type Circle struct {
	Center Point
	Radius float64
}

// Triangle in the mesh arena. Edge i is associated with neighbour i; there is
// no assumption about which vertex edge i is opposite to. Vertices, Edges and
// Circumcircle never change after construction. Only Neighbours mutate.
type Triangle struct {
	ID           TriangleID
	Vertices     [3]VertexID
	Edges        [3]EdgeID
	Neighbours   [3]TriangleID
	Circumcircle Circle
}

// DelaunayTriangle is a read-only snapshot of a live triangle, detached from
// the arena.
type DelaunayTriangle struct {
	Vertices     [3]Point
	Circumcenter Point
	Radius       float64
}

// A Voronoi edge. Clipped edges come from boundary edges of the triangulation
// and end on the bounding rectangle.
type VoronoiEdge struct {
	Start   Point
	End     Point
	Clipped bool
}

type Diagram struct {
	Width, Height float64
	Seeds         []Point
	Triangles     []DelaunayTriangle
	Edges         []VoronoiEdge
}

type PointSet map[Point]struct{}
