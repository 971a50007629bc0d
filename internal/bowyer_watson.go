package internal

import (
	"math"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// Incremental Delaunay triangulation (Bowyer-Watson). Seeds are inserted one at
// a time into a triangulation that starts as a single super-triangle enclosing
// the whole bounding box. Each insertion removes the "cavity" (every triangle
// whose circumcircle contains the seed) and fills it with a fan of new
// triangles around the seed. Once the last real seed is in, everything that
// touches a super-triangle vertex is removed.
//
// There is no point location structure. Every insertion scans every live
// triangle, which is O(n) per seed and O(n²) overall.

type TriangulationState int

const (
	Start TriangulationState = iota
	CavityFound
	SeedInserted
	CleanedUp
)

func (s TriangulationState) String() string {
	switch s {
	case Start:
		return "START"
	case CavityFound:
		return "CAVITY_FOUND"
	case SeedInserted:
		return "SEED_INSERTED"
	case CleanedUp:
		return "CLEANED_UP"
	}
	return "UNKNOWN"
}

type Triangulation struct {
	mesh   *Mesh
	bounds r2.Rect
	opts   options
	state  TriangulationState

	// Real seeds first, in insertion order. The three super-triangle vertices
	// are appended once the triangulation has been wrapped, and dropped again
	// by the perimeter cleanup.
	seeds     []VertexID
	next      int
	wrapped   bool
	auxiliary [3]VertexID

	// Transient data for the most recent insertion. This is kept around only so
	// that a caller can look at the step in progress.
	currentSeed  VertexID
	seedPicked   bool
	cavity       []TriangleID
	inCavity     map[TriangleID]struct{}
	cavityEdges  []EdgeID
	newTriangles []TriangleID

	emptyCavities int
}

// Create a triangulation for the given seeds inside [0,width]x[0,height].
// Seeds become vertices immediately, in order, so their ids match their
// position in the input. Panics with a VoronoiError on bad input.
func newTriangulation(seeds []Point, width, height float64, opts []Option) *Triangulation {
	if len(seeds) == 0 {
		fatal(ErrNoSeeds, "triangulation needs at least one seed")
	}
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		fatal(ErrInvalidBounds, "got %vx%v", width, height)
	}

	tr := &Triangulation{
		mesh:        NewMesh(),
		bounds:      r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: width, Y: height}),
		opts:        buildOptions(opts),
		currentSeed: -1,
		inCavity:    make(map[TriangleID]struct{}),
	}
	tr.seeds = make([]VertexID, 0, len(seeds)+3)
	for _, p := range seeds {
		tr.seeds = append(tr.seeds, tr.mesh.NewVertex(p))
	}
	return tr
}

func NewTriangulation(seeds []Point, width, height float64, opts ...Option) (tr *Triangulation, err error) {
	defer func() {
		if recoveredErr := HandleVoronoiPanicRecover(recover()); recoveredErr != nil {
			tr = nil
			err = recoveredErr
		}
	}()
	return newTriangulation(seeds, width, height, opts), nil
}

// Advance the engine by one state. Start runs the bootstrap and finds the
// first cavity. CavityFound inserts the seed. SeedInserted either finds the
// next cavity or, once the real seeds are exhausted, cleans up the perimeter.
func (tr *Triangulation) Next() (state TriangulationState, err error) {
	defer func() {
		if recoveredErr := HandleVoronoiPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
		state = tr.state
	}()

	switch tr.state {
	case Start:
		tr.WrapWithSuperTriangle()
		tr.PickSeed()
		tr.IdentifyCavity()
	case CavityFound:
		tr.InsertSeed()
	case SeedInserted:
		if tr.SeedsRemaining() {
			tr.PickSeed()
			tr.IdentifyCavity()
		} else {
			tr.RemovePerimeterTriangles()
		}
	case CleanedUp:
		fatal(ErrComplete, "triangulation is already cleaned up")
	}
	return
}

// Run the triangulation to the CleanedUp state.
func (tr *Triangulation) Run() error {
	for tr.state != CleanedUp {
		if _, err := tr.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Bootstrap: enclose the bounding box in a super-triangle, and append its
// vertices to the seed sequence. They come after every real seed, so they are
// never inserted. They only act as scaffolding until the perimeter cleanup.
func (tr *Triangulation) WrapWithSuperTriangle() {
	if tr.wrapped {
		fatalf("triangulation is already wrapped")
	}

	center := tr.bounds.Center()
	size := tr.bounds.Size()
	extent := math.Max(size.X, size.Y)
	k := tr.opts.superTriangleScale

	v1 := tr.mesh.NewVertex(Point{center.X - k*extent, center.Y - extent})
	v2 := tr.mesh.NewVertex(Point{center.X + k*extent, center.Y - extent})
	v3 := tr.mesh.NewVertex(Point{center.X, center.Y + k*extent})

	e1 := tr.mesh.NewEdge(v1, v2)
	e2 := tr.mesh.NewEdge(v2, v3)
	e3 := tr.mesh.NewEdge(v3, v1)

	t := tr.mesh.NewTriangle(
		[3]VertexID{v1, v2, v3},
		[3]EdgeID{e1, e2, e3},
		[3]TriangleID{NoTriangle, NoTriangle, NoTriangle},
	)

	tr.auxiliary = [3]VertexID{v1, v2, v3}
	tr.seeds = append(tr.seeds, v1, v2, v3)
	tr.wrapped = true

	tr.opts.logger.Debug("wrapped with super-triangle",
		zap.String("triangle", tr.DbgName(t)),
		zap.Float64("scale", k),
		zap.Int("seeds", len(tr.seeds)-3),
	)
}

// Whether any real seed is still waiting to be inserted.
func (tr *Triangulation) SeedsRemaining() bool {
	return tr.wrapped && tr.state != CleanedUp && tr.next < len(tr.seeds)-3
}

// Select the next seed in insertion order.
func (tr *Triangulation) PickSeed() {
	if !tr.SeedsRemaining() {
		fatalf("no seeds left to pick (next %d of %d)", tr.next, len(tr.seeds)-3)
	}
	tr.currentSeed = tr.seeds[tr.next]
	tr.next++
	tr.seedPicked = true
}

// Collect every live triangle whose circumcircle contains the current seed.
func (tr *Triangulation) IdentifyCavity() {
	if !tr.seedPicked {
		fatalf("cannot identify a cavity before picking a seed")
	}
	tr.seedPicked = false

	tr.cavity = nil
	tr.inCavity = make(map[TriangleID]struct{})
	tr.cavityEdges = nil
	tr.newTriangles = nil

	seed := tr.mesh.Point(tr.currentSeed)
	for _, t := range tr.mesh.Live() {
		tri := tr.mesh.Triangle(t)
		if tri.CircumcircleContains(seed) {
			tr.cavity = append(tr.cavity, t)
			tr.inCavity[t] = struct{}{}
		}
	}
	tr.state = CavityFound
}

// Replace the cavity with a fan of triangles around the current seed.
//
// Every cavity edge whose neighbour is absent or outside the cavity is on the
// cavity boundary, and gets a new triangle (seed, v1, v2). The two edges from
// the seed are shared with the neighbouring new triangles, so they are created
// once per boundary vertex and reused. The first new triangle to use such an
// edge claims it; the second one links up with the first across it.
func (tr *Triangulation) InsertSeed() {
	if tr.state != CavityFound {
		fatalf("cannot insert a seed in state %s", tr.state)
	}
	seed := tr.currentSeed

	if len(tr.cavity) == 0 {
		// Only possible when the seed is outside (or exactly on the boundary of)
		// the super-triangle. Nothing gets created.
		tr.emptyCavities++
		tr.opts.logger.Warn("seed has an empty cavity",
			zap.String("seed", tr.DbgVertexName(seed)),
			zap.Float64("x", tr.mesh.Point(seed).X),
			zap.Float64("y", tr.mesh.Point(seed).Y),
		)
		tr.state = SeedInserted
		return
	}

	newEdges := make(map[VertexID]EdgeID)
	claimedBy := make(map[EdgeID]TriangleID)

	// Link a new triangle across one of its seed edges, or claim the edge if it
	// was just created.
	link := func(t TriangleID, e EdgeID, created bool) {
		if created {
			claimedBy[e] = t
			return
		}
		other, ok := claimedBy[e]
		if !ok {
			fatalf("seed edge %d was reused but never claimed", e)
		}
		tr.mesh.SetNeighbour(t, e, other)
		tr.mesh.SetNeighbour(other, e, t)
	}

	for _, t := range tr.cavity {
		tri := tr.mesh.Triangle(t)
		for i, e := range tri.Edges {
			neighbour := tri.Neighbours[i]
			if neighbour != NoTriangle {
				if _, ok := tr.inCavity[neighbour]; ok {
					continue
				}
			}
			tr.cavityEdges = append(tr.cavityEdges, e)
			edge := tr.mesh.Edge(e)

			seedToV1, ok := newEdges[edge.V1]
			seedToV1Created := !ok
			if seedToV1Created {
				seedToV1 = tr.mesh.NewEdge(seed, edge.V1)
				newEdges[edge.V1] = seedToV1
			}

			v2ToSeed, ok := newEdges[edge.V2]
			v2ToSeedCreated := !ok
			if v2ToSeedCreated {
				v2ToSeed = tr.mesh.NewEdge(edge.V2, seed)
				newEdges[edge.V2] = v2ToSeed
			}

			newT := tr.mesh.NewTriangle(
				[3]VertexID{seed, edge.V1, edge.V2},
				[3]EdgeID{seedToV1, e, v2ToSeed},
				[3]TriangleID{NoTriangle, neighbour, NoTriangle},
			)

			if neighbour != NoTriangle {
				tr.mesh.SetNeighbour(neighbour, e, newT)
			}

			link(newT, seedToV1, seedToV1Created)
			link(newT, v2ToSeed, v2ToSeedCreated)

			tr.newTriangles = append(tr.newTriangles, newT)
		}
	}

	tr.mesh.DeleteTriangles(tr.inCavity)

	tr.opts.logger.Debug("seed inserted",
		zap.String("seed", tr.DbgVertexName(seed)),
		zap.Int("cavity", len(tr.cavity)),
		zap.Int("boundary_edges", len(tr.cavityEdges)),
		zap.Int("new_triangles", len(tr.newTriangles)),
		zap.Int("live", len(tr.mesh.Live())),
	)
	tr.state = SeedInserted
}

// Delete every triangle touching a super-triangle vertex, and drop those
// vertices from the seed sequence.
func (tr *Triangulation) RemovePerimeterTriangles() {
	if tr.state != SeedInserted || tr.SeedsRemaining() {
		fatalf("cannot clean up in state %s with seeds remaining", tr.state)
	}

	perimeter := make(map[TriangleID]struct{})
	for _, t := range tr.mesh.Live() {
		if tr.TouchesSuperTriangle(t) {
			perimeter[t] = struct{}{}
		}
	}
	tr.mesh.DeleteTriangles(perimeter)
	tr.seeds = tr.seeds[:len(tr.seeds)-3]
	tr.state = CleanedUp

	tr.opts.logger.Debug("perimeter triangles removed",
		zap.Int("removed", len(perimeter)),
		zap.Int("live", len(tr.mesh.Live())),
	)
}

func (tr *Triangulation) IsAuxiliary(v VertexID) bool {
	return tr.wrapped && (v == tr.auxiliary[0] || v == tr.auxiliary[1] || v == tr.auxiliary[2])
}

func (tr *Triangulation) TouchesSuperTriangle(t TriangleID) bool {
	for _, v := range tr.mesh.Triangle(t).Vertices {
		if tr.IsAuxiliary(v) {
			return true
		}
	}
	return false
}

func (tr *Triangulation) Mesh() *Mesh {
	return tr.mesh
}

func (tr *Triangulation) State() TriangulationState {
	return tr.state
}

func (tr *Triangulation) Bounds() r2.Rect {
	return tr.bounds
}

func (tr *Triangulation) Width() float64 {
	return tr.bounds.X.Hi
}

func (tr *Triangulation) Height() float64 {
	return tr.bounds.Y.Hi
}

// Number of insertions that found no cavity at all. This should always be
// zero with a properly sized super-triangle.
func (tr *Triangulation) EmptyCavities() int {
	return tr.emptyCavities
}

// The real seeds, in insertion order.
func (tr *Triangulation) Seeds() []Point {
	n := len(tr.seeds)
	if tr.wrapped && tr.state != CleanedUp {
		n -= 3
	}
	points := make([]Point, n)
	for i := range points {
		points[i] = tr.mesh.Point(tr.seeds[i])
	}
	return points
}

// Seed vertex ids, including the super-triangle vertices while they are still
// part of the sequence.
func (tr *Triangulation) SeedVertices() []VertexID {
	return tr.seeds
}

func (tr *Triangulation) CurrentSeed() (VertexID, bool) {
	return tr.currentSeed, tr.currentSeed >= 0
}

func (tr *Triangulation) Cavity() []TriangleID {
	return tr.cavity
}

func (tr *Triangulation) CavityEdges() []EdgeID {
	return tr.cavityEdges
}

func (tr *Triangulation) NewTriangles() []TriangleID {
	return tr.newTriangles
}

// Snapshots of the live triangles, in triangulation order.
func (tr *Triangulation) Triangles() []DelaunayTriangle {
	live := tr.mesh.Live()
	result := make([]DelaunayTriangle, 0, len(live))
	for _, t := range live {
		result = append(result, tr.mesh.DelaunayTriangle(t))
	}
	return result
}
