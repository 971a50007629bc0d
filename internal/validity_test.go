package internal

// This contains no actual tests. It is just a helper for testing triangulation
// and diagram validity.

import (
	"math"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a cleaned up triangulation is valid. The rules are:
// 1. Adjacency is symmetric and only links live triangles.
// 2. No live triangle touches a super-triangle vertex.
// 3. Every triangle vertex is one of the seeds.
// 4. Every cached circumcircle matches a fresh computation.
// 5. No seed lies strictly inside any triangle's circumcircle.
// 6. No two triangles overlap.
// 7. There are no more triangles than a full triangulation of the seeds has.
func AssertValidTriangulation(t *testing.T, tr *Triangulation) {
	t.Helper()
	defer dbgDrawOnFailure(t, tr)

	require.Equal(t, CleanedUp, tr.State())
	mesh := tr.Mesh()
	require.NoError(t, mesh.CheckAdjacency())

	seeds := tr.Seeds()
	seedSet := make(PointSet)
	for _, s := range seeds {
		seedSet.Add(s)
	}

	for _, id := range mesh.Live() {
		require.False(t, tr.TouchesSuperTriangle(id), "perimeter triangle survived: %s", tr.TriangleString(id))
		tri := mesh.Triangle(id)
		for _, v := range tri.Vertices {
			require.True(t, seedSet.Contains(mesh.Point(v)), "vertex %v of %s is not a seed", mesh.Point(v), tr.TriangleString(id))
		}
		a, b, c := mesh.Point(tri.Vertices[0]), mesh.Point(tri.Vertices[1]), mesh.Point(tri.Vertices[2])
		x, y, r := Circumcenter(a, b, c)
		assert.Equal(t, Point{x, y}, tri.Circumcircle.Center)
		assert.Equal(t, r, tri.Circumcircle.Radius)
	}

	assertDelaunay(t, tr)
	validateTrianglesBySampling(t, tr)
	assert.LessOrEqual(t, len(mesh.Live()), 2*len(seeds)-2-convexHullSize(seeds))
}

// No seed may be strictly inside a circumcircle. Seeds on the circle are fine,
// since cocircular seeds have more than one valid triangulation.
func assertDelaunay(t *testing.T, tr *Triangulation) {
	t.Helper()
	mesh := tr.Mesh()
	for _, id := range mesh.Live() {
		circle := mesh.Triangle(id).Circumcircle
		slack := Tolerance * math.Max(1, circle.Radius)
		for _, s := range tr.Seeds() {
			assert.GreaterOrEqual(t, s.DistanceTo(circle.Center), circle.Radius-slack,
				"seed %v is inside the circumcircle of %s", s, tr.TriangleString(id))
		}
	}
}

// Sample a grid across the bounding box, and check that no sample is strictly
// inside more than one triangle.
func validateTrianglesBySampling(t *testing.T, tr *Triangulation) {
	t.Helper()
	triangles := tr.Triangles()
	step := math.Max(tr.Width(), tr.Height()) / 50

	for y := step / 2; y < tr.Height(); y += step {
		for x := step / 2; x < tr.Width(); x += step {
			p := Point{X: x, Y: y}
			count := 0
			for _, tri := range triangles {
				if strictlyInside(tri, p) {
					count++
				}
			}
			assert.LessOrEqual(t, count, 1, "point %v is covered by %d triangles", p, count)
		}
	}
}

func strictlyInside(tri DelaunayTriangle, p Point) bool {
	a, b, c := tri.Vertices[0], tri.Vertices[1], tri.Vertices[2]
	d1, d2, d3 := Cross(a, b, p), Cross(b, c, p), Cross(c, a, p)
	const eps = 1e-9
	return (d1 > eps && d2 > eps && d3 > eps) || (d1 < -eps && d2 < -eps && d3 < -eps)
}

// Number of points on the convex hull (monotone chain, collinear points
// excluded).
func convexHullSize(points []Point) int {
	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X == sorted[j].X {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})
	if len(sorted) < 3 {
		return len(sorted)
	}

	hull := make([]Point, 0, 2*len(sorted))
	for _, p := range sorted {
		for len(hull) >= 2 && Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return len(hull) - 1
}

// Every live triangle edge is either shared with a neighbour, and produces one
// internal Voronoi edge between the pair, or on the boundary, and produces one
// clipped edge.
func assertEdgeParity(t *testing.T, tr *Triangulation, edges []VoronoiEdge) {
	t.Helper()
	mesh := tr.Mesh()
	var shared, boundary int
	for _, id := range mesh.Live() {
		for _, n := range mesh.Triangle(id).Neighbours {
			if n == NoTriangle {
				boundary++
			} else {
				shared++
			}
		}
	}
	require.Equal(t, 0, shared%2, "shared edges must be counted from both sides")

	var internal, clipped int
	for _, e := range edges {
		if e.Clipped {
			clipped++
		} else {
			internal++
		}
	}
	assert.Equal(t, shared/2, internal)
	assert.Equal(t, boundary, clipped)
}

// Set VORONOI_DBG_DRAW to see failing triangulations in the terminal (iTerm
// only).
func dbgDrawOnFailure(t *testing.T, tr *Triangulation) {
	if t.Failed() && os.Getenv("VORONOI_DBG_DRAW") != "" {
		tr.dbgDraw(4)
	}
}

func runFixture(t *testing.T, fixture SeedFixture, opts ...Option) *Triangulation {
	t.Helper()
	tr, err := NewTriangulation(fixture.Seeds, fixture.Width, fixture.Height, opts...)
	require.NoError(t, err)
	require.NoError(t, tr.Run())
	return tr
}
