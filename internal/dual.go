package internal

import "go.uber.org/zap"

// Derive the Voronoi diagram from a cleaned up triangulation. Every edge
// shared by two live triangles becomes the segment between their
// circumcentres. Every boundary edge becomes a clipped edge from its
// triangle's circumcentre to the bounding box, along the edge's perpendicular
// bisector and away from the triangle.
//
// Shared edges are visited from both sides, so only the side whose neighbour
// comes later in the live list emits the segment.
func ComputeVoronoi(tr *Triangulation) []VoronoiEdge {
	if tr.State() != CleanedUp {
		fatal(ErrNotCleanedUp, "cannot compute the dual in state %s", tr.State())
	}

	mesh := tr.Mesh()
	live := mesh.Live()
	index := make(map[TriangleID]int, len(live))
	for i, t := range live {
		index[t] = i
	}

	var edges []VoronoiEdge
	var internalCount, clippedCount int
	for i, t := range live {
		tri := mesh.Triangle(t)
		for j, e := range tri.Edges {
			n := tri.Neighbours[j]
			nIndex, ok := index[n]
			if n != NoTriangle && !ok {
				fatalf("live triangle %d links to dead triangle %d", t, n)
			}
			switch {
			case n == NoTriangle:
				edges = append(edges, VoronoiEdge{
					Start:   tri.Circumcircle.Center,
					End:     tr.clipBoundaryBisector(t, e),
					Clipped: true,
				})
				clippedCount++
			case nIndex > i:
				edges = append(edges, VoronoiEdge{
					Start: tri.Circumcircle.Center,
					End:   mesh.Triangle(n).Circumcircle.Center,
				})
				internalCount++
			}
		}
	}

	tr.opts.logger.Debug("voronoi computed",
		zap.Int("internal_edges", internalCount),
		zap.Int("clipped_edges", clippedCount),
	)
	return edges
}

// Where the perpendicular bisector of boundary edge e, walked away from the
// triangle's opposite vertex, reaches the side of the bounding box.
//
// A non-vertical bisector is followed to x=0 or x=width, whichever is on the
// far side from the opposite vertex. A vertical bisector (horizontal edge) is
// followed to y=0 or y=height instead. Note that for steep bisectors the
// result can lie above or below the box.
func (tr *Triangulation) clipBoundaryBisector(t TriangleID, e EdgeID) Point {
	mesh := tr.Mesh()
	edge := mesh.Segment(e)
	opposite := mesh.Point(mesh.OppositeVertex(t, e))
	mid := edge.Midpoint()

	if edge.IsHorizontal() {
		// Vertical bisector x = mid.X
		far := 0.0
		if opposite.Y < mid.Y {
			far = tr.Height()
		}
		return Point{mid.X, far}
	}

	// Bisector y = slope*x + intercept, and projX is the x coordinate where the
	// line through the opposite vertex, parallel to the bisector, meets the
	// edge's line.
	var slope, intercept, projX float64
	if edge.IsVertical() {
		// Horizontal bisector y = mid.Y
		slope = 0
		intercept = mid.Y
		projX = edge.Start.X
	} else {
		edgeSlope, edgeIntercept := edge.Line()
		slope = -1 / edgeSlope
		intercept = mid.Y - slope*mid.X
		oppositeIntercept := opposite.Y - slope*opposite.X
		projX = (oppositeIntercept - edgeIntercept) / (edgeSlope - slope)
	}

	far := 0.0
	if opposite.X < projX {
		far = tr.Width()
	}
	return Point{far, slope*far + intercept}
}
