// A Voronoi diagram package for Go.
//
// This package takes a set of seeds inside a rectangle and computes the
// Voronoi diagram of the seeds, clipped to the rectangle, along with the
// Delaunay triangulation it is derived from. The triangulation is built
// incrementally (Bowyer-Watson), and the diagram is its dual.
//
// To watch the diagram being built one step at a time, see the advanced
// package.
package voronoi

import "github.com/osuushi/voronoi/advanced"

type Point = advanced.Point
type Diagram = advanced.Diagram
type DelaunayTriangle = advanced.DelaunayTriangle
type VoronoiEdge = advanced.VoronoiEdge
type Option = advanced.Option

var (
	ErrNoSeeds       = advanced.ErrNoSeeds
	ErrInvalidBounds = advanced.ErrInvalidBounds
	ErrInvalidOption = advanced.ErrInvalidOption
)

// Log progress to a zap logger. Nothing is logged by default.
var WithLogger = advanced.WithLogger

// Compute the Voronoi diagram of the seeds within [0,width]x[0,height].
//
// Seeds are inserted in the order given, and that order decides the order of
// the triangles and edges in the result. Seeds should lie within the
// rectangle. Coincident or collinear seeds do not cause an error, but the
// triangles they produce have no meaningful circumcentre.
func Generate(seeds []Point, width, height float64, opts ...Option) (result *Diagram, err error) {
	defer func() {
		recoveredErr := advanced.HandleVoronoiPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	stepper, err := advanced.NewStepper(seeds, width, height, opts...)
	if err != nil {
		return nil, err
	}
	if err := stepper.Generate(); err != nil {
		return nil, err
	}
	return stepper.Diagram()
}
