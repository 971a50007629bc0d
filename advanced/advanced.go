// Package advanced exposes the machinery behind voronoi.Generate, for callers
// that want more than the finished diagram: stepping through the construction
// one phase at a time (to animate it, or to wait for the user between steps),
// or a Delaunay triangulation without its dual.
package advanced

import "github.com/osuushi/voronoi/internal"

type Point = internal.Point
type Segment = internal.Segment
type Diagram = internal.Diagram
type DelaunayTriangle = internal.DelaunayTriangle
type VoronoiEdge = internal.VoronoiEdge

type Option = internal.Option

type Stepper = internal.Stepper
type State = internal.State
type Phase = internal.Phase

const (
	Initialised              = internal.Initialised
	WrappedWithSuperTriangle = internal.WrappedWithSuperTriangle
	SeedPicked               = internal.SeedPicked
	CavityIdentified         = internal.CavityIdentified
	SeedAdded                = internal.SeedAdded
	ExtraTrianglesRemoved    = internal.ExtraTrianglesRemoved
	VoronoiComputed          = internal.VoronoiComputed
)

var (
	ErrNoSeeds       = internal.ErrNoSeeds
	ErrInvalidBounds = internal.ErrInvalidBounds
	ErrComplete      = internal.ErrComplete
	ErrIncomplete    = internal.ErrIncomplete
	ErrInvalidOption = internal.ErrInvalidOption
	ErrInvariant     = internal.ErrInvariant
)

var (
	WithLogger             = internal.WithLogger
	WithSuperTriangleScale = internal.WithSuperTriangleScale
)

// Create a stepper for the given seeds, inside [0,width]x[0,height]. Seeds are
// inserted in the order given. The stepper starts out Initialised; nothing is
// computed until the first call to Step, Resume or Generate.
func NewStepper(seeds []Point, width, height float64, opts ...Option) (*Stepper, error) {
	return internal.NewStepper(seeds, width, height, opts...)
}

// Compute only the Delaunay triangulation of the seeds. Triangles touching the
// super-triangle are already removed, so near the convex hull a few triangles
// of the true triangulation can be missing.
func Triangulate(seeds []Point, width, height float64, opts ...Option) (result []DelaunayTriangle, err error) {
	defer func() {
		recoveredErr := HandleVoronoiPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	tr, err := internal.NewTriangulation(seeds, width, height, opts...)
	if err != nil {
		return nil, err
	}
	if err := tr.Run(); err != nil {
		return nil, err
	}
	if err := tr.Mesh().CheckAdjacency(); err != nil {
		return nil, err
	}
	return tr.Triangles(), nil
}

// Convert a recovered panic back into an error, if it was raised by this
// package. Anything else is re-panicked.
func HandleVoronoiPanicRecover(r interface{}) error {
	return internal.HandleVoronoiPanicRecover(r)
}
