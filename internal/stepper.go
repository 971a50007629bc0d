package internal

import (
	"go.uber.org/zap"
)

// The stepper sequences the triangulation and the dual into named states, so
// a caller can pause between steps (to draw an animation frame, or wait for a
// click in a manual mode). Each state has a transition function which does
// the work and returns the next state. Only some states allow a pause; the
// others are passed through without yielding.

type State int

const (
	Initialised State = iota
	WrappedWithSuperTriangle
	SeedPicked
	CavityIdentified
	SeedAdded
	ExtraTrianglesRemoved
	VoronoiComputed
)

func (s State) String() string {
	switch s {
	case Initialised:
		return "INITIALISED"
	case WrappedWithSuperTriangle:
		return "WRAPPED_WITH_SUPER_TRIANGLE"
	case SeedPicked:
		return "SEED_PICKED"
	case CavityIdentified:
		return "CAVITY_IDENTIFIED"
	case SeedAdded:
		return "SEED_ADDED"
	case ExtraTrianglesRemoved:
		return "EXTRA_TRIANGLES_REMOVED"
	case VoronoiComputed:
		return "VORONOI_COMPUTED"
	}
	return "UNKNOWN"
}

type stateDef struct {
	next  func(*Stepper) State // nil for the terminal state
	pause bool
}

var states = map[State]stateDef{
	Initialised:              {next: (*Stepper).wrapWithSuperTriangle},
	WrappedWithSuperTriangle: {next: (*Stepper).pickSeed, pause: true},
	SeedPicked:               {next: (*Stepper).identifyCavity},
	CavityIdentified:         {next: (*Stepper).addSeed, pause: true},
	SeedAdded:                {next: (*Stepper).checkTriangulationStatus, pause: true},
	ExtraTrianglesRemoved:    {next: (*Stepper).computeVoronoi},
	VoronoiComputed:          {pause: true},
}

// Data describing the step in progress, for visualisation.
type Phase struct {
	State State
	// The seed being inserted. Nil before the first seed is picked.
	Seed *Point
	// Triangles whose circumcircle contains the seed.
	Cavity []DelaunayTriangle
	// Cavity boundary edges. Filled in when the seed is added.
	CavityEdges []Segment
	// The fan of triangles created around the seed.
	NewTriangles []DelaunayTriangle
	// Every live triangle, including those touching the super-triangle until
	// they are cleaned up.
	Triangles []DelaunayTriangle
}

type Stepper struct {
	seeds  []Point
	width  float64
	height float64
	opts   []Option
	logger *zap.Logger

	tri     *Triangulation
	state   State
	diagram *Diagram
}

func NewStepper(seeds []Point, width, height float64, opts ...Option) (s *Stepper, err error) {
	defer func() {
		if recoveredErr := HandleVoronoiPanicRecover(recover()); recoveredErr != nil {
			s = nil
			err = recoveredErr
		}
	}()

	s = &Stepper{
		seeds:  append([]Point(nil), seeds...),
		width:  width,
		height: height,
		opts:   opts,
	}
	s.init()
	return s, nil
}

// Go back to Initialised, keeping the same seeds. The arena is rebuilt, so ids
// start from zero again.
func (s *Stepper) Reset() (err error) {
	defer func() {
		if recoveredErr := HandleVoronoiPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	s.init()
	return nil
}

func (s *Stepper) init() {
	s.tri = newTriangulation(s.seeds, s.width, s.height, s.opts)
	s.logger = s.tri.opts.logger
	s.state = Initialised
	s.diagram = nil
}

func (s *Stepper) State() State {
	return s.state
}

// Whether a pause is permitted in the current state.
func (s *Stepper) MayPause() bool {
	return states[s.state].pause
}

func (s *Stepper) IsComplete() bool {
	return s.state == VoronoiComputed
}

// Perform exactly one transition, and return the new state.
func (s *Stepper) Step() (state State, err error) {
	defer func() {
		if recoveredErr := HandleVoronoiPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
		state = s.state
	}()
	s.next()
	return
}

// Transition until the stepper reaches a state where it may pause. Returns
// whether the diagram is complete.
func (s *Stepper) Resume() (done bool, err error) {
	defer func() {
		if recoveredErr := HandleVoronoiPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
		done = s.IsComplete()
	}()
	for {
		s.next()
		if s.MayPause() {
			return
		}
	}
}

// Run to completion, ignoring pause points.
func (s *Stepper) Generate() (err error) {
	defer func() {
		if recoveredErr := HandleVoronoiPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	if s.IsComplete() {
		fatal(ErrComplete, "nothing left to generate")
	}
	for !s.IsComplete() {
		s.next()
	}
	return nil
}

// The finished diagram. Only available once the stepper is complete.
func (s *Stepper) Diagram() (*Diagram, error) {
	if !s.IsComplete() {
		return nil, ErrIncomplete
	}
	return s.diagram, nil
}

func (s *Stepper) Triangulation() *Triangulation {
	return s.tri
}

func (s *Stepper) PhaseData() Phase {
	mesh := s.tri.Mesh()
	phase := Phase{
		State:     s.state,
		Triangles: s.tri.Triangles(),
	}
	if seed, ok := s.tri.CurrentSeed(); ok {
		p := mesh.Point(seed)
		phase.Seed = &p
	}
	for _, t := range s.tri.Cavity() {
		phase.Cavity = append(phase.Cavity, mesh.DelaunayTriangle(t))
	}
	for _, e := range s.tri.CavityEdges() {
		phase.CavityEdges = append(phase.CavityEdges, mesh.Segment(e))
	}
	for _, t := range s.tri.NewTriangles() {
		phase.NewTriangles = append(phase.NewTriangles, mesh.DelaunayTriangle(t))
	}
	return phase
}

func (s *Stepper) next() {
	def := states[s.state]
	if def.next == nil {
		fatal(ErrComplete, "state %s has no transition", s.state)
	}
	from := s.state
	s.state = def.next(s)
	s.logger.Debug("transition", zap.Stringer("from", from), zap.Stringer("to", s.state))
}

func (s *Stepper) wrapWithSuperTriangle() State {
	s.tri.WrapWithSuperTriangle()
	return WrappedWithSuperTriangle
}

func (s *Stepper) pickSeed() State {
	s.tri.PickSeed()
	return SeedPicked
}

func (s *Stepper) identifyCavity() State {
	s.tri.IdentifyCavity()
	return CavityIdentified
}

func (s *Stepper) addSeed() State {
	s.tri.InsertSeed()
	return SeedAdded
}

// Ignore the super-triangle vertices at the end of the seed sequence. If any
// real seed is left, pick it; otherwise tidy up the perimeter.
func (s *Stepper) checkTriangulationStatus() State {
	if s.tri.SeedsRemaining() {
		return s.pickSeed()
	}
	s.tri.RemovePerimeterTriangles()
	return ExtraTrianglesRemoved
}

func (s *Stepper) computeVoronoi() State {
	edges := ComputeVoronoi(s.tri)
	s.diagram = &Diagram{
		Width:     s.width,
		Height:    s.height,
		Seeds:     s.tri.Seeds(),
		Triangles: s.tri.Triangles(),
		Edges:     edges,
	}
	return VoronoiComputed
}
