package internal

import "math"

const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. This
// is only used for classification (debug colouring, degeneracy checks). The
// algorithm itself uses exact comparisons so that its tie-breaks stay
// deterministic.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

func (p Point) DistanceTo(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (s Segment) Midpoint() Point {
	return Point{
		X: s.Start.X + (s.End.X-s.Start.X)/2,
		Y: s.Start.Y + (s.End.Y-s.Start.Y)/2,
	}
}

func (s Segment) IsVertical() bool {
	return s.Start.X == s.End.X
}

func (s Segment) IsHorizontal() bool {
	return s.Start.Y == s.End.Y
}

// Slope and intercept of the line through the segment (y = slope*x +
// intercept). Must not be called on a vertical segment.
func (s Segment) Line() (slope, intercept float64) {
	slope = (s.Start.Y - s.End.Y) / (s.Start.X - s.End.X)
	intercept = s.Start.Y - slope*s.Start.X
	return
}

// Twice the signed area of the triangle (a, b, c). Positive when
// counterclockwise.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}
