// Package scatter generates seeds for a diagram.
package scatter

import (
	"math/rand"

	"github.com/osuushi/voronoi"
	"github.com/pkg/errors"
)

var (
	ErrInvalidArea     = errors.New("width and height must be greater than 0")
	ErrInvalidCount    = errors.New("count must be greater than 0")
	ErrTooManyPoints   = errors.New("too many points to scatter")
	ErrUnknownStrategy = errors.New("unknown scattering strategy")
)

// A Strategy places count seeds in [0,width)x[0,height).
type Strategy interface {
	Scatter(width, height, count int) ([]voronoi.Point, error)
}

// Names accepted by ByName.
var Names = []string{"random", "perlin"}

// Look up a strategy by name. The seed makes the output repeatable.
func ByName(name string, seed int64) (Strategy, error) {
	switch name {
	case "random":
		return NewRandom(seed), nil
	case "perlin":
		return NewPerlin(seed), nil
	}
	return nil, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

func checkArea(width, height, count int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidArea, "got %dx%d", width, height)
	}
	if count <= 0 {
		return errors.Wrapf(ErrInvalidCount, "got %d", count)
	}
	if width*height < count {
		return errors.Wrapf(ErrTooManyPoints, "%d points on a %dx%d grid", count, width, height)
	}
	return nil
}

// Integer grid positions already taken
type occupancy map[[2]int]struct{}

func (o occupancy) claim(x, y int) bool {
	key := [2]int{x, y}
	if _, ok := o[key]; ok {
		return false
	}
	o[key] = struct{}{}
	return true
}

// Uniform random scattering on the integer grid. No two seeds share a
// position.
type Random struct {
	rand *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rand.New(rand.NewSource(seed))}
}

func (r *Random) Scatter(width, height, count int) ([]voronoi.Point, error) {
	if err := checkArea(width, height, count); err != nil {
		return nil, err
	}

	points := make([]voronoi.Point, 0, count)
	grid := make(occupancy, count)
	for len(points) < count {
		// Try random positions until a free one turns up
		x, y := r.rand.Intn(width), r.rand.Intn(height)
		if !grid.claim(x, y) {
			continue
		}
		points = append(points, voronoi.Point{X: float64(x), Y: float64(y)})
	}
	return points, nil
}

// A fixed list of seeds, for replaying a known input.
type Fixed []voronoi.Point

// Returns the first count points. Points outside the area are an error.
func (f Fixed) Scatter(width, height, count int) ([]voronoi.Point, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidArea, "got %dx%d", width, height)
	}
	if count <= 0 {
		return nil, errors.Wrapf(ErrInvalidCount, "got %d", count)
	}
	if count > len(f) {
		return nil, errors.Wrapf(ErrTooManyPoints, "%d requested, %d available", count, len(f))
	}
	for _, p := range f[:count] {
		if p.X < 0 || p.Y < 0 || p.X > float64(width) || p.Y > float64(height) {
			return nil, errors.Errorf("point %v is outside %dx%d", p, width, height)
		}
	}
	return append([]voronoi.Point(nil), f[:count]...), nil
}
