package scatter

import (
	"math/rand"

	perlin "github.com/aquilax/go-perlin"
	"github.com/osuushi/voronoi"
	"github.com/pkg/errors"
)

// Noise parameters. Alpha is the weight of each octave relative to the last,
// beta the frequency multiplier, and octaves the number of iterations.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// Candidates drawn per requested point before giving up
const perlinMaxAttempts = 1000

// Scattering weighted by Perlin noise. Candidate positions are drawn uniformly
// from the integer grid, and kept with a probability given by the noise at
// that position, so seeds cluster where the noise is high and thin out where
// it is low. No two seeds share a position.
type Perlin struct {
	rand  *rand.Rand
	noise *perlin.Perlin

	// Noise frequency, in noise periods per unit of the longer side.
	Frequency float64
	// Acceptance probability never drops below this, so sparse regions are
	// never completely empty.
	Floor float64
}

func NewPerlin(seed int64) *Perlin {
	return &Perlin{
		rand:      rand.New(rand.NewSource(seed)),
		noise:     perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed),
		Frequency: 4,
		Floor:     0.05,
	}
}

// Probability of keeping a candidate at (x, y)
func (p *Perlin) Density(x, y float64, size float64) float64 {
	scale := p.Frequency / size
	// Noise2D is roughly in [-1, 1]
	d := (p.noise.Noise2D(x*scale, y*scale) + 1) / 2
	if d < p.Floor {
		return p.Floor
	}
	if d > 1 {
		return 1
	}
	return d
}

func (p *Perlin) Scatter(width, height, count int) ([]voronoi.Point, error) {
	if err := checkArea(width, height, count); err != nil {
		return nil, err
	}

	size := float64(width)
	if height > width {
		size = float64(height)
	}

	points := make([]voronoi.Point, 0, count)
	grid := make(occupancy, count)
	for attempts := 0; len(points) < count; attempts++ {
		if attempts >= perlinMaxAttempts*count {
			return nil, errors.Errorf("gave up after %d candidates with %d of %d points placed", attempts, len(points), count)
		}
		x, y := p.rand.Intn(width), p.rand.Intn(height)
		if p.rand.Float64() >= p.Density(float64(x), float64(y), size) {
			continue
		}
		if !grid.claim(x, y) {
			continue
		}
		points = append(points, voronoi.Point{X: float64(x), Y: float64(y)})
	}
	return points, nil
}
