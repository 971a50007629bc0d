package voronoi

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// Smoke test. The internals are already tested.
func TestGenerate(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 10},
	}

	diagram, err := Generate(points, 10, 10)
	require.NoError(t, err)
	assert.Len(t, diagram.Triangles, 2)
	assert.Len(t, diagram.Edges, 5)
	assert.Equal(t, points, diagram.Seeds)
}

func TestGenerate_WithLogger(t *testing.T) {
	_, err := Generate([]Point{{X: 1, Y: 2}, {X: 7, Y: 3}, {X: 4, Y: 8}}, 10, 10, WithLogger(zaptest.NewLogger(t, zaptest.Level(zap.DebugLevel))))
	assert.NoError(t, err)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(nil, 10, 10)
	assert.True(t, errors.Is(err, ErrNoSeeds))

	_, err = Generate([]Point{{X: 1, Y: 1}}, 0, 10)
	assert.True(t, errors.Is(err, ErrInvalidBounds))
}
