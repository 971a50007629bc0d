package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/voronoi"
	"github.com/osuushi/voronoi/advanced"
	"github.com/osuushi/voronoi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func parseArgs(t *testing.T, args ...string) {
	t.Helper()
	_, err := app.Parse(args)
	require.NoError(t, err)
}

func TestOutputPath(t *testing.T) {
	parseArgs(t, "--out", "diagram.svg")
	assert.Equal(t, "diagram.svg", outputPath(render.SVG, -1))
	assert.Equal(t, "diagram-007.svg", outputPath(render.SVG, 7))
	assert.Equal(t, "diagram.svg.png", outputPath(render.PNG, -1))
	assert.Equal(t, "", outputPath(render.Terminal, 3))
}

func TestLoadSeeds(t *testing.T) {
	t.Run("scattered", func(t *testing.T) {
		parseArgs(t, "--width", "50", "--height", "40", "--count", "25", "--rand-seed", "9")
		seeds, err := loadSeeds()
		require.NoError(t, err)
		assert.Len(t, seeds, 25)
	})

	t.Run("from file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seeds.txt")
		require.NoError(t, os.WriteFile(path, []byte("1 2\n3 4\n5 1\n"), 0644))
		parseArgs(t, "--input", path)
		seeds, err := loadSeeds()
		require.NoError(t, err)
		assert.Equal(t, []voronoi.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 1}}, seeds)
	})
}

func TestWriteFrames(t *testing.T) {
	dir := t.TempDir()
	parseArgs(t, "--width", "20", "--height", "20", "--out", filepath.Join(dir, "frame"), "--format", "svg")

	seeds := []voronoi.Point{{X: 2, Y: 3}, {X: 15, Y: 4}, {X: 9, Y: 17}}
	s, err := advanced.NewStepper(seeds, 20, 20)
	require.NoError(t, err)
	require.NoError(t, writeFrames(zap.NewNop(), s, seeds, render.SVG, render.DefaultStyle()))

	frames, err := filepath.Glob(filepath.Join(dir, "frame-*.svg"))
	require.NoError(t, err)
	// The super-triangle, two per seed, and the finished diagram
	assert.Len(t, frames, 1+2*len(seeds)+1)
	assert.FileExists(t, filepath.Join(dir, "frame-007.svg"))
}
