package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/osuushi/voronoi"
	"github.com/osuushi/voronoi/advanced"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDiagram(t *testing.T) *voronoi.Diagram {
	t.Helper()
	d, err := voronoi.Generate([]voronoi.Point{{X: 20, Y: 20}, {X: 80, Y: 30}, {X: 50, Y: 90}, {X: 45, Y: 45}}, 100, 100)
	require.NoError(t, err)
	return d
}

func TestDiagram_PNG(t *testing.T) {
	d := testDiagram(t)
	style := DefaultStyle()
	style.Scale = 2

	var buf bytes.Buffer
	require.NoError(t, Diagram(&buf, PNG, style, d))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 200, 200), img.Bounds())

	// Background in a corner, seed colour at a seed
	assertColour(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.At(199, 1))
	assertColour(t, color.RGBA{0xdb, 0x4b, 0x23, 0xff}, img.At(40, 40))
}

func TestDiagram_SVG(t *testing.T) {
	d := testDiagram(t)
	style := DefaultStyle()
	style.Delaunay.Show = true

	var buf bytes.Buffer
	require.NoError(t, Diagram(&buf, SVG, style, d))
	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)

	assert.Len(t, root.FindAll("circle"), len(d.Seeds))
	assert.Len(t, root.FindAll("polygon"), len(d.Triangles))
	assert.Len(t, root.FindAll("line"), len(d.Edges))

	t.Run("hidden layers", func(t *testing.T) {
		style := DefaultStyle()
		style.Seeds.Show = false
		style.Voronoi.Show = false

		var buf bytes.Buffer
		require.NoError(t, Diagram(&buf, SVG, style, d))
		root, err := svgparser.Parse(&buf, false)
		require.NoError(t, err)
		assert.Empty(t, root.FindAll("circle"))
		assert.Empty(t, root.FindAll("line"))
		assert.Empty(t, root.FindAll("polygon"))
		assert.Len(t, root.FindAll("rect"), 1)
	})
}

func TestDiagram_PDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Diagram(&buf, PDF, DefaultStyle(), testDiagram(t)))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestDiagram_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Diagram(&buf, Format("gif"), DefaultStyle(), testDiagram(t))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestDiagram_InvalidStyle(t *testing.T) {
	style := DefaultStyle()
	style.Voronoi.Colour = "#12345"
	var buf bytes.Buffer
	assert.Error(t, Diagram(&buf, SVG, style, testDiagram(t)))
}

func TestPhase(t *testing.T) {
	seeds := []voronoi.Point{{X: 20, Y: 20}, {X: 80, Y: 30}, {X: 50, Y: 90}}
	s, err := advanced.NewStepper(seeds, 100, 100)
	require.NoError(t, err)
	for s.State() != advanced.CavityIdentified {
		_, err := s.Resume()
		require.NoError(t, err)
	}
	phase := s.PhaseData()

	var buf bytes.Buffer
	require.NoError(t, Phase(&buf, SVG, DefaultStyle(), phase, seeds, 100, 100))
	root, err := svgparser.Parse(&buf, false)
	require.NoError(t, err)

	// Every seed, plus the current one drawn again
	assert.Len(t, root.FindAll("circle"), len(seeds)+1)
	assert.Len(t, root.FindAll("polygon"), len(phase.Cavity)+len(phase.Triangles))

	for _, format := range Formats {
		if format == Terminal {
			continue
		}
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			assert.NoError(t, Phase(&buf, format, DefaultStyle(), phase, seeds, 100, 100))
			assert.NotZero(t, buf.Len())
		})
	}
}

// The PDF backend draws through draw2d's generic graphic context, so it can be
// checked on an image instead.
func TestDraw2dCanvas(t *testing.T) {
	dest := image.NewRGBA(image.Rect(0, 0, 50, 50))
	gc := draw2dimg.NewGraphicContext(dest)
	c := draw2dCanvas{gc, 50, 50}

	red := color.RGBA{0xff, 0, 0, 0xff}
	blue := color.RGBA{0, 0, 0xff, 0xff}
	c.clear(color.RGBA{0xff, 0xff, 0xff, 0xff})
	c.dot(voronoi.Point{X: 10, Y: 10}, 4, red)
	c.polygon([]voronoi.Point{{X: 25, Y: 25}, {X: 45, Y: 25}, {X: 25, Y: 45}}, blue, nil, 0)

	assertColour(t, red, dest.At(10, 10))
	assertColour(t, blue, dest.At(30, 30))
	assertColour(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, dest.At(45, 5))
}

func assertColour(t *testing.T, expected color.Color, actual color.Color) {
	t.Helper()
	er, eg, eb, ea := expected.RGBA()
	ar, ag, ab, aa := actual.RGBA()
	assert.Equal(t, []uint32{er >> 8, eg >> 8, eb >> 8, ea >> 8}, []uint32{ar >> 8, ag >> 8, ab >> 8, aa >> 8})
}
