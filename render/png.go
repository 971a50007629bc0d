package render

import (
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/voronoi"
	"github.com/pkg/errors"
)

type ggCanvas struct {
	c *gg.Context
}

func (g ggCanvas) clear(c color.Color) {
	g.c.SetColor(c)
	g.c.Clear()
}

func (g ggCanvas) polygon(points []voronoi.Point, fill, stroke color.Color, width float64) {
	g.c.NewSubPath()
	for _, p := range points {
		g.c.LineTo(p.X, p.Y)
	}
	g.c.ClosePath()
	if fill != nil {
		g.c.SetColor(fill)
		g.c.FillPreserve()
	}
	if stroke != nil {
		g.c.SetColor(stroke)
		g.c.SetLineWidth(width)
		g.c.StrokePreserve()
	}
	g.c.ClearPath()
}

func (g ggCanvas) line(a, b voronoi.Point, stroke color.Color, width float64) {
	g.c.SetColor(stroke)
	g.c.SetLineWidth(width)
	g.c.SetLineCap(gg.LineCapRound)
	g.c.DrawLine(a.X, a.Y, b.X, b.Y)
	g.c.Stroke()
}

func (g ggCanvas) dot(center voronoi.Point, radius float64, fill color.Color) {
	g.c.SetColor(fill)
	g.c.DrawCircle(center.X, center.Y, radius)
	g.c.Fill()
}

func rasterSize(f frame, style Style) (int, int) {
	return int(math.Ceil(f.width * style.Scale)), int(math.Ceil(f.height * style.Scale))
}

func drawRaster(style Style, f frame) (*gg.Context, error) {
	width, height := rasterSize(f, style)
	c := gg.NewContext(width, height)
	p, err := newPainter(ggCanvas{c}, style, style.Scale)
	if err != nil {
		return nil, err
	}
	f.paint(p)
	return c, nil
}

func renderPNG(w io.Writer, style Style, f frame) error {
	c, err := drawRaster(style, f)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

// Show the image inline in the terminal (iTerm only).
func renderTerminal(w io.Writer, style Style, f frame) error {
	c, err := drawRaster(style, f)
	if err != nil {
		return err
	}

	file, err := os.CreateTemp("", "voronoi-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temporary image")
	}
	defer os.Remove(file.Name())

	err = c.EncodePNG(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrap(err, "writing temporary image")
	}
	return errors.Wrap(imgcat.CatFile(file.Name(), w), "printing image")
}
