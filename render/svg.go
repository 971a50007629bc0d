package render

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/osuushi/voronoi"
)

type svgCanvas struct {
	s             *svg.SVG
	width, height float64
}

func (c svgCanvas) clear(fill color.Color) {
	c.s.Rect(0, 0, c.width, c.height, "fill:"+hexColour(fill))
}

func (c svgCanvas) polygon(points []voronoi.Point, fill, stroke color.Color, width float64) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}
	c.s.Polygon(xs, ys, fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g", paint(fill), paint(stroke), width))
}

func (c svgCanvas) line(a, b voronoi.Point, stroke color.Color, width float64) {
	c.s.Line(a.X, a.Y, b.X, b.Y, fmt.Sprintf("stroke:%s;stroke-width:%g;stroke-linecap:round", paint(stroke), width))
}

func (c svgCanvas) dot(center voronoi.Point, radius float64, fill color.Color) {
	c.s.Circle(center.X, center.Y, radius, "fill:"+paint(fill)+";stroke:none")
}

func paint(c color.Color) string {
	if c == nil {
		return "none"
	}
	return hexColour(c)
}

func renderSVG(w io.Writer, style Style, f frame) error {
	width, height := f.width*style.Scale, f.height*style.Scale
	s := svg.New(w)
	p, err := newPainter(svgCanvas{s, width, height}, style, style.Scale)
	if err != nil {
		return err
	}
	s.Start(width, height)
	f.paint(p)
	s.End()
	return nil
}
