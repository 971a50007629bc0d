package render

import (
	"image/color"
	"io"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dkit"
	"github.com/llgcode/draw2d/draw2dpdf"
	"github.com/osuushi/voronoi"
	"github.com/pkg/errors"
)

// A4, in points
const (
	pdfPageWidth  = 595.28
	pdfPageHeight = 841.89
	pdfMargin     = 36
)

type draw2dCanvas struct {
	gc            draw2d.GraphicContext
	width, height float64
}

func (c draw2dCanvas) clear(fill color.Color) {
	c.gc.SetFillColor(fill)
	draw2dkit.Rectangle(c.gc, 0, 0, c.width, c.height)
	c.gc.Fill()
}

func (c draw2dCanvas) polygon(points []voronoi.Point, fill, stroke color.Color, width float64) {
	c.gc.BeginPath()
	for i, p := range points {
		if i == 0 {
			c.gc.MoveTo(p.X, p.Y)
		} else {
			c.gc.LineTo(p.X, p.Y)
		}
	}
	c.gc.Close()
	switch {
	case fill != nil && stroke != nil:
		c.gc.SetFillColor(fill)
		c.gc.SetStrokeColor(stroke)
		c.gc.SetLineWidth(width)
		c.gc.FillStroke()
	case fill != nil:
		c.gc.SetFillColor(fill)
		c.gc.Fill()
	case stroke != nil:
		c.gc.SetStrokeColor(stroke)
		c.gc.SetLineWidth(width)
		c.gc.Stroke()
	}
}

func (c draw2dCanvas) line(a, b voronoi.Point, stroke color.Color, width float64) {
	c.gc.SetStrokeColor(stroke)
	c.gc.SetLineWidth(width)
	c.gc.SetLineCap(draw2d.RoundCap)
	c.gc.BeginPath()
	c.gc.MoveTo(a.X, a.Y)
	c.gc.LineTo(b.X, b.Y)
	c.gc.Stroke()
}

func (c draw2dCanvas) dot(center voronoi.Point, radius float64, fill color.Color) {
	c.gc.SetFillColor(fill)
	c.gc.BeginPath()
	draw2dkit.Circle(c.gc, center.X, center.Y, radius)
	c.gc.Fill()
}

// The diagram is scaled to fit a single A4 page, in whichever orientation
// suits it better. The style's scale is ignored.
func renderPDF(w io.Writer, style Style, f frame) error {
	orientation, pageWidth, pageHeight := "P", pdfPageWidth, pdfPageHeight
	if f.width > f.height {
		orientation, pageWidth, pageHeight = "L", pdfPageHeight, pdfPageWidth
	}
	scale := math.Min((pageWidth-2*pdfMargin)/f.width, (pageHeight-2*pdfMargin)/f.height)

	pdf := draw2dpdf.NewPdf(orientation, "pt", "A4")
	gc := draw2dpdf.NewGraphicContext(pdf)
	gc.Translate(pdfMargin, pdfMargin)

	p, err := newPainter(draw2dCanvas{gc, f.width * scale, f.height * scale}, style, scale)
	if err != nil {
		return err
	}
	f.paint(p)
	return errors.Wrap(pdf.Output(w), "writing pdf")
}
