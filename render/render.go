// Package render draws diagrams, and the frames of their construction, as
// PNG, SVG or PDF, or straight to an iTerm compatible terminal.
package render

import (
	"io"

	"github.com/osuushi/voronoi"
	"github.com/osuushi/voronoi/advanced"
	"github.com/pkg/errors"
)

type Format string

const (
	PNG      Format = "png"
	SVG      Format = "svg"
	PDF      Format = "pdf"
	Terminal Format = "term"
)

var Formats = []Format{PNG, SVG, PDF, Terminal}

var ErrUnknownFormat = errors.New("unknown format")

func (f Format) Extension() string {
	if f == Terminal {
		return "png"
	}
	return string(f)
}

// A frame to draw: either a finished diagram, or a phase of its construction.
type frame struct {
	width, height float64
	diagram       *voronoi.Diagram
	phase         *advanced.Phase
	seeds         []voronoi.Point
}

func (f frame) paint(p *painter) {
	if f.diagram != nil {
		p.diagram(f.diagram)
		return
	}
	p.phase(*f.phase, f.seeds)
}

// Draw a finished diagram.
func Diagram(w io.Writer, format Format, style Style, d *voronoi.Diagram) error {
	return render(w, format, style, frame{width: d.Width, height: d.Height, diagram: d})
}

// Draw one step of a diagram's construction. The seeds are all the seeds of
// the diagram, inserted or not.
func Phase(w io.Writer, format Format, style Style, phase advanced.Phase, seeds []voronoi.Point, width, height float64) error {
	return render(w, format, style, frame{width: width, height: height, phase: &phase, seeds: seeds})
}

func render(w io.Writer, format Format, style Style, f frame) error {
	switch format {
	case PNG:
		return renderPNG(w, style, f)
	case SVG:
		return renderSVG(w, style, f)
	case PDF:
		return renderPDF(w, style, f)
	case Terminal:
		return renderTerminal(w, style, f)
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}
