package render

import (
	"image/color"

	"github.com/osuushi/voronoi"
	"github.com/osuushi/voronoi/advanced"
)

// A drawing surface. Coordinates are already scaled to the output. A nil fill
// or stroke colour means the polygon is not filled or not stroked.
type canvas interface {
	clear(c color.Color)
	polygon(points []voronoi.Point, fill, stroke color.Color, width float64)
	line(a, b voronoi.Point, stroke color.Color, width float64)
	dot(center voronoi.Point, radius float64, fill color.Color)
}

type painter struct {
	canvas  canvas
	style   Style
	palette palette
	scale   float64
}

func newPainter(c canvas, style Style, scale float64) (*painter, error) {
	p, err := style.palette()
	if err != nil {
		return nil, err
	}
	return &painter{c, style, p, scale}, nil
}

func (p *painter) project(point voronoi.Point) voronoi.Point {
	return voronoi.Point{X: point.X * p.scale, Y: point.Y * p.scale}
}

func (p *painter) triangles(triangles []voronoi.DelaunayTriangle, fill, stroke color.Color, width float64) {
	for _, t := range triangles {
		points := make([]voronoi.Point, 0, 3)
		for _, v := range t.Vertices {
			points = append(points, p.project(v))
		}
		p.canvas.polygon(points, fill, stroke, width)
	}
}

func (p *painter) seeds(seeds []voronoi.Point, radius float64) {
	for _, s := range seeds {
		p.canvas.dot(p.project(s), radius, p.palette.seed)
	}
}

// The finished diagram, with each layer subject to its visibility setting.
func (p *painter) diagram(d *voronoi.Diagram) {
	p.canvas.clear(p.palette.background)
	if p.style.Seeds.Show {
		p.seeds(d.Seeds, p.style.Seeds.Radius)
	}
	if p.style.Delaunay.Show {
		p.triangles(d.Triangles, nil, p.palette.delaunay, p.style.Delaunay.Width)
	}
	if p.style.Voronoi.Show {
		for _, e := range d.Edges {
			p.canvas.line(p.project(e.Start), p.project(e.End), p.palette.voronoi, p.style.Voronoi.Width)
		}
	}
}

// A construction frame: the cavity and the fan that replaced it, every seed,
// the seed being inserted at double size, the cavity boundary, and then the
// current triangulation on top. Visibility settings do not apply.
func (p *painter) phase(phase advanced.Phase, seeds []voronoi.Point) {
	p.canvas.clear(p.palette.background)

	step := p.style.Step
	p.triangles(phase.Cavity, p.palette.cavityFill, p.palette.cavityStroke, step.Width)
	p.triangles(phase.NewTriangles, p.palette.newTriangleFill, p.palette.newTriangleStroke, step.Width)

	p.seeds(seeds, p.style.Seeds.Radius)
	if phase.Seed != nil {
		p.canvas.dot(p.project(*phase.Seed), p.style.Seeds.Radius*2, p.palette.seed)
	}

	for _, e := range phase.CavityEdges {
		p.canvas.line(p.project(e.Start), p.project(e.End), p.palette.cavityEdge, step.Width)
	}

	p.triangles(phase.Triangles, nil, p.palette.delaunay, p.style.Delaunay.Width)
}
