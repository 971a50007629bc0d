package internal

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the bounding box, so that triangles reaching outside it are
// still partly visible
const dbgDrawPadding = 50

// Helper to draw and print the triangulation in the terminal (iTerm only) for
// debugging. The bounding box is outlined in grey, the current cavity is
// filled red, the latest fan of new triangles green, and the seed being
// inserted is drawn larger than the others.
func (tr *Triangulation) dbgDraw(scale float64) {
	width := int(scale*tr.Width()) + dbgDrawPadding*2
	height := int(scale*tr.Height()) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)

	c.SetLineWidth(1)
	c.SetRGB(0.4, 0.4, 0.4)
	c.DrawRectangle(0, 0, tr.Width(), tr.Height())
	c.Stroke()

	tr.drawTriangles(c, tr.cavity, func() { c.SetRGBA(1, 0.3, 0.3, 0.5) }, true)
	tr.drawTriangles(c, tr.newTriangles, func() { c.SetRGBA(0.3, 1, 0.3, 0.5) }, true)
	tr.drawTriangles(c, tr.mesh.Live(), func() { c.SetRGB(0, 1, 1) }, false)

	c.SetRGB(1, 1, 1)
	for _, v := range tr.seeds {
		p := tr.mesh.Point(v)
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}
	if seed, ok := tr.CurrentSeed(); ok {
		p := tr.mesh.Point(seed)
		c.SetRGB(1, 1, 0)
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Fill()
	}

	c.SavePNG("/tmp/triangulation.png")
	imgcat.CatFile("/tmp/triangulation.png", os.Stdout)
}

func (tr *Triangulation) drawTriangles(c *gg.Context, triangles []TriangleID, setColor func(), fill bool) {
	for _, t := range triangles {
		tri := tr.mesh.Triangle(t)
		a := tr.mesh.Point(tri.Vertices[0])
		c.MoveTo(a.X, a.Y)
		for _, v := range tri.Vertices[1:] {
			p := tr.mesh.Point(v)
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		setColor()
		if fill {
			c.Fill()
		} else {
			c.Stroke()
		}
	}
}
