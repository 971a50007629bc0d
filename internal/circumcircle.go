package internal

// Circumcenter of the triangle (a, b, c) using the determinant closed form.
// Collinear points give a zero determinant, and the result is then not finite.
// That case is deliberately left alone.
func Circumcenter(a, b, c Point) (x, y, radius float64) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y

	x = (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d
	y = (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d
	radius = a.DistanceTo(Point{x, y})
	return
}

func NewCircumcircle(a, b, c Point) Circle {
	x, y, r := Circumcenter(a, b, c)
	return Circle{Center: Point{x, y}, Radius: r}
}

// A point exactly on the circle counts as contained. This decides which
// triangles absorb a cocircular seed, so it must stay inclusive.
func (c Circle) Contains(p Point) bool {
	return p.DistanceTo(c.Center) <= c.Radius
}

func (t *Triangle) CircumcircleContains(p Point) bool {
	return t.Circumcircle.Contains(p)
}
