package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/voronoi/internal/dbg"
)

// Coloured readable name for a triangle. Cyan triangles touch the
// super-triangle, red ones are degenerate (zero area or no finite
// circumcircle), and green ones are ordinary.
func (tr *Triangulation) DbgName(t TriangleID) string {
	name := dbg.Name(t)
	if t == NoTriangle {
		return name
	}
	if tr.TouchesSuperTriangle(t) {
		return aurora.Cyan(name).String()
	}
	if tr.IsDegenerate(t) {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

func (tr *Triangulation) DbgVertexName(v VertexID) string {
	name := dbg.Name(v)
	if tr.IsAuxiliary(v) {
		return aurora.Cyan(name).String()
	}
	return name
}

func (tr *Triangulation) IsDegenerate(t TriangleID) bool {
	tri := tr.mesh.Triangle(t)
	a, b, c := tr.mesh.Point(tri.Vertices[0]), tr.mesh.Point(tri.Vertices[1]), tr.mesh.Point(tri.Vertices[2])
	return Equal(Cross(a, b, c), 0) || !tri.Circumcircle.Center.IsFinite()
}

func (tr *Triangulation) TriangleString(t TriangleID) string {
	tri := tr.mesh.Triangle(t)
	neighbours := make([]string, 0, 3)
	for _, n := range tri.Neighbours {
		neighbours = append(neighbours, tr.DbgName(n))
	}
	return fmt.Sprintf("Triangle %s <%s, %s, %s> [%s] ⊙(%.3f, %.3f) r=%.3f",
		tr.DbgName(t),
		tr.DbgVertexName(tri.Vertices[0]),
		tr.DbgVertexName(tri.Vertices[1]),
		tr.DbgVertexName(tri.Vertices[2]),
		strings.Join(neighbours, ", "),
		tri.Circumcircle.Center.X,
		tri.Circumcircle.Center.Y,
		tri.Circumcircle.Radius,
	)
}
