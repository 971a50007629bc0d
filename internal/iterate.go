package internal

// A neighbour iterator visits every triangle reachable from a starting
// triangle through neighbour links, exactly once. Traversal order is not
// defined. Behavior is also undefined if you modify the mesh during iteration.
type NeighbourIterator struct {
	mesh  *Mesh
	stack []TriangleID
	seen  map[TriangleID]struct{}
}

func NewNeighbourIterator(mesh *Mesh, start TriangleID) *NeighbourIterator {
	return &NeighbourIterator{mesh, []TriangleID{start}, map[TriangleID]struct{}{}}
}

// Returns NoTriangle once the iteration is exhausted.
func (iter *NeighbourIterator) Next() TriangleID {
	for len(iter.stack) > 0 {
		t := iter.stack[len(iter.stack)-1]
		iter.stack = iter.stack[:len(iter.stack)-1]
		// Skip if we've seen the triangle before
		if _, ok := iter.seen[t]; ok {
			continue
		}
		iter.seen[t] = struct{}{}

		// Push the neighbours onto the stack
		for _, n := range iter.mesh.Triangle(t).Neighbours {
			if n != NoTriangle {
				iter.stack = append(iter.stack, n)
			}
		}
		return t
	}
	return NoTriangle
}

// Every triangle reachable from start, including start itself.
func (m *Mesh) Reachable(start TriangleID) []TriangleID {
	var result []TriangleID
	iter := NewNeighbourIterator(m, start)
	for t := iter.Next(); t != NoTriangle; t = iter.Next() {
		result = append(result, t)
	}
	return result
}

// Group the live triangles into components connected by neighbour links.
func (m *Mesh) Components() [][]TriangleID {
	var components [][]TriangleID
	seen := make(map[TriangleID]struct{})
	for _, t := range m.live {
		if _, ok := seen[t]; ok {
			continue
		}
		component := m.Reachable(t)
		for _, c := range component {
			seen[c] = struct{}{}
		}
		components = append(components, component)
	}
	return components
}
