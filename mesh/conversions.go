package mesh

import (
	"github.com/paireks/meshmeshmesh-sub000/geom"
	"github.com/paireks/meshmeshmesh-sub000/topo"
)

// ToPoints returns every vertex of the mesh as a Point, in vertex order.
func (m *Mesh) ToPoints() []geom.Point {
	points := make([]geom.Point, 0, m.NumberOfVertices())
	for i := 0; i < len(m.Coordinates); i += 3 {
		points = append(points, geom.NewPoint(m.Coordinates[i], m.Coordinates[i+1], m.Coordinates[i+2]))
	}

	return points
}

// ToTriangles returns every face of the mesh as a free-standing Triangle, in
// face order.
func (m *Mesh) ToTriangles() []geom.Triangle {
	points := m.ToPoints()
	triangles := make([]geom.Triangle, 0, m.NumberOfFaces())
	for i := 0; i < len(m.Indices); i += 3 {
		triangles = append(triangles, geom.NewTriangle(
			points[m.Indices[i]],
			points[m.Indices[i+1]],
			points[m.Indices[i+2]],
		))
	}

	return triangles
}

// ToEdges returns the directed boundary edges of every face, three per face
// in winding order v0→v1, v1→v2, v2→v0.
func (m *Mesh) ToEdges() []topo.Edge {
	edges := make([]topo.Edge, 0, len(m.Indices))
	for i := 0; i < len(m.Indices); i += 3 {
		edges = append(edges,
			topo.NewEdge(m.Indices[i], m.Indices[i+1]),
			topo.NewEdge(m.Indices[i+1], m.Indices[i+2]),
			topo.NewEdge(m.Indices[i+2], m.Indices[i]),
		)
	}

	return edges
}

// ToThreeEdgeGroups returns the boundary edges of every face grouped per
// face, index-aligned with the face list.
func (m *Mesh) ToThreeEdgeGroups() []topo.ThreeEdgeGroup {
	groups := make([]topo.ThreeEdgeGroup, 0, m.NumberOfFaces())
	for i := 0; i < len(m.Indices); i += 3 {
		groups = append(groups, topo.NewThreeEdgeGroup(
			topo.NewEdge(m.Indices[i], m.Indices[i+1]),
			topo.NewEdge(m.Indices[i+1], m.Indices[i+2]),
			topo.NewEdge(m.Indices[i+2], m.Indices[i]),
		))
	}

	return groups
}

// FromTriangles builds a Mesh from free-standing triangles. Every corner
// becomes its own vertex; weld the result to consolidate corners shared
// between triangles.
func FromTriangles(triangles []geom.Triangle) *Mesh {
	coordinates := make([]float64, 0, len(triangles)*9)
	indices := make([]int, 0, len(triangles)*3)
	for i, t := range triangles {
		coordinates = append(coordinates,
			t.First.X, t.First.Y, t.First.Z,
			t.Second.X, t.Second.Y, t.Second.Z,
			t.Third.X, t.Third.Y, t.Third.Z,
		)
		indices = append(indices, i*3, i*3+1, i*3+2)
	}

	return NewMesh(coordinates, indices)
}
