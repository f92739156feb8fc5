package mesh

import (
	"github.com/paireks/meshmeshmesh-sub000/graph"
	"github.com/paireks/meshmeshmesh-sub000/topo"
)

// Area returns the total surface area of the mesh, the sum over all faces.
func (m *Mesh) Area() float64 {
	area := 0.0
	for _, t := range m.ToTriangles() {
		area += t.Area()
	}

	return area
}

// FaceNeighbours derives the face-neighbour table of the mesh. It fails
// with topo.ErrNonManifoldEdge when an edge is shared by more than two
// faces.
func (m *Mesh) FaceNeighbours() ([]topo.FaceNeighbours, error) {
	return topo.FaceNeighboursFromMesh(m)
}

// IsConnected reports whether every face of the mesh can be reached from
// the first face across shared edges, walking the face dual graph. A mesh
// with no faces is connected.
func (m *Mesh) IsConnected() (bool, error) {
	neighbours, err := m.FaceNeighbours()
	if err != nil {
		return false, err
	}

	return graph.FromFaceNeighbours(neighbours).IsConnected(), nil
}

// EdgesWithMissingNeighbour returns the naked boundary edges of the mesh:
// every face edge whose slot has no neighbour face, in face order. The
// direction of each edge is the owning face's winding.
func (m *Mesh) EdgesWithMissingNeighbour() ([]topo.Edge, error) {
	groups := m.ToThreeEdgeGroups()
	neighbours, err := topo.FaceNeighboursFromThreeEdgeGroups(groups)
	if err != nil {
		return nil, err
	}

	var naked []topo.Edge
	for i, fn := range neighbours {
		edges := groups[i].Edges()
		for slot, neighbour := range [3]int{fn.First, fn.Second, fn.Third} {
			if neighbour == topo.NoNeighbour {
				naked = append(naked, edges[slot])
			}
		}
	}

	return naked, nil
}

// NonManifoldEdges returns every edge shared by more than two faces, in
// first-seen direction and order. An empty result means the mesh is
// manifold in the at-most-two-faces-per-edge sense; the defect is only
// reported, never repaired.
func (m *Mesh) NonManifoldEdges() []topo.Edge {
	var nonManifold []topo.Edge
	for _, entry := range topo.EdgeFaceMap(m.ToThreeEdgeGroups()) {
		if len(entry.Faces) > 2 {
			nonManifold = append(nonManifold, entry.Edge)
		}
	}

	return nonManifold
}
