package topo

import "fmt"

// NoNeighbour marks an edge slot without a neighbour face: the edge lies on
// the mesh boundary.
const NoNeighbour = -1

// FaceNeighbours stores, for one face, the neighbour face index across each
// of its three edge slots. Slots align with the face's ThreeEdgeGroup. An
// edge can have at most one neighbour here; meshes violating that are
// rejected during derivation as non-manifold.
type FaceNeighbours struct {
	First  int
	Second int
	Third  int
}

// NewFaceNeighbours creates a new FaceNeighbours. Use NoNeighbour for
// boundary slots.
func NewFaceNeighbours(first, second, third int) FaceNeighbours {
	return FaceNeighbours{First: first, Second: second, Third: third}
}

// noFaceNeighbours is the zero state of a face: all three slots boundary.
func noFaceNeighbours() FaceNeighbours {
	return FaceNeighbours{First: NoNeighbour, Second: NoNeighbour, Third: NoNeighbour}
}

// HasAllNeighbours reports whether every edge slot has a neighbour face.
func (fn FaceNeighbours) HasAllNeighbours() bool {
	return fn.First != NoNeighbour && fn.Second != NoNeighbour && fn.Third != NoNeighbour
}

// WhichEdgeByFaceNeighbourID reports which edge slot (0 = first, 1 = second,
// 2 = third) holds the given neighbour face; ok is false when no slot does.
func (fn FaceNeighbours) WhichEdgeByFaceNeighbourID(faceNeighbourID int) (slot int, ok bool) {
	switch faceNeighbourID {
	case NoNeighbour:
		return 0, false
	case fn.First:
		return 0, true
	case fn.Second:
		return 1, true
	case fn.Third:
		return 2, true
	}

	return 0, false
}

// setSlot assigns neighbour to the given edge slot.
func (fn *FaceNeighbours) setSlot(slot, neighbour int) {
	switch slot {
	case 0:
		fn.First = neighbour
	case 1:
		fn.Second = neighbour
	case 2:
		fn.Third = neighbour
	}
}

// ThreeEdgeGrouper supplies per-face edge groups; mesh.Mesh implements it.
type ThreeEdgeGrouper interface {
	ToThreeEdgeGroups() []ThreeEdgeGroup
}

// FaceNeighboursFromMesh derives the face-neighbour table of a mesh from its
// per-face edge groups.
func FaceNeighboursFromMesh(m ThreeEdgeGrouper) ([]FaceNeighbours, error) {
	return FaceNeighboursFromThreeEdgeGroups(m.ToThreeEdgeGroups())
}

// FaceNeighboursFromThreeEdgeGroups derives the face-neighbour table of the
// given face groups, index-aligned with them.
//
// Every edge of the edge→faces map must be owned by one face (boundary,
// nothing recorded) or two faces (each face's matching slot points at the
// other). An edge without owners means the map is malformed
// (ErrMalformedAdjacency); an edge owned by more than two faces is
// non-manifold and cannot be represented (ErrNonManifoldEdge).
func FaceNeighboursFromThreeEdgeGroups(groups []ThreeEdgeGroup) ([]FaceNeighbours, error) {
	neighbours := make([]FaceNeighbours, len(groups))
	for i := range neighbours {
		neighbours[i] = noFaceNeighbours()
	}

	for _, entry := range EdgeFaceMap(groups) {
		switch len(entry.Faces) {
		case 0:
			return nil, fmt.Errorf("%w: edge (%d,%d) has no owning face",
				ErrMalformedAdjacency, entry.Edge.Start, entry.Edge.End)
		case 1:
			// Boundary edge, no neighbour to record.
		case 2:
			a, b := entry.Faces[0], entry.Faces[1]
			if slot := groups[a].slotOf(entry.Edge); slot >= 0 {
				neighbours[a].setSlot(slot, b)
			}
			if slot := groups[b].slotOf(entry.Edge); slot >= 0 {
				neighbours[b].setSlot(slot, a)
			}
		default:
			return nil, fmt.Errorf("%w: edge (%d,%d) is shared by %d faces",
				ErrNonManifoldEdge, entry.Edge.Start, entry.Edge.End, len(entry.Faces))
		}
	}

	return neighbours, nil
}
