package mesh

import (
	"errors"

	"gonum.org/v1/gonum/floats/scalar"
)

// Sentinel errors for mesh documents.
var (
	// ErrMalformedDocument indicates a mesh document whose buffers do not
	// describe a triangle mesh: coordinate count not divisible by three,
	// index count not divisible by three, or an index referencing a vertex
	// beyond the coordinate buffer.
	ErrMalformedDocument = errors.New("mesh: malformed mesh document")
)

// Mesh represents a triangle mesh in three-dimensional space.
//
// Coordinates is the flat vertex buffer [x0,y0,z0, x1,y1,z1, ...];
// Indices is the flat face buffer holding three vertex indices per
// triangular face.
type Mesh struct {
	Coordinates []float64 `json:"coordinates"`
	Indices     []int     `json:"indices"`
}

// NewMesh creates a new Mesh over the given flat buffers. The buffers are
// not validated; see Validate.
func NewMesh(coordinates []float64, indices []int) *Mesh {
	return &Mesh{Coordinates: coordinates, Indices: indices}
}

// NumberOfFaces returns how many triangular faces the mesh has.
func (m *Mesh) NumberOfFaces() int {
	return len(m.Indices) / 3
}

// NumberOfVertices returns how many vertices the mesh has.
func (m *Mesh) NumberOfVertices() int {
	return len(m.Coordinates) / 3
}

// Copy returns a fresh Mesh with copied buffers.
func (m *Mesh) Copy() *Mesh {
	coordinates := make([]float64, len(m.Coordinates))
	copy(coordinates, m.Coordinates)
	indices := make([]int, len(m.Indices))
	copy(indices, m.Indices)

	return &Mesh{Coordinates: coordinates, Indices: indices}
}

// EqWithTolerance reports whether m and other have coordinate buffers equal
// within tolerance per entry and identical index buffers.
func (m *Mesh) EqWithTolerance(other *Mesh, tolerance float64) bool {
	if len(m.Coordinates) != len(other.Coordinates) || len(m.Indices) != len(other.Indices) {
		return false
	}
	for i, c := range m.Coordinates {
		if !scalar.EqualWithinAbs(c, other.Coordinates[i], tolerance) {
			return false
		}
	}
	for i, idx := range m.Indices {
		if idx != other.Indices[i] {
			return false
		}
	}

	return true
}

// Validate checks that the flat buffers describe a triangle mesh: both
// buffer lengths divisible by three and every index inside the vertex
// range. It returns ErrMalformedDocument otherwise.
func (m *Mesh) Validate() error {
	if len(m.Coordinates)%3 != 0 || len(m.Indices)%3 != 0 {
		return ErrMalformedDocument
	}
	vertices := m.NumberOfVertices()
	for _, idx := range m.Indices {
		if idx < 0 || idx >= vertices {
			return ErrMalformedDocument
		}
	}

	return nil
}
