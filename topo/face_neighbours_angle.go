package topo

import (
	"fmt"

	"github.com/paireks/meshmeshmesh-sub000/geom"
)

// FaceNeighboursAngle stores, for one face, the angle between the face's
// normal and each neighbour face's normal, slot-aligned with the face's
// FaceNeighbours. A slot without a neighbour holds zero; it is meaningful
// only where the matching FaceNeighbours slot names a neighbour.
type FaceNeighboursAngle struct {
	First  float64
	Second float64
	Third  float64
}

// NewFaceNeighboursAngle creates a new FaceNeighboursAngle.
func NewFaceNeighboursAngle(first, second, third float64) FaceNeighboursAngle {
	return FaceNeighboursAngle{First: first, Second: second, Third: third}
}

// AnglesFromFaceNeighbours computes, per face and per occupied edge slot, the
// angle between that face's unit normal and the neighbour face's unit
// normal. The two inputs must be index-aligned per face; differing lengths
// fail with ErrLengthMismatch.
func AnglesFromFaceNeighbours(neighbours []FaceNeighbours, triangles []geom.Triangle) ([]FaceNeighboursAngle, error) {
	if len(neighbours) != len(triangles) {
		return nil, fmt.Errorf("%w: %d face neighbours, %d triangles",
			ErrLengthMismatch, len(neighbours), len(triangles))
	}

	angles := make([]FaceNeighboursAngle, len(neighbours))
	for i, fn := range neighbours {
		face := triangles[i]
		if fn.First != NoNeighbour {
			angles[i].First = face.NormalsAngle(triangles[fn.First])
		}
		if fn.Second != NoNeighbour {
			angles[i].Second = face.NormalsAngle(triangles[fn.Second])
		}
		if fn.Third != NoNeighbour {
			angles[i].Third = face.NormalsAngle(triangles[fn.Third])
		}
	}

	return angles, nil
}
