package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paireks/meshmeshmesh-sub000/geom"
	"github.com/paireks/meshmeshmesh-sub000/topo"
)

// TestAnglesFromFaceNeighbours verifies the per-slot normals angles of a
// gently folded quad fan against precomputed values, and that boundary
// slots stay zero.
func TestAnglesFromFaceNeighbours(t *testing.T) {
	n := topo.NoNeighbour
	triangles := []geom.Triangle{
		geom.NewTriangle(geom.NewPoint(0, 0, -0.5), geom.NewPoint(5, 0, 0.3), geom.NewPoint(2.5, 5, 0.5)),
		geom.NewTriangle(geom.NewPoint(2.5, 5, 0.5), geom.NewPoint(5, 0, 0.3), geom.NewPoint(7.5, 5, -0.4)),
		geom.NewTriangle(geom.NewPoint(5, 0, 0.3), geom.NewPoint(10, 0, 0.1), geom.NewPoint(7.5, 5, -0.4)),
		geom.NewTriangle(geom.NewPoint(2.5, 5, 0.5), geom.NewPoint(7.5, 5, -0.4), geom.NewPoint(5, 10, 0.9)),
	}
	neighbours := []topo.FaceNeighbours{
		topo.NewFaceNeighbours(n, 1, n),
		topo.NewFaceNeighbours(0, 2, 3),
		topo.NewFaceNeighbours(n, n, 1),
		topo.NewFaceNeighbours(1, n, n),
	}

	angles, err := topo.AnglesFromFaceNeighbours(neighbours, triangles)
	require.NoError(t, err)
	require.Len(t, angles, 4)

	const delta = 1e-9
	assert.Equal(t, 0.0, angles[0].First)
	assert.InDelta(t, 0.37540037779770735, angles[0].Second, delta)
	assert.Equal(t, 0.0, angles[0].Third)

	assert.InDelta(t, 0.37540037779770735, angles[1].First, delta)
	assert.InDelta(t, 0.15445199884596061, angles[1].Second, delta)
	assert.InDelta(t, 0.21494519445616783, angles[1].Third, delta)

	assert.Equal(t, 0.0, angles[2].First)
	assert.Equal(t, 0.0, angles[2].Second)
	assert.InDelta(t, 0.15445199884596061, angles[2].Third, delta)

	assert.InDelta(t, 0.21494519445616783, angles[3].First, delta)
	assert.Equal(t, 0.0, angles[3].Second)
	assert.Equal(t, 0.0, angles[3].Third)
}

// TestAnglesFromFaceNeighbours_SharedAngleSymmetric verifies the angle
// recorded on both sides of a shared edge is identical.
func TestAnglesFromFaceNeighbours_SharedAngleSymmetric(t *testing.T) {
	n := topo.NoNeighbour
	triangles := []geom.Triangle{
		geom.NewTriangle(geom.NewPoint(0, 0, 0), geom.NewPoint(5, 0, 0), geom.NewPoint(2.5, 5, 1)),
		geom.NewTriangle(geom.NewPoint(5, 0, 0), geom.NewPoint(7, 4, -2), geom.NewPoint(2.5, 5, 1)),
	}
	neighbours := []topo.FaceNeighbours{
		topo.NewFaceNeighbours(n, 1, n),
		topo.NewFaceNeighbours(n, n, 0),
	}

	angles, err := topo.AnglesFromFaceNeighbours(neighbours, triangles)
	require.NoError(t, err)
	assert.Equal(t, angles[0].Second, angles[1].Third)
}

// TestAnglesFromFaceNeighbours_LengthMismatch verifies unequal inputs are
// rejected before any work happens.
func TestAnglesFromFaceNeighbours_LengthMismatch(t *testing.T) {
	neighbours := make([]topo.FaceNeighbours, 3)
	triangles := make([]geom.Triangle, 4)

	_, err := topo.AnglesFromFaceNeighbours(neighbours, triangles)
	assert.ErrorIs(t, err, topo.ErrLengthMismatch)
}
