package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paireks/meshmeshmesh-sub000/topo"
)

// TestFaceNeighbours_HasAllNeighbours covers every combination of boundary
// slots.
func TestFaceNeighbours_HasAllNeighbours(t *testing.T) {
	n := topo.NoNeighbour
	cases := []struct {
		name string
		fn   topo.FaceNeighbours
		want bool
	}{
		{"AllSet", topo.NewFaceNeighbours(5, 3, 7), true},
		{"FirstBoundary", topo.NewFaceNeighbours(n, 5, 7), false},
		{"SecondBoundary", topo.NewFaceNeighbours(5, n, 7), false},
		{"ThirdBoundary", topo.NewFaceNeighbours(5, 7, n), false},
		{"AllBoundary", topo.NewFaceNeighbours(n, n, n), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.fn.HasAllNeighbours())
		})
	}
}

// TestFaceNeighbours_WhichEdgeByFaceNeighbourID verifies slot lookup by
// neighbour face index, and that boundary slots never match.
func TestFaceNeighbours_WhichEdgeByFaceNeighbourID(t *testing.T) {
	fn := topo.NewFaceNeighbours(5, 7, topo.NoNeighbour)

	slot, ok := fn.WhichEdgeByFaceNeighbourID(5)
	assert.True(t, ok)
	assert.Equal(t, 0, slot)

	slot, ok = fn.WhichEdgeByFaceNeighbourID(7)
	assert.True(t, ok)
	assert.Equal(t, 1, slot)

	_, ok = fn.WhichEdgeByFaceNeighbourID(8)
	assert.False(t, ok)

	// Asking for NoNeighbour must not match the empty third slot.
	_, ok = fn.WhichEdgeByFaceNeighbourID(topo.NoNeighbour)
	assert.False(t, ok)
}

// TestFaceNeighboursFromThreeEdgeGroups verifies the quad fan resolves into
// the expected table.
func TestFaceNeighboursFromThreeEdgeGroups(t *testing.T) {
	n := topo.NoNeighbour

	neighbours, err := topo.FaceNeighboursFromThreeEdgeGroups(quadFanGroups())
	require.NoError(t, err)

	expected := []topo.FaceNeighbours{
		topo.NewFaceNeighbours(n, 1, n),
		topo.NewFaceNeighbours(0, 2, 3),
		topo.NewFaceNeighbours(n, n, 1),
		topo.NewFaceNeighbours(1, n, n),
	}
	assert.Equal(t, expected, neighbours)
}

// TestFaceNeighboursFromThreeEdgeGroups_Symmetric verifies that whenever
// face i names j as a neighbour, face j names i back.
func TestFaceNeighboursFromThreeEdgeGroups_Symmetric(t *testing.T) {
	neighbours, err := topo.FaceNeighboursFromThreeEdgeGroups(quadFanGroups())
	require.NoError(t, err)

	for i, fn := range neighbours {
		for _, j := range []int{fn.First, fn.Second, fn.Third} {
			if j == topo.NoNeighbour {
				continue
			}
			_, ok := neighbours[j].WhichEdgeByFaceNeighbourID(i)
			assert.True(t, ok, "face %d points at %d but not back", i, j)
		}
	}
}

// TestFaceNeighboursFromThreeEdgeGroups_NonManifold verifies an edge shared
// by three of five faces is rejected.
func TestFaceNeighboursFromThreeEdgeGroups_NonManifold(t *testing.T) {
	groups := []topo.ThreeEdgeGroup{
		group(0, 1, 1, 2, 2, 0), // shares (0,1)
		group(1, 0, 0, 3, 3, 1), // shares (0,1), reversed
		group(0, 1, 1, 4, 4, 0), // third face on the same edge
		group(5, 6, 6, 7, 7, 5),
		group(6, 8, 8, 7, 7, 6),
	}

	_, err := topo.FaceNeighboursFromThreeEdgeGroups(groups)
	assert.ErrorIs(t, err, topo.ErrNonManifoldEdge)
}

// TestFaceNeighboursFromThreeEdgeGroups_Empty verifies no faces derive an
// empty table.
func TestFaceNeighboursFromThreeEdgeGroups_Empty(t *testing.T) {
	neighbours, err := topo.FaceNeighboursFromThreeEdgeGroups(nil)
	require.NoError(t, err)
	assert.Empty(t, neighbours)
}
