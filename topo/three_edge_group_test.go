package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paireks/meshmeshmesh-sub000/topo"
)

func group(a, b, c, d, e, f int) topo.ThreeEdgeGroup {
	return topo.NewThreeEdgeGroup(topo.NewEdge(a, b), topo.NewEdge(c, d), topo.NewEdge(e, f))
}

// quadFanGroups is the 4-face planar fan used across the neighbour tests,
// faces [0,2,1], [1,2,3], [2,4,3], [1,3,5].
func quadFanGroups() []topo.ThreeEdgeGroup {
	return []topo.ThreeEdgeGroup{
		group(0, 2, 2, 1, 1, 0),
		group(1, 2, 2, 3, 3, 1),
		group(2, 4, 4, 3, 3, 2),
		group(1, 3, 3, 5, 5, 1),
	}
}

// TestThreeEdgeGroup_WhichEdgeIsNeighbourTo verifies slot discovery in slot
// order with direction-agnostic comparison.
func TestThreeEdgeGroup_WhichEdgeIsNeighbourTo(t *testing.T) {
	cases := []struct {
		name     string
		input    topo.ThreeEdgeGroup
		other    topo.ThreeEdgeGroup
		wantSlot int
		wantOK   bool
	}{
		{"FirstSlot", group(2, 5, 5, 7, 7, 2), group(5, 2, 2, 1, 1, 5), 0, true},
		{"SecondSlot", group(0, 1, 1, 2, 2, 0), group(5, 2, 2, 1, 1, 5), 1, true},
		{"ThirdSlot", group(5, 8, 8, 1, 1, 5), group(5, 2, 2, 1, 1, 5), 2, true},
		{"NoSharedEdge", group(0, 1, 1, 2, 2, 0), group(5, 2, 2, 9, 9, 5), 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot, ok := tc.input.WhichEdgeIsNeighbourTo(tc.other)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantSlot, slot)
			}
		})
	}
}

// TestEdgeFaceMap verifies directed edges merge with their reverses under
// whichever direction appeared first, owners accumulating in face order.
func TestEdgeFaceMap(t *testing.T) {
	entries := topo.EdgeFaceMap(quadFanGroups())

	expected := []topo.EdgeFaces{
		{Edge: topo.NewEdge(0, 2), Faces: []int{0}},
		{Edge: topo.NewEdge(2, 1), Faces: []int{0, 1}},
		{Edge: topo.NewEdge(1, 0), Faces: []int{0}},
		{Edge: topo.NewEdge(2, 3), Faces: []int{1, 2}},
		{Edge: topo.NewEdge(3, 1), Faces: []int{1, 3}},
		{Edge: topo.NewEdge(2, 4), Faces: []int{2}},
		{Edge: topo.NewEdge(4, 3), Faces: []int{2}},
		{Edge: topo.NewEdge(3, 5), Faces: []int{3}},
		{Edge: topo.NewEdge(5, 1), Faces: []int{3}},
	}

	require.Equal(t, expected, entries)
}

// TestEdgeFaceMap_Empty verifies no groups produce no entries.
func TestEdgeFaceMap_Empty(t *testing.T) {
	assert.Empty(t, topo.EdgeFaceMap(nil))
}
