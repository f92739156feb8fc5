package topo

// ThreeEdgeGroup represents the three boundary edges of one triangular face
// in winding order: v0→v1, v1→v2, v2→v0. A mesh converts into one group per
// face, index-aligned with its face list.
type ThreeEdgeGroup struct {
	First  Edge
	Second Edge
	Third  Edge
}

// NewThreeEdgeGroup creates a new ThreeEdgeGroup from three edges.
func NewThreeEdgeGroup(first, second, third Edge) ThreeEdgeGroup {
	return ThreeEdgeGroup{First: first, Second: second, Third: third}
}

// Edges returns the group's edges in slot order.
func (g ThreeEdgeGroup) Edges() [3]Edge {
	return [3]Edge{g.First, g.Second, g.Third}
}

// WhichEdgeIsNeighbourTo reports which edge slot of g (0 = first,
// 1 = second, 2 = third) is shared with other, comparing edges regardless of
// direction. Slots are checked in order and the first match wins; ok is
// false when the groups share no edge.
func (g ThreeEdgeGroup) WhichEdgeIsNeighbourTo(other ThreeEdgeGroup) (slot int, ok bool) {
	for i, e := range g.Edges() {
		for _, o := range other.Edges() {
			if e.EqRegardlessOfDirection(o) {
				return i, true
			}
		}
	}

	return 0, false
}

// slotOf reports which edge slot of g equals e regardless of direction,
// checking slots in order 0,1,2 with first match winning, or -1 when none
// matches.
func (g ThreeEdgeGroup) slotOf(e Edge) int {
	for i, candidate := range g.Edges() {
		if candidate.EqRegardlessOfDirection(e) {
			return i
		}
	}

	return -1
}

// EdgeFaces pairs a key Edge of the edge→faces map with the ordered list of
// faces that own it in either direction.
type EdgeFaces struct {
	Edge  Edge
	Faces []int
}

// EdgeFaceMap builds the edge→owning-faces map over the given face groups.
//
// For every edge of every face the map first looks up the edge's reverse: if
// the reverse is already a key the face is recorded under it, otherwise the
// face is recorded under the edge as given. Merging a directed edge with its
// reverse under whichever direction appeared first is what lets a later
// per-face lookup recover the edge slot with a direction-agnostic
// comparison.
//
// Entries come back in first-seen order; the map is transient and typically
// consumed immediately by FaceNeighboursFromThreeEdgeGroups.
func EdgeFaceMap(groups []ThreeEdgeGroup) []EdgeFaces {
	keys := make(map[Edge]int, len(groups)*3)
	entries := make([]EdgeFaces, 0, len(groups)*3)

	for face, group := range groups {
		for _, e := range group.Edges() {
			at, ok := keys[e.Reversed()]
			if !ok {
				if at, ok = keys[e]; !ok {
					at = len(entries)
					keys[e] = at
					entries = append(entries, EdgeFaces{Edge: e})
				}
			}
			entries[at].Faces = append(entries[at].Faces, face)
		}
	}

	return entries
}
