package topo

// Edge represents one traversal direction of a mesh or graph edge as an
// ordered pair of vertex indices. It is a plain value type; two Edges are
// equal when Start and End match in order.
type Edge struct {
	Start int
	End   int
}

// NewEdge creates a new Edge from start to end.
func NewEdge(start, end int) Edge {
	return Edge{Start: start, End: end}
}

// Reversed returns the Edge travelling the opposite direction.
func (e Edge) Reversed() Edge {
	return Edge{Start: e.End, End: e.Start}
}

// EqRegardlessOfDirection reports whether e and other describe the same
// undirected edge: equal as given or equal with the direction flipped.
func (e Edge) EqRegardlessOfDirection(other Edge) bool {
	return e == other || e == other.Reversed()
}

// Less orders Edges lexicographically on (Start, End). The ordering carries
// no topological meaning; it exists for deterministic iteration.
func (e Edge) Less(other Edge) bool {
	if e.Start != other.Start {
		return e.Start < other.Start
	}

	return e.End < other.End
}

// FlattenEdges lays the given Edges out as a flat index list, start then end
// for each Edge in input order.
func FlattenEdges(edges []Edge) []int {
	flat := make([]int, 0, len(edges)*2)
	for _, e := range edges {
		flat = append(flat, e.Start, e.End)
	}

	return flat
}

// UniqueUndirected canonicalizes edges into the minimal set in which every
// undirected edge appears as exactly one pair of directed Edges, one per
// direction. Output order follows the first appearance of each undirected
// edge in the input; a self-loop contributes a single Edge.
func UniqueUndirected(edges []Edge) []Edge {
	seen := make(map[Edge]struct{}, len(edges)*2)
	unique := make([]Edge, 0, len(edges)*2)
	for _, e := range edges {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		unique = append(unique, e)
		reversed := e.Reversed()
		if reversed == e {
			continue
		}
		seen[reversed] = struct{}{}
		unique = append(unique, reversed)
	}

	return unique
}
