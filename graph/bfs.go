package graph

// noParent marks a vertex without a breadth-first predecessor: either
// unvisited or the root of its traversal.
const noParent = -1

// bfsState carries the bookkeeping shared by consecutive breadth-first
// searches over one graph: which vertices were visited so far and the
// predecessor each visited vertex was discovered from.
type bfsState struct {
	visited []bool
	parent  []int
}

func newBFSState(n int) *bfsState {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = noParent
	}

	return &bfsState{visited: make([]bool, n), parent: parent}
}

// runBFS walks everything reachable from start in FIFO order, visiting
// neighbours in edge-insertion order, and returns the vertices in discovery
// order. Vertices already visited in s are not entered again.
func (g *Graph) runBFS(start int, s *bfsState) []int {
	queue := make([]int, 0, g.vertexCount)
	queue = append(queue, start)
	s.visited[start] = true

	for head := 0; head < len(queue); head++ {
		v := queue[head]
		for _, neighbour := range g.adjacencyVertices[v] {
			if s.visited[neighbour] {
				continue
			}
			s.visited[neighbour] = true
			s.parent[neighbour] = v
			queue = append(queue, neighbour)
		}
	}

	return queue
}

// IsConnected reports whether every vertex is reachable from vertex 0.
// The answer is meaningful only when the edge set is symmetric — the
// traversal follows edge direction and does not symmetrize. An empty graph
// is connected.
func (g *Graph) IsConnected() bool {
	if g.vertexCount == 0 {
		return true
	}

	s := newBFSState(g.vertexCount)
	g.runBFS(0, s)
	for _, visited := range s.visited {
		if !visited {
			return false
		}
	}

	return true
}

// SplitDisconnectedComponents partitions the vertices into connected
// components by running breadth-first search from the first unvisited
// vertex until every vertex is covered. Components come back in discovery
// order; within a component, vertices follow the traversal's discovery
// order. Like IsConnected, the split assumes a symmetric edge set.
func (g *Graph) SplitDisconnectedComponents() [][]int {
	components, _ := g.splitComponents()

	return components
}

// SplitDisconnectedLoops splits the graph like
// SplitDisconnectedComponents, then reduces every component with more than
// two vertices to the single ordered path recovered by walking the
// breadth-first predecessor links forward from the component's root. For a
// graph built from closed polygons this restores each polygon's cyclic
// vertex order. Components with two or fewer vertices carry no loop and are
// excluded from the result.
func (g *Graph) SplitDisconnectedLoops() [][]int {
	components, s := g.splitComponents()

	var loops [][]int
	for _, component := range components {
		if len(component) <= 2 {
			continue
		}

		// parent links point child→parent; invert them into a forward walk
		// from the root, keeping the first-discovered child of each vertex.
		next := make(map[int]int, len(component))
		for _, v := range component {
			p := s.parent[v]
			if p == noParent {
				continue
			}
			if _, ok := next[p]; !ok {
				next[p] = v
			}
		}

		loop := make([]int, 0, len(component))
		for v, ok := component[0], true; ok; v, ok = next[v] {
			loop = append(loop, v)
		}
		loops = append(loops, loop)
	}

	return loops
}

// splitComponents runs the repeated BFS underlying both split queries and
// returns the components along with the final traversal state.
func (g *Graph) splitComponents() ([][]int, *bfsState) {
	s := newBFSState(g.vertexCount)

	var components [][]int
	for v := 0; v < g.vertexCount; v++ {
		if s.visited[v] {
			continue
		}
		components = append(components, g.runBFS(v, s))
	}

	return components, s
}
